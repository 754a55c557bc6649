package initializers

import (
	"context"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"anken-match-backend/config"
	"anken-match-backend/fiberlog"
	ankenhandler "anken-match-backend/lib/anken"
	ankenclient "anken-match-backend/lib/anken/client"
	xlsexport "anken-match-backend/lib/export/xls"
	matchinghandler "anken-match-backend/lib/matching"
	matchingclient "anken-match-backend/lib/matching/client"
	viewstatehandler "anken-match-backend/lib/view-state"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	if err := godotenv.Load(); err != nil {
		log.Debug(".envファイルが見つかりません。環境変数をそのまま使用します")
	}
	config.InitConfig()
	viewstatehandler.Init()
	ankenclient.NewProvider(config.Conf.AnkenAPI.BaseUrl)
	matchingclient.NewProvider(config.Conf.Matching.Host, config.Conf.App.Environment)
	ankenhandler.NewHandler()
	matchinghandler.NewHandler()
	xlsexport.NewHandler()
}
