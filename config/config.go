package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		// production の場合、マッチングAPIへは https で接続する
		Environment string `default:"development" env:"APP_ENV"`
	}
	Auth struct {
		// 認証バイパス用フラグ。trueの場合Basic認証を完全にスキップする（運用上の非常口、本番では必ずfalse）
		Disabled *bool  `default:"false" env:"DISABLE_AUTH"`
		User     string `default:"admin" env:"BASIC_AUTH_USER"`
		Password string `default:"matching2026" env:"BASIC_AUTH_PASSWORD"`
		Realm    string `default:"AI Job Matching System" env:"BASIC_AUTH_REALM"`
	}
	AnkenAPI struct {
		// 案件一覧のスプレッドシート読み取りAPI（GAS /exec エンドポイント）
		BaseUrl string `default:"" env:"ANKEN_API_BASE_URL"`
	}
	Matching struct {
		// マッチングAPIのホスト/IP（スキームなし）
		Host         string `default:"" env:"MATCHING_API_IP"`
		User         string `default:"mini_match_user" env:"MATCHING_USER"`
		ResponseMode string `default:"blocking" env:"MATCHING_RESPONSE_MODE"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
