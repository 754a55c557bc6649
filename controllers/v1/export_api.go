package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"anken-match-backend/controllers"
	ankenhandler "anken-match-backend/lib/anken"
	xlsexport "anken-match-backend/lib/export/xls"
	viewstatehandler "anken-match-backend/lib/view-state"
	apimodels "anken-match-backend/models/api"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Get("matching", controller.exportMatching)
		router.Get("anken", controller.exportAnken)
	})
}

// @Summary マッチング結果をExcelへ出力
// @Tags エクスポート
// @Description セッションが保持する現在のマッチング結果をxlsxで返す
// @Param   X-Session-Id		header	string	false	"session id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/matching [get]
func (c *exportApiController) exportMatching(ctx *fiber.Ctx) error {
	sessionID := c.GetSessionID(ctx)
	state := viewstatehandler.Instance.Get(sessionID)
	if state.MatchView != viewstatehandler.MatchViewResults || state.Results == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("エクスポート可能なマッチング結果がありません"))
	}
	data, err := xlsexport.Instance.ExportMatchingResult(*state.Results)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("matching-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary 案件一覧をExcelへ出力
// @Tags エクスポート
// @Description 案件一覧の全件をxlsxで返す
// @Success 200
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/anken [get]
func (c *exportApiController) exportAnken(ctx *fiber.Ctx) error {
	list, err := ankenhandler.Instance.GetAll(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	data, err := xlsexport.Instance.ExportAnkenList(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("anken-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
