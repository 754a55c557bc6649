package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"anken-match-backend/controllers"
	ankenhandler "anken-match-backend/lib/anken"
	viewstatehandler "anken-match-backend/lib/view-state"
	apimodels "anken-match-backend/models/api"
)

type ankenApiController struct {
	controllers.BaseAPIController
}

func InitAnkenApiRouters(app *fiber.App) {
	controller := ankenApiController{}
	app.Route("anken", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Delete("mail", controller.closeMail)
		router.Get(":id", controller.get)
		router.Post(":id/mail", controller.openMail)
	})
}

// @Summary 案件一覧の取得
// @Tags 案件
// @Description 1ページ50件でページングされた案件一覧を返す。0件でも1ページ目は有効
// @Param   page	query	int	false	"ページ番号（1始まり）"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]ankenapimodels.AnkenRecord}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/anken [get]
func (c *ankenApiController) list(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	list, rowCount, pageCount, err := ankenhandler.Instance.List(ctx.UserContext(), page)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount, pageCount))
}

// @Summary 案件詳細の取得
// @Tags 案件
// @Description IDで単一の案件レコードを返す
// @Param   id	path	string	true	"anken ID"
// @Success 200 {object} apimodels.Response{data=ankenapimodels.AnkenRecord}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/anken/{id} [get]
func (c *ankenApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := ankenhandler.Instance.GetByID(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, ankenhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary メール本文モーダルを開く
// @Tags 案件
// @Description 案件を選択状態にしてモーダル表示状態へ遷移する
// @Param   X-Session-Id		header	string	false	"session id"
// @Param   id	path	string	true	"anken ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/anken/{id}/mail [post]
func (c *ankenApiController) openMail(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := ankenhandler.Instance.GetByID(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, ankenhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	sessionID := c.GetSessionID(ctx)
	viewstatehandler.Instance.OpenMail(sessionID, *rec)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary メール本文モーダルを閉じる
// @Tags 案件
// @Description 選択中の案件をクリアして一覧表示状態へ戻る
// @Param   X-Session-Id		header	string	false	"session id"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @router /api/v1/anken/mail [delete]
func (c *ankenApiController) closeMail(ctx *fiber.Ctx) error {
	sessionID := c.GetSessionID(ctx)
	viewstatehandler.Instance.CloseMail(sessionID)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
