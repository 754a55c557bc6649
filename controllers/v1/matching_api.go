package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"anken-match-backend/controllers"
	matchinghandler "anken-match-backend/lib/matching"
	matchingclient "anken-match-backend/lib/matching/client"
	viewstatehandler "anken-match-backend/lib/view-state"
	apimodels "anken-match-backend/models/api"
	matchingapimodels "anken-match-backend/models/api/matching"
)

type matchingApiController struct {
	controllers.BaseAPIController
}

// InitMatchingRelayRouters はSPA互換の生中継エンドポイントを登録する。
// こちらはapimodelsエンベロープではなく {error: ...} 形式を使う（SPA側の契約）。
func InitMatchingRelayRouters(app *fiber.App) {
	controller := matchingApiController{}
	app.Post("/api/matching", controller.relay)
}

func InitMatchingApiRouters(app *fiber.App) {
	controller := matchingApiController{}
	app.Route("matching", func(router fiber.Router) {
		router.Post("form", controller.runFromForm)
		router.Post("anken/:id", controller.runFromAnken)
		router.Get("state", controller.state)
		router.Post("reset", controller.reset)
	})
}

// @Summary マッチングAPIへの中継
// @Tags マッチング
// @Description userInput（ペイロードのJSON文字列）をバックエンド形式へ変換して転送し、成功時は生JSONを無加工で返す
// @Param	body	body	matchingapimodels.RelayRequest	true	"request body"
// @Success 200
// @Failure 400
// @Failure 500
// @router /api/matching [post]
func (c *matchingApiController) relay(ctx *fiber.Ctx) error {
	var payload matchingapimodels.RelayRequest
	if err := ctx.BodyParser(&payload); err != nil || payload.UserInput == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User input is required"})
	}
	raw, err := matchinghandler.Instance.Relay(ctx.UserContext(), payload.UserInput)
	if err != nil {
		// クライアントへは汎用メッセージのみ。環境値は絶対に返さない
		if errors.Is(err, matchingclient.ErrConfigMissing) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": matchingclient.ErrConfigMissing.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": matchingclient.ErrUpstream.Error()})
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Status(fiber.StatusOK).Send(raw)
}

// @Summary フォーム入力からのマッチング実行
// @Tags マッチング
// @Description 案件情報フォームからペイロードを組み立てて中継し、正規化済みの結果を返す
// @Param   X-Session-Id		header	string	false	"session id"
// @Param	body	body	matchingapimodels.FormRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=matchingapimodels.MatchingResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/matching/form [post]
func (c *matchingApiController) runFromForm(ctx *fiber.Ctx) error {
	var payload matchingapimodels.FormRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	sessionID := c.GetSessionID(ctx)
	result, err := matchinghandler.Instance.RunFromForm(ctx.UserContext(), sessionID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary 案件レコードからのマッチング実行
// @Tags マッチング
// @Description 案件IDで案件を取得し、ペイロードを組み立てて中継し、正規化済みの結果を返す
// @Param   X-Session-Id		header	string	false	"session id"
// @Param   id          		path	string	true	"anken ID"
// @Success 200 {object} apimodels.Response{data=matchingapimodels.MatchingResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/matching/anken/{id} [post]
func (c *matchingApiController) runFromAnken(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	sessionID := c.GetSessionID(ctx)
	result, err := matchinghandler.Instance.RunFromAnken(ctx.UserContext(), sessionID, id)
	if err != nil {
		log.WithField("anken_id", id).WithError(err).Error("案件からのマッチング実行に失敗")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary 表示状態の取得
// @Tags マッチング
// @Description セッションの表示状態（マッチング領域・案件一覧領域）を返す
// @Param   X-Session-Id		header	string	false	"session id"
// @Success 200 {object} apimodels.Response{data=viewstatehandler.SessionState}
// @Failure 401
// @router /api/v1/matching/state [get]
func (c *matchingApiController) state(ctx *fiber.Ctx) error {
	sessionID := c.GetSessionID(ctx)
	state := viewstatehandler.Instance.Get(sessionID)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(state))
}

// @Summary フォームへ戻る
// @Tags マッチング
// @Description Results→Formへ遷移し、保持していた結果を全て破棄する
// @Param   X-Session-Id		header	string	false	"session id"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @router /api/v1/matching/reset [post]
func (c *matchingApiController) reset(ctx *fiber.Ctx) error {
	sessionID := c.GetSessionID(ctx)
	viewstatehandler.Instance.ResetToForm(sessionID)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
