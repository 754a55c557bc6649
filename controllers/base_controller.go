package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const SessionIDHeader = "X-Session-Id"

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("リクエストの解析に失敗")
		return errors.New("リクエストからデータを取得できませんでした")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("IDが指定されていません")
	}
	return id, nil
}

// GetSessionID はX-Session-Idヘッダからセッションを特定する。
// 未指定の場合は新規発行し、レスポンスヘッダで返す。
func (c *BaseAPIController) GetSessionID(ctx *fiber.Ctx) string {
	id := ctx.Get(SessionIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set(SessionIDHeader, id)
	return id
}
