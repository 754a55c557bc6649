package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"anken-match-backend/config"
)

// 認証不要のパス（認証チャレンジ用API、静的ファイル等）
var authSkipPrefixes = []string{
	"/api/basic-auth",
	"/favicon.ico",
	"/static",
	"/public",
	"/swagger",
}

// BasicAuthRequired はルーティング前に全リクエストへBasic認証を要求する。
// DISABLE_AUTH=true または development 環境では認証をスキップする（信頼された非常口）。
// 認証情報の不正（ヘッダ欠落・base64不正・コロン無し・不一致）は全て401として扱い、
// サーバエラーにはしない（fail closed）。
func BasicAuthRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if isAuthDisabled() {
			return ctx.Next()
		}
		if isAllowListed(ctx.Path()) {
			return ctx.Next()
		}
		header := ctx.Get(fiber.HeaderAuthorization)
		if checkBasicAuth(header) {
			return ctx.Next()
		}
		return unauthorized(ctx)
	}
}

// isAllowListed はパスセグメント単位で前方一致を判定する。
// "/static" は "/static" と "/static/..." のみ許可し、"/staticfoo" は対象外。
func isAllowListed(path string) bool {
	for _, prefix := range authSkipPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

func isAuthDisabled() bool {
	if config.Conf.Auth.Disabled != nil && *config.Conf.Auth.Disabled {
		return true
	}
	return config.Conf.App.Environment == "development"
}

func checkBasicAuth(header string) bool {
	if header == "" {
		return false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		log.WithError(err).Warn("Basic認証ヘッダのデコードに失敗")
		return false
	}
	// 最初のコロンのみ区切りとして扱う。パスワード自体がコロンを含んでも良い
	cred := strings.SplitN(string(decoded), ":", 2)
	if len(cred) != 2 {
		return false
	}
	return cred[0] == config.Conf.Auth.User && cred[1] == config.Conf.Auth.Password
}

func unauthorized(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderWWWAuthenticate, `Basic realm="`+config.Conf.Auth.Realm+`"`)
	ctx.Set(fiber.HeaderContentType, "text/html; charset=UTF-8")
	return ctx.Status(fiber.StatusUnauthorized).SendString(accessDeniedPage)
}

const accessDeniedPage = `<!DOCTYPE html>
<html>
  <head>
    <title>認証が必要です</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
      body {
        font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif;
        display: flex;
        justify-content: center;
        align-items: center;
        height: 100vh;
        margin: 0;
        background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      }
      .container {
        text-align: center;
        padding: 3rem 2rem;
        background: white;
        border-radius: 12px;
        box-shadow: 0 8px 32px rgba(0,0,0,0.1);
        max-width: 400px;
        width: 90%;
      }
      .lock-icon { font-size: 3rem; margin-bottom: 1rem; }
      h1 { color: #333; margin-bottom: 0.5rem; font-size: 1.5rem; }
      p { color: #666; margin-bottom: 2rem; line-height: 1.5; }
      .credentials {
        background: #f8f9fa;
        border: 1px solid #e9ecef;
        border-radius: 6px;
        padding: 1rem;
        margin: 1rem 0;
        font-size: 0.9rem;
        color: #495057;
      }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="lock-icon">🔒</div>
      <h1>認証が必要です</h1>
      <p>このサイトにアクセスするには認証が必要です。<br>ブラウザの認証ダイアログで以下の情報を入力してください。</p>
      <div class="credentials">
        <strong>ユーザー名:</strong> admin<br>
        <strong>パスワード:</strong> 管理者にお問い合わせください
      </div>
    </div>
  </body>
</html>
`
