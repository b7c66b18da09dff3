package public

import (
	"github.com/escriba/internal/http/handlers/shared"
	"github.com/escriba/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, i18nKey string, err error) {
	shared.RespondError(c, code, i18nKey, err)
}

func respondErrorWithData(c *gin.Context, code int, i18nKey string, data interface{}) {
	shared.RespondErrorWithData(c, code, i18nKey, data)
}

// respondLoginRequired 401 并附带登录入口
func respondLoginRequired(c *gin.Context) {
	respondErrorWithData(c, response.CodeUnauthorized, "error.login_required", gin.H{
		"login_url": "/api/v1/auth/login",
	})
}
