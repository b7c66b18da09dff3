package admin

import (
	"github.com/escriba/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, i18nKey string, err error) {
	shared.RespondError(c, code, i18nKey, err)
}
