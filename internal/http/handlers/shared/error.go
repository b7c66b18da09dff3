package shared

import (
	"github.com/escriba/internal/http/response"
	"github.com/escriba/internal/i18n"
	"github.com/escriba/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 带 request_id 的请求级日志器
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if v, ok := c.Get("request_id"); ok {
		if id, ok := v.(string); ok {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 记录错误并按请求语言返回文案
func RespondError(c *gin.Context, code int, i18nKey string, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), i18nKey)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"path", c.FullPath(),
			"method", c.Request.Method,
			"code", code,
			"error", response.WrapError(code, msg, err).Error(),
		)
	}
	response.Error(c, code, msg)
}

// RespondErrorWithData 返回错误的同时回传数据（如字段级校验错误）
func RespondErrorWithData(c *gin.Context, code int, i18nKey string, data interface{}) {
	msg := i18n.T(i18n.ResolveLocale(c), i18nKey)
	response.ErrorWithData(c, code, msg, data)
}
