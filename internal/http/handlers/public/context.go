package public

import (
	"github.com/escriba/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// getUserID 从上下文取当前登录用户
func getUserID(c *gin.Context) (uint, bool) {
	return shared.GetContextUint(c, "user_id")
}
