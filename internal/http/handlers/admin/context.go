package admin

import (
	"github.com/escriba/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// getAdminID 从上下文取当前管理员
func getAdminID(c *gin.Context) (uint, bool) {
	return shared.GetContextUint(c, "admin_id")
}
