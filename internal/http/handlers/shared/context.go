package shared

import "github.com/gin-gonic/gin"

// GetContextUint 从上下文取 uint 主体标识，缺失或类型不符返回 false
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		return 0, false
	}
	return id, true
}
