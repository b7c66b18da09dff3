package admin

import "github.com/escriba/internal/provider"

// Handler 后台处理器
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
