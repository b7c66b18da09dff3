package public

import "github.com/escriba/internal/provider"

// Handler 前台处理器
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
