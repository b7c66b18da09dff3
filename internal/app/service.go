package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/escriba/internal/logger"
)

// Service 可托管的长生命周期服务
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// HTTPService 包装 http.Server 的服务实现
type HTTPService struct {
	name   string
	server *http.Server
}

// NewHTTPService 创建 HTTP 服务
func NewHTTPService(name string, server *http.Server) *HTTPService {
	return &HTTPService{name: name, server: server}
}

// Name 服务名
func (s *HTTPService) Name() string {
	return s.name
}

// Start 开始监听，阻塞直到服务关闭
func (s *HTTPService) Start(ctx context.Context) error {
	logger.Infow("http_listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅关闭
func (s *HTTPService) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
