package worker

import (
	"context"

	"github.com/escriba/internal/config"
	"github.com/escriba/internal/logger"
	"github.com/escriba/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 后台任务消费服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 创建任务消费服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) *Service {
	redisOpt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(redisOpt, serverCfg)

	mux := asynq.NewServeMux()
	consumer.Register(mux)

	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}
}

// Name 服务名
func (s *Service) Name() string {
	return s.name
}

// Start 启动消费循环，阻塞直到服务停止
func (s *Service) Start(ctx context.Context) error {
	logger.Infow("worker_starting")
	return s.server.Run(s.mux)
}

// Stop 优雅停止
func (s *Service) Stop(ctx context.Context) error {
	s.server.Shutdown()
	logger.Infow("worker_stopped")
	return nil
}
