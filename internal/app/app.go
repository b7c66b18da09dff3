package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/escriba/internal/config"
	"github.com/escriba/internal/logger"
	"github.com/escriba/internal/provider"
	"github.com/escriba/internal/router"
	"github.com/escriba/internal/worker"
)

// 运行模式
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Options 运行选项
type Options struct {
	Config          *config.Config
	Mode            string
	Signals         []os.Signal
	ShutdownTimeout time.Duration
}

func normalizeOptions(opts Options) Options {
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	if len(opts.Signals) == 0 {
		opts.Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return opts
}

// Runner 托管一组服务的启停
type Runner struct {
	services        []Service
	shutdownTimeout time.Duration
}

// BuildRunner 按运行模式组装服务
func BuildRunner(opts Options, container *provider.Container) (*Runner, error) {
	opts = normalizeOptions(opts)

	var services []Service
	if opts.Mode == ModeAll || opts.Mode == ModeAPI {
		engine := router.SetupRouter(opts.Config, container)
		services = append(services, NewHTTPService("api", &http.Server{
			Addr:    opts.Config.Server.Addr(),
			Handler: engine,
		}))
	}
	if opts.Mode == ModeAll || opts.Mode == ModeWorker {
		if opts.Config.Queue.Enabled {
			consumer := worker.NewConsumer(container)
			services = append(services, worker.NewService(&opts.Config.Queue, consumer))
		} else if opts.Mode == ModeWorker {
			return nil, errors.New("worker mode requires queue.enabled")
		}
	}
	if len(services) == 0 {
		return nil, errors.New("no services for mode " + opts.Mode)
	}

	return &Runner{services: services, shutdownTimeout: opts.ShutdownTimeout}, nil
}

// Run 组装容器与服务并运行至收到退出信号
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	container := provider.NewContainer(opts.Config)

	runner, err := BuildRunner(opts, container)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), opts.Signals...)
	defer stop()
	defer func() {
		if err := container.QueueClient.Close(); err != nil {
			logger.Warnw("queue_close_failed", "error", err)
		}
	}()

	return runner.Run(ctx)
}

// Run 启动全部服务并等待退出，任一服务失败触发整体停止
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		svc := svc
		go func() {
			logger.Infow("service_starting", "service", svc.Name())
			if err := svc.Start(ctx); err != nil {
				errCh <- err
				return
			}
			errCh <- nil
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			runErr = err
		}
	}
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), r.shutdownTimeout)
	defer stopCancel()
	for _, svc := range r.services {
		if err := svc.Stop(stopCtx); err != nil {
			logger.Warnw("service_stop_failed", "service", svc.Name(), "error", err)
		} else {
			logger.Infow("service_stopped", "service", svc.Name())
		}
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
