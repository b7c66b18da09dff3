package provider

import (
	"github.com/escriba/internal/authz"
	"github.com/escriba/internal/cache"
	"github.com/escriba/internal/config"
	"github.com/escriba/internal/logger"
	"github.com/escriba/internal/models"
	"github.com/escriba/internal/queue"
	"github.com/escriba/internal/repository"
	"github.com/escriba/internal/service"
)

// Container 全局依赖容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	PostRepo    repository.PostRepository
	CommentRepo repository.CommentRepository
	UserRepo    repository.UserRepository
	AdminRepo   repository.AdminRepository

	PostService      *service.PostService
	CommentService   *service.CommentService
	UserAuthService  *service.UserAuthService
	AdminAuthService *service.AdminAuthService
	EmailService     *service.EmailService
	AuthzService     *authz.Service
}

// NewContainer 初始化缓存、队列、仓储与服务
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	cache.InitRedis(&cfg.Redis)
	c.QueueClient = queue.NewClient(&cfg.Queue)

	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.PostRepo = repository.NewPostRepository(db)
	c.CommentRepo = repository.NewCommentRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.AdminRepo = repository.NewAdminRepository(db)
}

func (c *Container) initServices() {
	c.PostService = service.NewPostService(c.PostRepo)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.PostRepo, c.QueueClient, logger.S())
	c.UserAuthService = service.NewUserAuthService(c.UserRepo, c.Config.UserJWT, c.Config.Security.PasswordPolicy)
	c.AdminAuthService = service.NewAdminAuthService(c.AdminRepo, c.Config.JWT)
	c.EmailService = service.NewEmailService(c.Config.Email, logger.S())

	authzService, err := authz.NewService(models.DB)
	if err != nil {
		panic("init authz service: " + err.Error())
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		panic("bootstrap builtin roles: " + err.Error())
	}
	c.AuthzService = authzService
}
