package router

import (
	"github.com/escriba/internal/cache"
	"github.com/escriba/internal/config"
	adminhandlers "github.com/escriba/internal/http/handlers/admin"
	publichandlers "github.com/escriba/internal/http/handlers/public"
	"github.com/escriba/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 组装全部路由。
// 文章路由先注册字面量段（/posts/new），再注册 slug 通配，
// 保证标题恰为 "new" 的文章也不会截获创建入口。
func SetupRouter(cfg *config.Config, container *provider.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), LoggerMiddleware(), CORSMiddleware(cfg.CORS))

	publicHandler := publichandlers.New(container)
	adminHandler := adminhandlers.New(container)

	userAuth := UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, container.UserRepo)
	adminAuth := JWTAuthMiddleware(cfg.JWT.SecretKey, container.AdminRepo)

	loginLimit := RateLimitMiddleware(cache.Client(), RateLimitRule{
		Prefix:        "login",
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited",
	}, KeyByIPAndJSONField("email"))

	adminLoginLimit := RateLimitMiddleware(cache.Client(), RateLimitRule{
		Prefix:        "admin_login",
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited",
	}, KeyByIPAndJSONField("username"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")

	auth := apiV1.Group("/auth")
	{
		auth.POST("/register", publicHandler.Register)
		auth.POST("/login", loginLimit, publicHandler.Login)
		auth.GET("/me", userAuth, publicHandler.Me)
	}

	posts := apiV1.Group("/posts")
	{
		posts.GET("", publicHandler.ListPosts)

		// 固定段路由优先于 :slug 通配
		posts.GET("/new", userAuth, publicHandler.NewPostForm)
		posts.POST("/new", userAuth, publicHandler.CreatePost)

		posts.GET("/:slug", publicHandler.GetPost)
		posts.POST("/:slug", userAuth, publicHandler.CreateComment)
		posts.GET("/:slug/edit", userAuth, publicHandler.EditPostForm)
		posts.POST("/:slug/edit", userAuth, publicHandler.UpdatePost)
		posts.GET("/:slug/delete", userAuth, publicHandler.DeletePostConfirm)
		posts.POST("/:slug/delete", userAuth, publicHandler.DeletePost)
	}

	admin := apiV1.Group("/admin")
	{
		admin.POST("/login", adminLoginLimit, adminHandler.Login)

		authorized := admin.Group("")
		authorized.Use(adminAuth, AdminRBACMiddleware(container.AuthzService))
		{
			authorized.PUT("/password", adminHandler.UpdatePassword)

			authorized.GET("/posts", adminHandler.ListPosts)
			authorized.POST("/posts", adminHandler.CreatePost)
			authorized.GET("/posts/:id", adminHandler.GetPost)
			authorized.PUT("/posts/:id", adminHandler.UpdatePost)
			authorized.DELETE("/posts/:id", adminHandler.DeletePost)

			authorized.GET("/comments", adminHandler.ListComments)
			authorized.GET("/comments/bulk", adminHandler.BulkActions)
			authorized.POST("/comments/bulk", adminHandler.BulkModerate)
			authorized.DELETE("/comments/:id", adminHandler.DeleteComment)
		}
	}

	return r
}
