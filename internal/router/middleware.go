package router

import (
	"strings"
	"time"

	"github.com/escriba/internal/cache"
	"github.com/escriba/internal/config"
	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/http/handlers/shared"
	"github.com/escriba/internal/http/response"
	"github.com/escriba/internal/i18n"
	"github.com/escriba/internal/logger"
	"github.com/escriba/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RequestIDMiddleware 为每个请求生成追踪标识
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggerMiddleware 请求访问日志
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		shared.RequestLog(c).Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// CORSMiddleware 跨域响应头
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := resolveAllowedOrigin(cfg, c.GetHeader("Origin"))
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Accept-Language")
			if cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func resolveAllowedOrigin(cfg config.CORSConfig, origin string) string {
	if len(cfg.AllowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range cfg.AllowedOrigins {
		if allowed == "*" {
			if cfg.AllowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}
	return ""
}

// abortUnauthorized 401 响应总是携带登录入口
func abortUnauthorized(c *gin.Context, i18nKey string) {
	response.ErrorWithData(c, response.CodeUnauthorized,
		i18n.T(i18n.ResolveLocale(c), i18nKey),
		gin.H{"login_url": "/api/v1/auth/login"})
	c.Abort()
}

func parseBearerToken(c *gin.Context, secretKey string) (jwt.MapClaims, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, "error.auth_header_missing"
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, "error.auth_header_invalid"
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, "error.token_invalid"
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "error.token_invalid"
	}
	return claims, ""
}

func claimUint(claims jwt.MapClaims, key string) (uint, bool) {
	v, ok := claims[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || f <= 0 {
		return 0, false
	}
	return uint(f), true
}

func claimUint64(claims jwt.MapClaims, key string) uint64 {
	if f, ok := claims[key].(float64); ok {
		return uint64(f)
	}
	return 0
}

func claimInt64(claims jwt.MapClaims, key string) int64 {
	if f, ok := claims[key].(float64); ok {
		return int64(f)
	}
	return 0
}

// isIssuedAfterInvalidBefore 令牌签发时间需晚于强制失效时间
func isIssuedAfterInvalidBefore(issuedAt, invalidBefore int64) bool {
	if invalidBefore == 0 {
		return true
	}
	return issuedAt >= invalidBefore
}

// UserJWTAuthMiddleware 前台用户认证，向上下文注入 user_id 与 user_email
func UserJWTAuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errKey := parseBearerToken(c, secretKey)
		if errKey != "" {
			abortUnauthorized(c, errKey)
			return
		}
		userID, ok := claimUint(claims, "user_id")
		if !ok {
			abortUnauthorized(c, "error.token_invalid")
			return
		}

		tokenVersion := claimUint64(claims, "token_version")
		issuedAt := claimInt64(claims, "iat")

		if state, found := cache.GetUserAuthState(c.Request.Context(), userID); found {
			if state.TokenVersion != tokenVersion ||
				!isIssuedAfterInvalidBefore(issuedAt, state.TokenInvalidBefore) ||
				state.Status != constants.UserStatusActive {
				abortUnauthorized(c, "error.token_revoked")
				return
			}
		} else {
			user, err := userRepo.GetByID(userID)
			if err != nil {
				logger.Errorw("user_auth_lookup_failed", "user_id", userID, "error", err)
				abortUnauthorized(c, "error.token_invalid")
				return
			}
			if user == nil || user.Status != constants.UserStatusActive {
				abortUnauthorized(c, "error.token_revoked")
				return
			}
			state := cache.BuildUserAuthState(user)
			if state.TokenVersion != tokenVersion || !isIssuedAfterInvalidBefore(issuedAt, state.TokenInvalidBefore) {
				abortUnauthorized(c, "error.token_revoked")
				return
			}
			cache.SetUserAuthState(c.Request.Context(), userID, state)
		}

		c.Set("user_id", userID)
		if email, ok := claims["email"].(string); ok {
			c.Set("user_email", email)
		}
		c.Next()
	}
}

// JWTAuthMiddleware 后台管理员认证，向上下文注入 admin_id 等
func JWTAuthMiddleware(secretKey string, adminRepo repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errKey := parseBearerToken(c, secretKey)
		if errKey != "" {
			abortUnauthorized(c, errKey)
			return
		}
		adminID, ok := claimUint(claims, "admin_id")
		if !ok {
			abortUnauthorized(c, "error.token_invalid")
			return
		}

		tokenVersion := claimUint64(claims, "token_version")
		issuedAt := claimInt64(claims, "iat")
		var isSuper bool

		if state, found := cache.GetAdminAuthState(c.Request.Context(), adminID); found {
			if state.TokenVersion != tokenVersion || !isIssuedAfterInvalidBefore(issuedAt, state.TokenInvalidBefore) {
				abortUnauthorized(c, "error.token_revoked")
				return
			}
			isSuper = state.IsSuper
		} else {
			admin, err := adminRepo.GetByID(adminID)
			if err != nil {
				logger.Errorw("admin_auth_lookup_failed", "admin_id", adminID, "error", err)
				abortUnauthorized(c, "error.token_invalid")
				return
			}
			if admin == nil {
				abortUnauthorized(c, "error.token_revoked")
				return
			}
			state := cache.BuildAdminAuthState(admin)
			if state.TokenVersion != tokenVersion || !isIssuedAfterInvalidBefore(issuedAt, state.TokenInvalidBefore) {
				abortUnauthorized(c, "error.token_revoked")
				return
			}
			cache.SetAdminAuthState(c.Request.Context(), adminID, state)
			isSuper = admin.IsSuper
		}

		c.Set("admin_id", adminID)
		c.Set("admin_is_super", isSuper)
		if username, ok := claims["username"].(string); ok {
			c.Set("username", username)
		}
		c.Next()
	}
}

// AdminRBACMiddleware 管理员路由级授权，超级管理员直通
func AdminRBACMiddleware(authzService authzEnforcer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSuper, ok := c.Get("admin_is_super"); ok {
			if super, ok := isSuper.(bool); ok && super {
				c.Next()
				return
			}
		}

		adminID, ok := shared.GetContextUint(c, "admin_id")
		if !ok {
			abortUnauthorized(c, "error.unauthorized")
			return
		}

		allowed, err := authzService.EnforceAdmin(adminID, c.FullPath(), c.Request.Method)
		if err != nil {
			logger.Errorw("rbac_enforce_failed", "admin_id", adminID, "path", c.FullPath(), "error", err)
			response.Forbidden(c, i18n.T(i18n.ResolveLocale(c), "error.forbidden"))
			c.Abort()
			return
		}
		if !allowed {
			response.Forbidden(c, i18n.T(i18n.ResolveLocale(c), "error.forbidden"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// authzEnforcer 路由层所需的最小授权接口
type authzEnforcer interface {
	EnforceAdmin(adminID uint, object, action string) (bool, error)
}
