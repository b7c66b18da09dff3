package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/escriba/internal/http/response"
	"github.com/escriba/internal/i18n"
	"github.com/escriba/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitRule 限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int
	MessageKey    string
}

// rateLimitScript 窗口计数，超限后延长封禁时间，返回 {是否放行, 剩余秒数}
const rateLimitScript = `
local key = KEYS[1]
local window = tonumber(ARGV[1])
local max_requests = tonumber(ARGV[2])
local block = tonumber(ARGV[3])

local count = redis.call("INCR", key)
if count == 1 then
	redis.call("EXPIRE", key, window)
end
if count > max_requests then
	if block > 0 then
		redis.call("EXPIRE", key, block)
	end
	local ttl = redis.call("TTL", key)
	return {0, ttl}
end
return {1, 0}
`

// KeyFunc 限流主体提取函数
type KeyFunc func(c *gin.Context) string

// KeyByIP 按客户端 IP 限流
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 按 IP 与请求体字段联合限流，读取后回填请求体
func KeyByIPAndJSONField(field string) KeyFunc {
	return func(c *gin.Context) string {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return c.ClientIP()
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			return c.ClientIP()
		}
		value, _ := payload[field].(string)
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			return c.ClientIP()
		}
		return c.ClientIP() + ":" + value
	}
}

// RateLimitMiddleware 基于 Redis 的滑窗限流，Redis 不可用时直接放行
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", rule.Prefix, keyFunc(c))
		result, err := client.Eval(c.Request.Context(), rateLimitScript, []string{key},
			rule.WindowSeconds, rule.MaxRequests, rule.BlockSeconds).Result()
		if err != nil {
			logger.Warnw("rate_limit_unavailable", "prefix", rule.Prefix, "error", err)
			c.Next()
			return
		}

		values, ok := result.([]interface{})
		if !ok || len(values) != 2 {
			c.Next()
			return
		}
		if toInt64(values[0]) == 1 {
			c.Next()
			return
		}

		retryAfter := toInt64(values[1])
		messageKey := rule.MessageKey
		if messageKey == "" {
			messageKey = "error.rate_limited"
		}
		response.Error(c, response.CodeTooManyRequests,
			i18n.Sprintf(i18n.ResolveLocale(c), messageKey, retryAfter))
		c.Abort()
	}
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case string:
		var parsed int64
		fmt.Sscanf(n, "%d", &parsed)
		return parsed
	default:
		return 0
	}
}
