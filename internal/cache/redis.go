package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/escriba/internal/config"
	"github.com/escriba/internal/constants"
	"github.com/escriba/internal/logger"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient  *redis.Client
	redisPrefix  string
	redisEnabled bool
)

// InitRedis 初始化全局 Redis 客户端，未启用时保持关闭状态
func InitRedis(cfg *config.RedisConfig) {
	if cfg == nil || !cfg.Enabled {
		redisEnabled = false
		redisClient = nil
		return
	}

	redisPrefix = cfg.Prefix
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warnw("redis_unavailable", "addr", cfg.Addr(), "error", err)
		redisClient = nil
		redisEnabled = false
		return
	}

	redisEnabled = true
	logger.Infow("redis_connected", "addr", cfg.Addr(), "prefix", redisPrefix)
}

// Enabled Redis 是否可用
func Enabled() bool {
	return redisEnabled && redisClient != nil
}

// Client 返回底层客户端，未启用时为 nil
func Client() *redis.Client {
	return redisClient
}

// GetJSON 读取并反序列化缓存值，miss 时返回 (false, nil)
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	data, err := redisClient.Get(ctx, buildKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 序列化并写入缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return redisClient.Set(ctx, buildKey(key), data, ttl).Err()
}

// Del 删除缓存键
func Del(ctx context.Context, keys ...string) error {
	if !Enabled() || len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = buildKey(k)
	}
	return redisClient.Del(ctx, prefixed...).Err()
}

func buildKey(key string) string {
	return fmt.Sprintf("%s:%s", redisPrefix, key)
}
