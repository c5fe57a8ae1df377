package utils

import (
	"context"
	"time"

	"aircnc/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient creates the Redis client used for room read caching.
// The caller owns the client's lifetime and should Close it on shutdown.
func NewCacheClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
