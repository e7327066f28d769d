package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisClient is nil when Redis is not configured; consumers must treat
// it as optional.
var RedisClient *redis.Client

// InitRedis connects the Redis client and verifies the connection.
func InitRedis(config Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		RedisClient = nil
		return fmt.Errorf("redis connection test failed: %v", err)
	}

	return nil
}
