package database

import (
	"github.com/redis/go-redis/v9"

	"github.com/platescan/backend/config"
)

// NewRedis creates a Redis client for the raw-response cache.
func NewRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
