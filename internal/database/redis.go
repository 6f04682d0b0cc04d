package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/moodloom/backend/internal/config"
	"github.com/moodloom/backend/internal/logger"
)

// NewRedis connects the Redis client backing the HTTP rate limiter.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis", logger.String("addr", cfg.Addr))
	return client, nil
}
