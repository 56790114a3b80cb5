package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func ConnectRedis(cfg *AppConfig, log *zap.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info("✅ Connected to Redis", zap.String("ping", res))
	return client, nil
}
