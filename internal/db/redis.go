package db

import (
	"github.com/redis/go-redis/v9"

	"github.com/mifrandir/fluctour/internal/config"
)

// ConnectRedis opens the maps response cache. An empty REDIS_ADDR disables
// the cache and returns a nil client.
func ConnectRedis(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}
