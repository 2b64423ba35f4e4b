package config

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis initializes the optional cache client. When REDIS_ADDR is
// unset the application runs without caching; a configured but unreachable
// Redis is an error.
func ConnectRedis() error {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Println("REDIS_ADDR not set; running without cache")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	RedisClient = rdb
	log.Println("Redis connection established")
	return nil
}
