package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// HomeCacheKey holds the rendered home payload (featured rooms + room types).
const HomeCacheKey = "cache:home:v1"

// GetFromRedis loads a cached JSON value into target. A cache miss leaves
// target untouched and returns nil.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// SetToRedis stores value as JSON under key with the given TTL.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis drops a cached key.
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

// InvalidateHomeCache is called after admin writes to rooms or room types.
// It is a no-op when Redis is not configured.
func InvalidateHomeCache(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = DeleteFromRedis(ctx, rdb, HomeCacheKey)
}
