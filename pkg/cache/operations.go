package cache

import (
	"context"
	"encoding/json"
	"time"

	"homefeed-listings/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss mirrors redis.Nil so callers don't import the driver.
var ErrCacheMiss = redis.Nil

// SetJSON marshals value and stores it under key with the given TTL.
func SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	start := time.Now()
	err = RedisClient.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
	}
	return err
}

// GetJSON loads key and unmarshals it into dest. Returns ErrCacheMiss when absent.
func GetJSON(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	data, err := RedisClient.Get(ctx, key).Bytes()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err != nil {
		if err != redis.Nil {
			metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete removes one or more keys.
func Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	start := time.Now()
	err := RedisClient.Del(ctx, keys...).Err()
	metrics.RedisOperationDuration.WithLabelValues("del").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
	}
	return err
}
