// Package cache holds the Redis client and the timings cache built on it.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis. An empty address disables the cache and
// returns a nil client.
func NewClient(ctx context.Context, address, username, password string) (*redis.Client, error) {
	if address == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", address, err)
	}
	return rdb, nil
}
