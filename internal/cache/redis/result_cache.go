// Package redis implements the classification result cache on Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"billsense/internal/classifier"
	"billsense/internal/config"
	"billsense/internal/domain"
	"billsense/internal/port"
)

// connectionTimeout bounds the startup ping.
const connectionTimeout = 5 * time.Second

// NewClient creates a Redis client and verifies the connection.
func NewClient(cfg *config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

type resultCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewResultCache creates a ResultCache storing JSON-encoded matrices under prefix.
func NewResultCache(client *goredis.Client, prefix string, ttl time.Duration) port.ResultCache {
	return &resultCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *resultCache) Get(ctx context.Context, key string) (*classifier.Matrix, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("resultCache.Get: %w", err)
	}

	var m classifier.Matrix
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("resultCache.Get decode: %w", err)
	}
	return &m, nil
}

func (c *resultCache) Set(ctx context.Context, key string, m *classifier.Matrix) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("resultCache.Set encode: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("resultCache.Set: %w", err)
	}
	return nil
}
