// Package cache stores exported PDFs keyed by the print HTML they came from.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces PDF entries in a shared Redis.
const keyPrefix = "pdf:"

// PDFCache stores rendered PDFs. Get reports a miss with ok == false.
type PDFCache interface {
	Get(ctx context.Context, key string) (pdf []byte, ok bool, err error)
	Set(ctx context.Context, key string, pdf []byte) error
}

// Key derives the cache key for a print-target HTML document.
func Key(printHTML string) string {
	sum := sha256.Sum256([]byte(printHTML))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Options configures the Redis connection.
type Options struct {
	Address  string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache is a PDFCache backed by Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a RedisCache. It does not contact the server; call Ping
// to check connectivity.
func NewRedis(opts Options) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Address,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return NewRedisWithClient(client, opts.TTL)
}

// NewRedisWithClient wraps an existing client. A zero ttl keeps entries forever.
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Ping tests the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Get implements PDFCache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Set implements PDFCache.
func (c *RedisCache) Set(ctx context.Context, key string, pdf []byte) error {
	if err := c.client.Set(ctx, key, pdf, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
