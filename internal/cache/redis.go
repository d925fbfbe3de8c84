package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/cache.go -package=mocks shortlink-be/internal/cache Cache

// ErrMiss is returned by Get when the key is not cached.
var ErrMiss = errors.New("cache miss")

// pathPrefix namespaces the path -> URL entries.
const pathPrefix = "path"

// Cache stores resolved short links. Entries never go stale because short
// links are immutable; the TTL only bounds memory.
type Cache interface {
	Get(ctx context.Context, path string) (string, error)
	Set(ctx context.Context, path string, url string) error
	Ping(ctx context.Context) error
	Close() error
}

type redisCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *Metrics
}

// NewRedisCache creates a new Redis cache client
func NewRedisCache(ctx context.Context, redisURL string, ttl time.Duration, metrics *Metrics) (Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		// If URL parsing fails, try as simple host:port
		opt = &redis.Options{
			Addr: redisURL,
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisCache{client: client, ttl: ttl, metrics: metrics}, nil
}

// Get returns the URL cached for path, refreshing its TTL.
func (r *redisCache) Get(ctx context.Context, path string) (string, error) {
	val, err := r.client.GetEx(ctx, key(path), r.ttl).Result()
	if errors.Is(err, redis.Nil) {
		r.metrics.Misses.WithLabelValues(pathPrefix).Inc()
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	r.metrics.Hits.WithLabelValues(pathPrefix).Inc()
	return val, nil
}

// Set caches the URL of path
func (r *redisCache) Set(ctx context.Context, path string, url string) error {
	return r.client.Set(ctx, key(path), url, r.ttl).Err()
}

func (r *redisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisCache) Close() error {
	return r.client.Close()
}

func key(path string) string {
	return pathPrefix + ":" + path
}
