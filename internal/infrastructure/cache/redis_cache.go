package cache

import (
	"context"
	"log"
	"time"

	"financiamento_xpto/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs the pricing cascade cache with Redis. Failures degrade to
// cache misses: the valuation source is the fallback, never an error page.
type RedisCache struct {
	client *redis.Client
}

var _ interfaces.ICacheRepository = (*RedisCache)(nil)

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache][redis] get failed key=%s err=%v", key, err)
		}
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
