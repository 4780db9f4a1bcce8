package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	redisclient "github.com/sahanperera/repairshop-backend/cmd/redis"
)

// Repository is the read-path cache. All methods degrade to no-ops when the
// client is not configured, so the cache is never load-bearing.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GetEntity(ctx context.Context, key string, dest interface{}) (bool, error)
	CacheEntity(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	return client.Get(ctx, key).Result()
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// GetEntity unmarshals a cached JSON value into dest. The second return is
// false on a miss (or when the cache is disabled).
func (r *redis) GetEntity(ctx context.Context, key string, dest interface{}) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return false, nil
	}

	val, err := client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// CacheEntity stores value as JSON under key with the given TTL.
func (r *redis) CacheEntity(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	body, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, string(body), ttl).Err()
}
