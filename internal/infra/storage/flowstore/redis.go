package flowstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConfig параметры Redis backend
type RedisConfig struct {
	Client *redis.Client

	// KeyPrefix префикс всех ключей, по умолчанию "intake:"
	KeyPrefix string
}

// RedisBackend хранит blob'ы в Redis строками
type RedisBackend struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisBackend создает Redis backend
func NewRedisBackend(cfg RedisConfig) (*RedisBackend, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("%w: redis client is required", ErrInvalidConfig)
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "intake:"
	}
	return &RedisBackend{client: cfg.Client, keyPrefix: cfg.KeyPrefix}, nil
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	blob, err := r.client.Get(ctx, r.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: redis get %s: %v", ErrBackend, key, err)
	}
	return blob, true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, blob []byte) error {
	if err := r.client.Set(ctx, r.keyPrefix+key, blob, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", ErrBackend, key, err)
	}
	return nil
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%w: redis del %s: %v", ErrBackend, key, err)
	}
	return nil
}

func (r *RedisBackend) Name() string { return "redis" }

// Close закрывает Redis клиент
func (r *RedisBackend) Close() error { return r.client.Close() }
