package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("session")

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed Store. Expiry is left to Redis key TTLs.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (r *redisStore) Load(ctx context.Context, id string) (*Data, error) {
	ctx, span := tracer.Start(ctx, "RedisStore.Load")
	defer span.End()

	raw, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &data, nil
}

func (r *redisStore) Save(ctx context.Context, id string, data *Data, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "RedisStore.Save")
	defer span.End()

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.rdb.Set(ctx, sessionKey(id), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "RedisStore.Delete")
	defer span.End()

	return r.rdb.Del(ctx, sessionKey(id)).Err()
}

func (r *redisStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "RedisStore.Touch")
	defer span.End()

	ok, err := r.rdb.Expire(ctx, sessionKey(id), ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to extend session in redis: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
