package kvstore

import (
	"context"
	"errors"
	"fmt"
	"travelease/config"
	infrasRedis "travelease/infras/redis"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisStore keeps collections in Redis so multiple instances share
// one state. Entries never expire; collections are long-lived.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.Config) *RedisStore {
	return &RedisStore{client: infrasRedis.New(cfg)}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Get").Msg("failed to read store entry")

		return nil, false, fmt.Errorf("failed to read store entry: %w", err)
	}

	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Set").Msg("failed to write store entry")

		return fmt.Errorf("failed to write store entry: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Delete").Msg("failed to delete store entry")

		return fmt.Errorf("failed to delete store entry: %w", err)
	}

	return nil
}
