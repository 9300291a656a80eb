package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/you-humble/field-orders/internal/model"
)

type storage struct {
	client redis.UniversalClient
	prefix string
}

func NewStorage(client redis.UniversalClient, prefix string) *storage {
	return &storage{client: client, prefix: prefix}
}

// storageKey returns "<prefix>:<key>", or the bare key when no prefix is set.
func (s *storage) storageKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *storage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "redis.storage.Get"

	b, err := s.client.Get(ctx, s.storageKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrKeyNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func (s *storage) Set(ctx context.Context, key string, value []byte) error {
	const op = "redis.storage.Set"

	if err := s.client.Set(ctx, s.storageKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
