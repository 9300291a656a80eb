package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/you-humble/field-orders/internal/model"
)

type storage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStorage() *storage {
	return &storage{data: make(map[string][]byte)}
}

func (s *storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, model.ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (s *storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = slices.Clone(value)
	return nil
}
