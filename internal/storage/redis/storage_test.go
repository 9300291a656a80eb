package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/you-humble/field-orders/internal/model"
)

type StorageTestSuite struct {
	suite.Suite
	server  *miniredis.Miniredis
	client  *redis.Client
	storage *storage
	ctx     context.Context
}

func TestStorage(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) SetupSuite() {
	s.server = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.storage = NewStorage(s.client, "field-orders")
	s.ctx = context.Background()
}

func (s *StorageTestSuite) TearDownSuite() {
	s.client.Close()
}

func (s *StorageTestSuite) SetupTest() {
	s.server.FlushAll()
}

func (s *StorageTestSuite) TestStorageKey() {
	s.Equal("field-orders:orders", s.storage.storageKey("orders"))
	s.Equal("orders", NewStorage(s.client, "").storageKey("orders"))
}

func (s *StorageTestSuite) TestGetMissing() {
	_, err := s.storage.Get(s.ctx, "orders")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageTestSuite) TestSetGet() {
	s.Require().NoError(s.storage.Set(s.ctx, "orders", []byte(`[{"orderNumber":"PO20240101001"}]`)))

	raw, err := s.server.Get("field-orders:orders")
	s.Require().NoError(err)
	s.Equal(`[{"orderNumber":"PO20240101001"}]`, raw)

	got, err := s.storage.Get(s.ctx, "orders")
	s.Require().NoError(err)
	s.JSONEq(`[{"orderNumber":"PO20240101001"}]`, string(got))
}

func (s *StorageTestSuite) TestServerDown() {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	_, err := NewStorage(client, "x").Get(s.ctx, "orders")
	s.Error(err)
	s.NotErrorIs(err, model.ErrKeyNotFound)
}
