package remote

import (
	"context"
	"fmt"

	backendclient "github.com/you-humble/field-orders/internal/client/http/backend/v1"
	"github.com/you-humble/field-orders/internal/model"
)

type BackendClient interface {
	ListMerchants(ctx context.Context) ([]model.Merchant, error)
	ListStores(ctx context.Context, q backendclient.StoresQuery) ([]model.Store, backendclient.Paging, error)
}

type repository struct {
	client   BackendClient
	pageSize int
}

func NewStoreRepository(client BackendClient, pageSize int) *repository {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &repository{client: client, pageSize: pageSize}
}

func (r *repository) ListMerchants(ctx context.Context) ([]model.Merchant, error) {
	const op = "remote.repository.ListMerchants"

	merchants, err := r.client.ListMerchants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return merchants, nil
}

// ListStores walks every page. The merchant filter is a backend merchant id.
func (r *repository) ListStores(ctx context.Context, filter model.StoresFilter) ([]model.Store, error) {
	const op = "remote.repository.ListStores"

	return backendclient.ListAll(ctx, r.pageSize,
		func(ctx context.Context, page, limit int) ([]model.Store, backendclient.Paging, error) {
			stores, paging, err := r.client.ListStores(ctx, backendclient.StoresQuery{
				ListQuery: backendclient.ListQuery{
					Page:     page,
					Limit:    limit,
					Sort:     "code",
					Populate: []string{"merchant"},
				},
				Merchant: filter.Merchant,
			})
			if err != nil {
				return nil, backendclient.Paging{}, fmt.Errorf("%s: page %d: %w", op, page, err)
			}
			return stores, paging, nil
		})
}
