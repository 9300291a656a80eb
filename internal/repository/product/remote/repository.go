package remote

import (
	"context"

	backendclient "github.com/you-humble/field-orders/internal/client/http/backend/v1"
	"github.com/you-humble/field-orders/internal/model"
)

type BackendClient interface {
	ListProducts(ctx context.Context, q backendclient.ProductsQuery) ([]model.Product, error)
}

type repository struct {
	client BackendClient
	limit  int
}

func NewProductRepository(client BackendClient, limit int) *repository {
	return &repository{client: client, limit: limit}
}

func (r *repository) ListProducts(ctx context.Context, filter model.ProductsFilter) ([]model.Product, error) {
	return r.client.ListProducts(ctx, backendclient.ProductsQuery{
		ListQuery: backendclient.ListQuery{Limit: r.limit},
		Barcode:   filter.Barcode,
		SKU:       filter.SKU,
		Name:      filter.Name,
	})
}
