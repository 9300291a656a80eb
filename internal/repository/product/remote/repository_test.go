package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backendclient "github.com/you-humble/field-orders/internal/client/http/backend/v1"
	"github.com/you-humble/field-orders/internal/model"
)

type recordingClient struct {
	got backendclient.ProductsQuery
}

func (c *recordingClient) ListProducts(_ context.Context, q backendclient.ProductsQuery) ([]model.Product, error) {
	c.got = q
	return []model.Product{{ID: "p1", SKU: "100"}}, nil
}

func TestListProductsPassesFilter(t *testing.T) {
	t.Parallel()

	c := &recordingClient{}
	r := NewProductRepository(c, 50)

	got, err := r.ListProducts(context.Background(), model.ProductsFilter{Barcode: "0123", Name: "milk"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "0123", c.got.Barcode)
	assert.Equal(t, "milk", c.got.Name)
	assert.Equal(t, 50, c.got.Limit)
}
