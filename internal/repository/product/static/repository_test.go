package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/field-orders/internal/model"
)

func TestBundledDataset(t *testing.T) {
	t.Parallel()

	r, err := NewProductRepository()
	require.NoError(t, err)

	products, err := r.ListProducts(context.Background(), model.ProductsFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, products)

	skus := make(map[string]bool)
	for _, p := range products {
		assert.NotEmpty(t, p.SKU)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Barcodes, p.SKU)
		assert.False(t, skus[p.SKU], "duplicate sku %s", p.SKU)
		skus[p.SKU] = true
	}
}

func TestSingularAndArrayShapes(t *testing.T) {
	t.Parallel()

	r, err := NewProductRepositoryFromJSON([]byte(`[
		{"sku":"1","name":"a","barcode":"0123","packSize":6},
		{"sku":"2","name":"b","barcode":["0123","4567"],"packSize":["6","12"]}
	]`))
	require.NoError(t, err)

	products := r.All()
	require.Len(t, products, 2)
	assert.Equal(t, []string{"0123"}, products[0].Barcodes)
	assert.Equal(t, []string{"6"}, products[0].PackSizes)
	assert.Equal(t, []string{"0123", "4567"}, products[1].Barcodes)

	products[1].Barcodes[0] = "changed"
	assert.Equal(t, "0123", r.All()[1].Barcodes[0])
}

func TestInvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := NewProductRepositoryFromJSON([]byte(`{`))
	require.Error(t, err)
}
