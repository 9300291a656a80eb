package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/you-humble/field-orders/internal/model"
)

//go:embed data/products.json
var bundled []byte

type productEntity struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand,omitempty"`
	Barcode  model.StringSet `json:"barcode"`
	PackSize model.StringSet `json:"packSize"`
	Image    string          `json:"image,omitempty"`
}

// repository serves the product dataset bundled with the binary.
type repository struct {
	products []model.Product
}

func NewProductRepository() (*repository, error) {
	return NewProductRepositoryFromJSON(bundled)
}

func NewProductRepositoryFromJSON(raw []byte) (*repository, error) {
	const op = "static.NewProductRepository"

	var entities []productEntity
	if err := json.Unmarshal(raw, &entities); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products := lo.Map(entities, func(e productEntity, _ int) model.Product {
		return model.Product{
			SKU:       e.SKU,
			Name:      e.Name,
			Brand:     e.Brand,
			Barcodes:  slices.Clone(e.Barcode),
			PackSizes: slices.Clone(e.PackSize),
			Image:     e.Image,
		}
	})

	return &repository{products: products}, nil
}

// ListProducts returns the whole dataset; matching happens in the catalog.
func (r *repository) ListProducts(_ context.Context, _ model.ProductsFilter) ([]model.Product, error) {
	return lo.Map(r.products, func(p model.Product, _ int) model.Product {
		p.Barcodes = slices.Clone(p.Barcodes)
		p.PackSizes = slices.Clone(p.PackSizes)
		return p
	}), nil
}

// All is used to seed other catalog stores.
func (r *repository) All() []model.Product {
	out, _ := r.ListProducts(context.Background(), model.ProductsFilter{})
	return out
}
