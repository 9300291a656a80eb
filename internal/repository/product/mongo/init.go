package mongo

import (
	"context"

	"github.com/you-humble/field-orders/internal/model"
)

type BatchCreator interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, products []model.Product) error
}

// ProductsBootstrap seeds an empty catalog collection. A collection that
// already holds products is left alone.
func ProductsBootstrap(ctx context.Context, c BatchCreator, seed []model.Product) error {
	n, err := c.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return c.CreateBatch(ctx, seed)
}
