package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/internal/storage/serial"
)

const productsKey = "products"

type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// repository keeps user set stock overrides as a JSON array of {sku, status}
// under the "products" key. SKUs without an entry are in stock.
type repository struct {
	store KVStore
	queue *serial.Queue
}

func NewStatusRepository(store KVStore, queue *serial.Queue) *repository {
	return &repository{store: store, queue: queue}
}

func (r *repository) SetStatus(ctx context.Context, sku string, status model.StockStatus) error {
	if sku == "" || !status.Valid() {
		return fmt.Errorf("%w: sku and status inStock|outOfStock are required", model.ErrValidation)
	}

	return r.queue.Do(ctx, func(ctx context.Context) error {
		overrides, err := r.load(ctx)
		if err != nil {
			return err
		}

		i := slices.IndexFunc(overrides, func(o model.StockOverride) bool { return o.SKU == sku })
		if i < 0 {
			overrides = append(overrides, model.StockOverride{SKU: sku, Status: status})
		} else {
			overrides[i].Status = status
		}

		return r.save(ctx, overrides)
	})
}

func (r *repository) Status(ctx context.Context, sku string) (model.StockStatus, error) {
	statuses, err := r.Statuses(ctx)
	if err != nil {
		return "", err
	}

	if s, ok := statuses[sku]; ok {
		return s, nil
	}
	return model.StatusInStock, nil
}

// Statuses returns every stored override keyed by sku.
func (r *repository) Statuses(ctx context.Context) (map[string]model.StockStatus, error) {
	overrides, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]model.StockStatus, len(overrides))
	for _, o := range overrides {
		if _, seen := out[o.SKU]; !seen {
			out[o.SKU] = o.Status
		}
	}
	return out, nil
}

func (r *repository) load(ctx context.Context) ([]model.StockOverride, error) {
	const op = "status.repository.load"

	raw, err := r.store.Get(ctx, productsKey)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStorageRead, err)
	}

	var overrides []model.StockOverride
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStorageRead, err)
	}
	return overrides, nil
}

func (r *repository) save(ctx context.Context, overrides []model.StockOverride) error {
	const op = "status.repository.save"

	raw, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStorageWrite, err)
	}
	if err := r.store.Set(ctx, productsKey, raw); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStorageWrite, err)
	}
	return nil
}
