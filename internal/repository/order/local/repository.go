package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/internal/storage/serial"
)

const ordersKey = "orders"

type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// repository keeps the whole order collection as one JSON array under the
// "orders" key. Every mutation re-reads the collection, changes it and writes
// it back on the write queue, so mutations never interleave.
type repository struct {
	store KVStore
	queue *serial.Queue
	loc   *time.Location
	now   func() time.Time
}

func NewOrderRepository(store KVStore, queue *serial.Queue, loc *time.Location) *repository {
	if loc == nil {
		loc = time.Local
	}
	return &repository{
		store: store,
		queue: queue,
		loc:   loc,
		now:   time.Now,
	}
}

func (r *repository) CreateOrder(ctx context.Context, store model.StoreRef) (model.Order, error) {
	if store.Code == "" {
		return model.Order{}, model.ErrNoStoreSelected
	}

	var created model.Order
	err := r.mutate(ctx, func(orders []OrderEntity) ([]OrderEntity, error) {
		now := r.now().In(r.loc)
		day := now.Format("20060102")

		seq := len(orders)
		number := orderNumber(day, seq)
		for indexOf(orders, number) >= 0 {
			seq++
			number = orderNumber(day, seq)
		}

		created = model.Order{
			Number:    number,
			Store:     store,
			CreatedAt: now,
			Items:     []model.Item{},
		}
		return append(orders, EntityFromModel(created)), nil
	})
	if err != nil {
		return model.Order{}, err
	}

	return created, nil
}

func (r *repository) FindOrder(ctx context.Context, number string) (model.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return model.Order{}, err
	}

	i := indexOf(orders, number)
	if i < 0 {
		return model.Order{}, model.ErrOrderNotFound
	}

	return EntityToModel(orders[i]), nil
}

func (r *repository) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return EntitiesToModels(orders), nil
}

func (r *repository) ListOrdersGroupedByDate(ctx context.Context) ([]model.DayGroup, error) {
	orders, err := r.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return model.GroupByDate(orders, r.loc), nil
}

func (r *repository) AddItem(ctx context.Context, number string, p model.Product, quantity int) (model.Item, error) {
	if quantity <= 0 {
		return model.Item{}, fmt.Errorf("%w: quantity must be positive", model.ErrValidation)
	}

	var added model.Item
	err := r.mutateOrder(ctx, number, func(o *model.Order) error {
		added = model.NewItem(p, quantity, r.now().In(r.loc))
		o.Items = append(o.Items, added)
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}

	return added, nil
}

func (r *repository) UpdateItemQuantity(ctx context.Context, number, sku string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", model.ErrValidation)
	}

	return r.mutateOrder(ctx, number, func(o *model.Order) error {
		i := o.ItemIndex(sku)
		if i < 0 {
			return model.ErrItemNotFound
		}
		o.Items[i].Quantity = quantity
		return nil
	})
}

func (r *repository) RemoveItem(ctx context.Context, number, sku string) error {
	return r.mutateOrder(ctx, number, func(o *model.Order) error {
		i := o.ItemIndex(sku)
		if i < 0 {
			return model.ErrItemNotFound
		}
		o.Items = slices.Delete(o.Items, i, i+1)
		return nil
	})
}

func (r *repository) UpdateNotes(ctx context.Context, number, notes string) error {
	return r.mutateOrder(ctx, number, func(o *model.Order) error {
		o.Notes = notes
		return nil
	})
}

func (r *repository) RemoveOrder(ctx context.Context, number string) error {
	return r.mutate(ctx, func(orders []OrderEntity) ([]OrderEntity, error) {
		i := indexOf(orders, number)
		if i < 0 {
			return nil, model.ErrOrderNotFound
		}
		return slices.Delete(orders, i, i+1), nil
	})
}

func (r *repository) mutateOrder(ctx context.Context, number string, fn func(o *model.Order) error) error {
	return r.mutate(ctx, func(orders []OrderEntity) ([]OrderEntity, error) {
		i := indexOf(orders, number)
		if i < 0 {
			return nil, model.ErrOrderNotFound
		}

		o := EntityToModel(orders[i])
		if err := fn(&o); err != nil {
			return nil, err
		}

		orders[i] = carryExtra(orders[i], EntityFromModel(o))
		return orders, nil
	})
}

func (r *repository) mutate(ctx context.Context, fn func(orders []OrderEntity) ([]OrderEntity, error)) error {
	return r.queue.Do(ctx, func(ctx context.Context) error {
		orders, err := r.load(ctx)
		if err != nil {
			return err
		}

		orders, err = fn(orders)
		if err != nil {
			return err
		}

		return r.save(ctx, orders)
	})
}

func (r *repository) load(ctx context.Context) ([]OrderEntity, error) {
	const op = "local.repository.load"

	raw, err := r.store.Get(ctx, ordersKey)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return []OrderEntity{}, nil
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStorageRead, err)
	}

	var orders []OrderEntity
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStorageRead, err)
	}
	if orders == nil {
		orders = []OrderEntity{}
	}

	return orders, nil
}

func (r *repository) save(ctx context.Context, orders []OrderEntity) error {
	const op = "local.repository.save"

	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStorageWrite, err)
	}

	if err := r.store.Set(ctx, ordersKey, raw); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStorageWrite, err)
	}

	return nil
}

func indexOf(orders []OrderEntity, number string) int {
	return slices.IndexFunc(orders, func(o OrderEntity) bool { return o.OrderNumber == number })
}

func orderNumber(day string, seq int) string {
	return fmt.Sprintf("PO%s%03d", day, seq)
}
