package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/platform/logger"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, store model.StoreRef) (model.Order, error)
	FindOrder(ctx context.Context, number string) (model.Order, error)
	ListOrdersGroupedByDate(ctx context.Context) ([]model.DayGroup, error)
	AddItem(ctx context.Context, number string, p model.Product, quantity int) (model.Item, error)
	UpdateItemQuantity(ctx context.Context, number, sku string, quantity int) error
	RemoveItem(ctx context.Context, number, sku string) error
	UpdateNotes(ctx context.Context, number, notes string) error
	RemoveOrder(ctx context.Context, number string) error
}

type StoreDirectory interface {
	StoreByCode(ctx context.Context, code string) (model.Store, error)
}

type ProductCatalog interface {
	FindBySKU(ctx context.Context, sku string) (model.Product, error)
}

type OrderProducer interface {
	ProduceOrderEvent(ctx context.Context, event model.OrderEvent) error
}

type service struct {
	repo         OrderRepository
	stores       StoreDirectory
	catalog      ProductCatalog
	producer     OrderProducer
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewOrderService(
	repository OrderRepository,
	stores StoreDirectory,
	catalog ProductCatalog,
	producer OrderProducer,
	readTimeout time.Duration,
	writeTimeout time.Duration,
) *service {
	return &service{
		repo:         repository,
		stores:       stores,
		catalog:      catalog,
		producer:     producer,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

func (svc *service) CreateOrder(ctx context.Context, params model.CreateOrderParams) (model.Order, error) {
	const op string = "order.service.CreateOrder"
	log := logger.With(logger.String("store_code", params.StoreCode))

	code := strings.TrimSpace(params.StoreCode)
	if code == "" {
		log.Error(ctx, "no store selected")
		return model.Order{}, fmt.Errorf("%s: %w", op, model.ErrNoStoreSelected)
	}

	store, err := svc.stores.StoreByCode(ctx, code)
	if err != nil {
		log.Error(ctx, "store directory store by code", logger.ErrorF(err))
		return model.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeTimeout)
	defer cancel()

	ord, err := svc.repo.CreateOrder(wctx, store.Ref())
	if err != nil {
		log.Error(ctx, "repository create order", logger.ErrorF(err))
		return model.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "order created", logger.String("order_number", ord.Number))
	svc.publish(ctx, model.OrderEvent{
		Type:        model.EventOrderCreated,
		OrderNumber: ord.Number,
		StoreCode:   ord.Store.Code,
	})

	return ord, nil
}

func (svc *service) OrderByNumber(ctx context.Context, number string) (model.Order, error) {
	const op string = "order.service.OrderByNumber"
	log := logger.With(logger.String("order_number", number))

	rctx, cancel := context.WithTimeout(ctx, svc.readTimeout)
	defer cancel()

	ord, err := svc.repo.FindOrder(rctx, number)
	if err != nil {
		log.Error(ctx, "repository find order", logger.ErrorF(err))
		return model.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

func (svc *service) ListOrdersGroupedByDate(ctx context.Context) ([]model.DayGroup, error) {
	const op string = "order.service.ListOrdersGroupedByDate"

	rctx, cancel := context.WithTimeout(ctx, svc.readTimeout)
	defer cancel()

	groups, err := svc.repo.ListOrdersGroupedByDate(rctx)
	if err != nil {
		logger.Error(ctx, "repository list orders grouped by date", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return groups, nil
}

// ListItems returns the order lines sorted by sortBy. An empty key sorts by
// creation time.
func (svc *service) ListItems(ctx context.Context, number string, sortBy model.ItemSortKey) ([]model.Item, error) {
	const op string = "order.service.ListItems"

	if sortBy == "" {
		sortBy = model.SortByCreatedAt
	}
	if !sortBy.Valid() {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(
			model.ErrValidation,
			fmt.Errorf("unknown sort key %q", sortBy),
		))
	}

	ord, err := svc.OrderByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return model.SortItems(ord.Items, sortBy), nil
}

func (svc *service) AddItem(ctx context.Context, params model.AddItemParams) (model.Item, error) {
	const op string = "order.service.AddItem"
	log := logger.With(
		logger.String("order_number", params.OrderNumber),
		logger.String("sku", params.SKU),
		logger.Int("quantity", params.Quantity),
	)

	if params.Quantity <= 0 {
		log.Error(ctx, "wrong params")
		return model.Item{}, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	product, err := svc.catalog.FindBySKU(ctx, params.SKU)
	if err != nil {
		log.Error(ctx, "catalog find by sku", logger.ErrorF(err))
		return model.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeTimeout)
	defer cancel()

	item, err := svc.repo.AddItem(wctx, params.OrderNumber, product, params.Quantity)
	if err != nil {
		log.Error(ctx, "repository add item", logger.ErrorF(err))
		return model.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, model.OrderEvent{
		Type:        model.EventItemAdded,
		OrderNumber: params.OrderNumber,
		SKU:         item.SKU,
		Quantity:    item.Quantity,
	})

	return item, nil
}

func (svc *service) UpdateItemQuantity(ctx context.Context, params model.UpdateItemParams) error {
	const op string = "order.service.UpdateItemQuantity"
	log := logger.With(
		logger.String("order_number", params.OrderNumber),
		logger.String("sku", params.SKU),
		logger.Int("quantity", params.Quantity),
	)

	if params.Quantity <= 0 {
		log.Error(ctx, "wrong params")
		return fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeTimeout)
	defer cancel()

	if err := svc.repo.UpdateItemQuantity(wctx, params.OrderNumber, params.SKU, params.Quantity); err != nil {
		log.Error(ctx, "repository update item quantity", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, model.OrderEvent{
		Type:        model.EventItemUpdated,
		OrderNumber: params.OrderNumber,
		SKU:         params.SKU,
		Quantity:    params.Quantity,
	})

	return nil
}

func (svc *service) RemoveItem(ctx context.Context, number, sku string) error {
	const op string = "order.service.RemoveItem"
	log := logger.With(
		logger.String("order_number", number),
		logger.String("sku", sku),
	)

	wctx, cancel := context.WithTimeout(ctx, svc.writeTimeout)
	defer cancel()

	if err := svc.repo.RemoveItem(wctx, number, sku); err != nil {
		log.Error(ctx, "repository remove item", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, model.OrderEvent{
		Type:        model.EventItemRemoved,
		OrderNumber: number,
		SKU:         sku,
	})

	return nil
}

func (svc *service) UpdateNotes(ctx context.Context, number, notes string) error {
	const op string = "order.service.UpdateNotes"
	log := logger.With(logger.String("order_number", number))

	wctx, cancel := context.WithTimeout(ctx, svc.writeTimeout)
	defer cancel()

	if err := svc.repo.UpdateNotes(wctx, number, notes); err != nil {
		log.Error(ctx, "repository update notes", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	svc.publish(ctx, model.OrderEvent{Type: model.EventOrderNotesUpdated, OrderNumber: number})

	return nil
}

func (svc *service) RemoveOrder(ctx context.Context, number string) error {
	const op string = "order.service.RemoveOrder"
	log := logger.With(logger.String("order_number", number))

	wctx, cancel := context.WithTimeout(ctx, svc.writeTimeout)
	defer cancel()

	if err := svc.repo.RemoveOrder(wctx, number); err != nil {
		log.Error(ctx, "repository remove order", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "order removed")
	svc.publish(ctx, model.OrderEvent{Type: model.EventOrderRemoved, OrderNumber: number})

	return nil
}

// publish runs after the mutation is committed. A failed send is logged and
// does not change the outcome of the call.
func (svc *service) publish(ctx context.Context, event model.OrderEvent) {
	event.EventID = uuid.New()
	event.OccurredAt = time.Now().UTC()

	if err := svc.producer.ProduceOrderEvent(ctx, event); err != nil {
		logger.Warn(ctx, "produce order event",
			logger.String("event_type", string(event.Type)),
			logger.String("order_number", event.OrderNumber),
			logger.ErrorF(err),
		)
	}
}
