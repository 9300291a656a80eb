package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/internal/service/order/mocks"
)

type deps struct {
	repository *mocks.MockOrderRepository
	stores     *mocks.MockStoreDirectory
	catalog    *mocks.MockProductCatalog
	producer   *mocks.MockOrderProducer
}

func newDeps(t *testing.T) deps {
	return deps{
		repository: mocks.NewMockOrderRepository(t),
		stores:     mocks.NewMockStoreDirectory(t),
		catalog:    mocks.NewMockProductCatalog(t),
		producer:   mocks.NewMockOrderProducer(t),
	}
}

func newSvc(d deps) *service {
	return NewOrderService(d.repository, d.stores, d.catalog, d.producer, time.Second, time.Second)
}

func eventOf(typ model.OrderEventType, number string) interface{} {
	return mock.MatchedBy(func(ev model.OrderEvent) bool {
		return ev.Type == typ &&
			ev.OrderNumber == number &&
			ev.EventID != uuid.Nil &&
			!ev.OccurredAt.IsZero()
	})
}

func TestServiceCreateOrder(t *testing.T) {
	t.Parallel()

	store := model.Store{
		ID:       uuid.NewString(),
		Code:     gofakeit.Numerify("###"),
		Name:     gofakeit.Company(),
		Merchant: gofakeit.Company(),
	}
	number := "PO20240101000"

	type testCase struct {
		name   string
		params model.CreateOrderParams
		setup  func(d deps)
		assert func(t *testing.T, res model.Order, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "no store selected",
			params: model.CreateOrderParams{StoreCode: " "},
			assert: func(t *testing.T, res model.Order, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrNoStoreSelected)
				assert.Empty(t, res.Number)

				d.repository.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "store not found",
			params: model.CreateOrderParams{StoreCode: "999"},
			setup: func(d deps) {
				d.stores.
					On("StoreByCode", mock.Anything, "999").
					Return(model.Store{}, model.ErrStoreNotFound).
					Once()
			},
			assert: func(t *testing.T, res model.Order, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrStoreNotFound)

				d.repository.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "repository error: nothing is published",
			params: model.CreateOrderParams{StoreCode: store.Code},
			setup: func(d deps) {
				d.stores.On("StoreByCode", mock.Anything, store.Code).Return(store, nil).Once()
				d.repository.
					On("CreateOrder", mock.Anything, store.Ref()).
					Return(model.Order{}, model.ErrStorageWrite).
					Once()
			},
			assert: func(t *testing.T, res model.Order, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrStorageWrite)

				d.producer.AssertNotCalled(t, "ProduceOrderEvent", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "success: order created for the store snapshot",
			params: model.CreateOrderParams{StoreCode: store.Code},
			setup: func(d deps) {
				d.stores.On("StoreByCode", mock.Anything, store.Code).Return(store, nil).Once()
				d.repository.
					On("CreateOrder", mock.Anything, store.Ref()).
					Return(model.Order{Number: number, Store: store.Ref()}, nil).
					Once()
				d.producer.
					On("ProduceOrderEvent", mock.Anything, eventOf(model.EventOrderCreated, number)).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res model.Order, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, number, res.Number)
				assert.Equal(t, store.Code, res.Store.Code)
			},
		},
		{
			name:   "success: publish failure is not an error",
			params: model.CreateOrderParams{StoreCode: store.Code},
			setup: func(d deps) {
				d.stores.On("StoreByCode", mock.Anything, store.Code).Return(store, nil).Once()
				d.repository.
					On("CreateOrder", mock.Anything, store.Ref()).
					Return(model.Order{Number: number, Store: store.Ref()}, nil).
					Once()
				d.producer.
					On("ProduceOrderEvent", mock.Anything, mock.Anything).
					Return(errors.New("broker unavailable")).
					Once()
			},
			assert: func(t *testing.T, res model.Order, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, number, res.Number)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			res, err := newSvc(d).CreateOrder(ctx, tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceAddItem(t *testing.T) {
	t.Parallel()

	number := "PO20240101000"
	product := model.Product{
		SKU:      "100",
		Name:     gofakeit.ProductName(),
		Barcodes: []string{gofakeit.Numerify("#############")},
	}

	type testCase struct {
		name   string
		params model.AddItemParams
		setup  func(d deps)
		assert func(t *testing.T, res model.Item, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: zero quantity",
			params: model.AddItemParams{OrderNumber: number, SKU: "100", Quantity: 0},
			assert: func(t *testing.T, res model.Item, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)

				d.catalog.AssertNotCalled(t, "FindBySKU", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "product not found",
			params: model.AddItemParams{OrderNumber: number, SKU: "404", Quantity: 1},
			setup: func(d deps) {
				d.catalog.
					On("FindBySKU", mock.Anything, "404").
					Return(model.Product{}, model.ErrProductNotFound).
					Once()
			},
			assert: func(t *testing.T, res model.Item, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrProductNotFound)

				d.repository.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:   "order not found",
			params: model.AddItemParams{OrderNumber: "PO19990101000", SKU: "100", Quantity: 2},
			setup: func(d deps) {
				d.catalog.On("FindBySKU", mock.Anything, "100").Return(product, nil).Once()
				d.repository.
					On("AddItem", mock.Anything, "PO19990101000", product, 2).
					Return(model.Item{}, model.ErrOrderNotFound).
					Once()
			},
			assert: func(t *testing.T, res model.Item, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrOrderNotFound)

				d.producer.AssertNotCalled(t, "ProduceOrderEvent", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "success: item added and event published",
			params: model.AddItemParams{OrderNumber: number, SKU: "100", Quantity: 2},
			setup: func(d deps) {
				d.catalog.On("FindBySKU", mock.Anything, "100").Return(product, nil).Once()
				d.repository.
					On("AddItem", mock.Anything, number, product, 2).
					Return(model.NewItem(product, 2, time.Now()), nil).
					Once()
				d.producer.
					On("ProduceOrderEvent", mock.Anything, mock.MatchedBy(func(ev model.OrderEvent) bool {
						return ev.Type == model.EventItemAdded && ev.SKU == "100" && ev.Quantity == 2
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res model.Item, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, "100", res.SKU)
				assert.Equal(t, 2, res.Quantity)
				assert.Equal(t, product.Name, res.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			res, err := newSvc(d).AddItem(context.Background(), tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceListItems(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	order := model.Order{
		Number: "PO20240101000",
		Items: []model.Item{
			{SKU: "20", CreatedAt: base.Add(2 * time.Minute)},
			{SKU: "3", CreatedAt: base},
			{SKU: "100", CreatedAt: base.Add(time.Minute)},
		},
	}

	tests := []struct {
		name string
		sort model.ItemSortKey
		want []string
	}{
		{name: "default sort is creation time", sort: "", want: []string{"3", "100", "20"}},
		{name: "sort by sku is lexical", sort: model.SortBySKU, want: []string{"100", "20", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			d.repository.On("FindOrder", mock.Anything, order.Number).Return(order, nil).Once()

			items, err := newSvc(d).ListItems(context.Background(), order.Number, tt.sort)
			require.NoError(t, err)

			skus := make([]string, 0, len(items))
			for _, it := range items {
				skus = append(skus, it.SKU)
			}
			assert.Equal(t, tt.want, skus)
		})
	}

	t.Run("unknown sort key", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		_, err := newSvc(d).ListItems(context.Background(), order.Number, "price")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestServiceMutations(t *testing.T) {
	t.Parallel()

	number := "PO20240101000"

	type testCase struct {
		name  string
		setup func(d deps)
		call  func(svc *service) error
		want  error
	}

	tests := []testCase{
		{
			name: "update quantity: validation",
			call: func(svc *service) error {
				return svc.UpdateItemQuantity(context.Background(), model.UpdateItemParams{
					OrderNumber: number, SKU: "100", Quantity: -1,
				})
			},
			want: model.ErrValidation,
		},
		{
			name: "update quantity: item not found",
			setup: func(d deps) {
				d.repository.
					On("UpdateItemQuantity", mock.Anything, number, "404", 3).
					Return(model.ErrItemNotFound).
					Once()
			},
			call: func(svc *service) error {
				return svc.UpdateItemQuantity(context.Background(), model.UpdateItemParams{
					OrderNumber: number, SKU: "404", Quantity: 3,
				})
			},
			want: model.ErrItemNotFound,
		},
		{
			name: "update quantity: success",
			setup: func(d deps) {
				d.repository.On("UpdateItemQuantity", mock.Anything, number, "100", 3).Return(nil).Once()
				d.producer.On("ProduceOrderEvent", mock.Anything, eventOf(model.EventItemUpdated, number)).Return(nil).Once()
			},
			call: func(svc *service) error {
				return svc.UpdateItemQuantity(context.Background(), model.UpdateItemParams{
					OrderNumber: number, SKU: "100", Quantity: 3,
				})
			},
		},
		{
			name: "remove item: success",
			setup: func(d deps) {
				d.repository.On("RemoveItem", mock.Anything, number, "100").Return(nil).Once()
				d.producer.On("ProduceOrderEvent", mock.Anything, eventOf(model.EventItemRemoved, number)).Return(nil).Once()
			},
			call: func(svc *service) error { return svc.RemoveItem(context.Background(), number, "100") },
		},
		{
			name: "update notes: storage write failure",
			setup: func(d deps) {
				d.repository.On("UpdateNotes", mock.Anything, number, "call first").Return(model.ErrStorageWrite).Once()
			},
			call: func(svc *service) error { return svc.UpdateNotes(context.Background(), number, "call first") },
			want: model.ErrStorageWrite,
		},
		{
			name: "update notes: success",
			setup: func(d deps) {
				d.repository.On("UpdateNotes", mock.Anything, number, "call first").Return(nil).Once()
				d.producer.On("ProduceOrderEvent", mock.Anything, eventOf(model.EventOrderNotesUpdated, number)).Return(nil).Once()
			},
			call: func(svc *service) error { return svc.UpdateNotes(context.Background(), number, "call first") },
		},
		{
			name: "remove order: not found",
			setup: func(d deps) {
				d.repository.On("RemoveOrder", mock.Anything, number).Return(model.ErrOrderNotFound).Once()
			},
			call: func(svc *service) error { return svc.RemoveOrder(context.Background(), number) },
			want: model.ErrOrderNotFound,
		},
		{
			name: "remove order: success",
			setup: func(d deps) {
				d.repository.On("RemoveOrder", mock.Anything, number).Return(nil).Once()
				d.producer.On("ProduceOrderEvent", mock.Anything, eventOf(model.EventOrderRemoved, number)).Return(nil).Once()
			},
			call: func(svc *service) error { return svc.RemoveOrder(context.Background(), number) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			err := tt.call(newSvc(d))
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServiceOrderQueries(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	groups := []model.DayGroup{{Date: "2024-01-01", Orders: []model.Order{{Number: "PO20240101000"}}}}
	d.repository.On("ListOrdersGroupedByDate", mock.Anything).Return(groups, nil).Once()
	d.repository.On("FindOrder", mock.Anything, "PO1").Return(model.Order{}, model.ErrOrderNotFound).Once()

	svc := newSvc(d)

	got, err := svc.ListOrdersGroupedByDate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, groups, got)

	_, err = svc.OrderByNumber(context.Background(), "PO1")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}
