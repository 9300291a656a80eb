package remote

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backendclient "github.com/you-humble/field-orders/internal/client/http/backend/v1"
	"github.com/you-humble/field-orders/internal/model"
)

type fakeBackend struct {
	seq        int
	products   []model.Product
	packagings []model.Packaging
	orders     []model.Order
	items      map[string][]model.Item
	calls      []string
	// maxLimit caps the page size the way the backend does. Zero means no cap.
	maxLimit int
}

func page[T any](all []T, q backendclient.ListQuery, maxLimit int) ([]T, backendclient.Paging) {
	limit := q.Limit
	if maxLimit > 0 {
		limit = min(limit, maxLimit)
	}
	p := backendclient.Paging{Total: len(all), Page: q.Page, Limit: limit}

	start := (q.Page - 1) * limit
	if start >= len(all) {
		return nil, p
	}
	return slices.Clone(all[start:min(start+limit, len(all))]), p
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{items: map[string][]model.Item{}}
}

func (f *fakeBackend) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s%d", prefix, f.seq)
}

func (f *fakeBackend) notFound() error {
	return fmt.Errorf("GET: %w", &backendclient.APIError{StatusCode: 404, Message: "Not Found"})
}

func (f *fakeBackend) ListProducts(_ context.Context, q backendclient.ProductsQuery) ([]model.Product, error) {
	f.calls = append(f.calls, "ListProducts")
	var out []model.Product
	for _, p := range f.products {
		if slices.Contains(p.Barcodes, q.Barcode) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBackend) CreateProduct(_ context.Context, params backendclient.CreateProductParams) (model.Product, error) {
	f.calls = append(f.calls, "CreateProduct")
	p := model.Product{ID: f.nextID("p"), SKU: params.SKU, Name: params.Name, Barcodes: []string{params.Barcode}}
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeBackend) ListPackagings(_ context.Context, productID string) ([]model.Packaging, error) {
	f.calls = append(f.calls, "ListPackagings")
	var out []model.Packaging
	for _, p := range f.packagings {
		if p.ProductID == productID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBackend) CreatePackaging(_ context.Context, productID string, quantity int) (model.Packaging, error) {
	f.calls = append(f.calls, fmt.Sprintf("CreatePackaging:%d", quantity))
	p := model.Packaging{ID: f.nextID("pk"), ProductID: productID, Quantity: quantity}
	f.packagings = append(f.packagings, p)
	return p, nil
}

func (f *fakeBackend) CreatePurchaseOrder(_ context.Context, merchantID, storeID string) (model.Order, error) {
	o := model.Order{
		Number:    f.nextID("po"),
		Store:     model.StoreRef{ID: storeID, MerchantID: merchantID},
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Hour),
		Items:     []model.Item{},
	}
	f.orders = append(f.orders, o)
	return o, nil
}

func (f *fakeBackend) orderIndex(id string) int {
	return slices.IndexFunc(f.orders, func(o model.Order) bool { return o.Number == id })
}

func (f *fakeBackend) GetPurchaseOrder(_ context.Context, id string, _ ...string) (model.Order, error) {
	i := f.orderIndex(id)
	if i < 0 {
		return model.Order{}, f.notFound()
	}
	return f.orders[i], nil
}

func (f *fakeBackend) ListPurchaseOrders(_ context.Context, q backendclient.PurchaseOrdersQuery) ([]model.Order, backendclient.Paging, error) {
	f.calls = append(f.calls, "ListPurchaseOrders")
	orders, p := page(f.orders, q.ListQuery, f.maxLimit)
	return orders, p, nil
}

func (f *fakeBackend) UpdatePurchaseOrderNotes(_ context.Context, id, notes string) (model.Order, error) {
	i := f.orderIndex(id)
	if i < 0 {
		return model.Order{}, f.notFound()
	}
	f.orders[i].Notes = notes
	return f.orders[i], nil
}

func (f *fakeBackend) DeletePurchaseOrder(_ context.Context, id string) error {
	i := f.orderIndex(id)
	if i < 0 {
		return f.notFound()
	}
	f.orders = slices.Delete(f.orders, i, i+1)
	return nil
}

func (f *fakeBackend) CreatePurchaseOrderItem(_ context.Context, params backendclient.CreatePurchaseOrderItemParams) (model.Item, error) {
	pi := slices.IndexFunc(f.products, func(p model.Product) bool { return p.ID == params.Product })
	p := f.products[pi]

	it := model.NewItem(p, params.Quantity, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	it.ID = f.nextID("i")
	it.PackagingID = params.Packaging
	f.items[params.PurchaseOrder] = append(f.items[params.PurchaseOrder], it)
	return it, nil
}

func (f *fakeBackend) ListPurchaseOrderItems(_ context.Context, q backendclient.PurchaseOrderItemsQuery) ([]model.Item, backendclient.Paging, error) {
	f.calls = append(f.calls, "ListPurchaseOrderItems")
	items, p := page(f.items[q.PurchaseOrder], q.ListQuery, f.maxLimit)
	return items, p, nil
}

func (f *fakeBackend) findItem(id string) (string, int) {
	for order, items := range f.items {
		if i := slices.IndexFunc(items, func(it model.Item) bool { return it.ID == id }); i >= 0 {
			return order, i
		}
	}
	return "", -1
}

func (f *fakeBackend) UpdatePurchaseOrderItemQuantity(_ context.Context, id string, quantity int) error {
	order, i := f.findItem(id)
	if i < 0 {
		return f.notFound()
	}
	f.items[order][i].Quantity = quantity
	return nil
}

func (f *fakeBackend) DeletePurchaseOrderItem(_ context.Context, id string) error {
	order, i := f.findItem(id)
	if i < 0 {
		return f.notFound()
	}
	f.items[order] = slices.Delete(f.items[order], i, i+1)
	return nil
}

var mainStore = model.StoreRef{ID: "s1", Code: "7", Name: "Main St", Merchant: "Acme", MerchantID: "m1"}

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	r := NewOrderRepository(backend, time.UTC, 0)

	_, err := r.CreateOrder(context.Background(), model.StoreRef{Code: "7"})
	require.ErrorIs(t, err, model.ErrNoStoreSelected)

	o, err := r.CreateOrder(context.Background(), mainStore)
	require.NoError(t, err)
	assert.Equal(t, mainStore, o.Store)
	assert.Equal(t, "m1", backend.orders[0].Store.MerchantID)
	assert.Equal(t, "s1", backend.orders[0].Store.ID)
}

func TestAddItemCreatesMissingProductAndPackaging(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newFakeBackend()
	r := NewOrderRepository(backend, time.UTC, 0)

	o, err := r.CreateOrder(ctx, mainStore)
	require.NoError(t, err)

	p := model.Product{SKU: "100", Name: "Widget", Barcodes: []string{"111"}, PackSizes: []string{"6"}}
	item, err := r.AddItem(ctx, o.Number, p, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.NotEmpty(t, item.ProductID)
	assert.NotEmpty(t, item.PackagingID)
	assert.Equal(t, []string{"ListProducts", "CreateProduct", "ListPackagings", "CreatePackaging:6"}, backend.calls)

	backend.calls = nil
	_, err = r.AddItem(ctx, o.Number, p, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ListProducts", "ListPackagings"}, backend.calls, "known product and packaging are reused")

	got, err := r.FindOrder(ctx, o.Number)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Widget", got.Items[0].Name)
}

func TestAddUpdateRemoveItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newFakeBackend()
	r := NewOrderRepository(backend, time.UTC, 0)

	o, err := r.CreateOrder(ctx, mainStore)
	require.NoError(t, err)

	for _, sku := range []string{"1", "2", "3"} {
		_, err := r.AddItem(ctx, o.Number, model.Product{SKU: sku, Name: "n" + sku, Barcodes: []string{"b" + sku}}, 1)
		require.NoError(t, err)
	}

	require.NoError(t, r.UpdateItemQuantity(ctx, o.Number, "2", 4))
	got, err := r.FindOrder(ctx, o.Number)
	require.NoError(t, err)
	require.Len(t, got.Items, 3)
	assert.Equal(t, 4, got.Items[1].Quantity)

	require.NoError(t, r.RemoveItem(ctx, o.Number, "2"))
	got, err = r.FindOrder(ctx, o.Number)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, -1, got.ItemIndex("2"))

	require.ErrorIs(t, r.RemoveItem(ctx, o.Number, "2"), model.ErrItemNotFound)
	require.ErrorIs(t, r.UpdateItemQuantity(ctx, o.Number, "2", 1), model.ErrItemNotFound)
	require.ErrorIs(t, r.UpdateItemQuantity(ctx, o.Number, "1", 0), model.ErrValidation)
}

func TestMissingOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewOrderRepository(newFakeBackend(), time.UTC, 0)

	_, err := r.FindOrder(ctx, "nope")
	require.ErrorIs(t, err, model.ErrOrderNotFound)
	require.ErrorIs(t, err, model.ErrNetwork)

	_, err = r.AddItem(ctx, "nope", model.Product{ID: "p1"}, 1)
	require.ErrorIs(t, err, model.ErrOrderNotFound)

	require.ErrorIs(t, r.UpdateNotes(ctx, "nope", "x"), model.ErrOrderNotFound)
	require.ErrorIs(t, r.RemoveOrder(ctx, "nope"), model.ErrOrderNotFound)
	require.ErrorIs(t, r.RemoveItem(ctx, "nope", "1"), model.ErrOrderNotFound)
}

func TestNotesAndRemoveOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewOrderRepository(newFakeBackend(), time.UTC, 0)

	o, err := r.CreateOrder(ctx, mainStore)
	require.NoError(t, err)

	require.NoError(t, r.UpdateNotes(ctx, o.Number, "ring the bell"))
	got, err := r.FindOrder(ctx, o.Number)
	require.NoError(t, err)
	assert.Equal(t, "ring the bell", got.Notes)

	require.NoError(t, r.RemoveOrder(ctx, o.Number))
	_, err = r.FindOrder(ctx, o.Number)
	require.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestListOrdersPages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newFakeBackend()
	r := NewOrderRepository(backend, time.UTC, 10)

	for range 25 {
		_, err := r.CreateOrder(ctx, mainStore)
		require.NoError(t, err)
	}

	orders, err := r.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 25)
	assert.Equal(t, []string{"ListPurchaseOrders", "ListPurchaseOrders", "ListPurchaseOrders"}, backend.calls)

	groups, err := r.ListOrdersGroupedByDate(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, groups)
	assert.True(t, groups[0].Orders[0].CreatedAt.After(groups[len(groups)-1].Orders[0].CreatedAt))
}

func TestListOrdersBackendCapsPageSize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newFakeBackend()
	backend.maxLimit = 50
	r := NewOrderRepository(backend, time.UTC, 100)

	for range 120 {
		_, err := r.CreateOrder(ctx, mainStore)
		require.NoError(t, err)
	}

	orders, err := r.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 120)
	assert.Equal(t, backend.orders[119].Number, orders[119].Number)
	assert.Len(t, backend.calls, 3)
}

func TestFindOrderReadsEveryItemPage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newFakeBackend()
	backend.maxLimit = 2
	r := NewOrderRepository(backend, time.UTC, 100)

	o, err := r.CreateOrder(ctx, mainStore)
	require.NoError(t, err)

	for i := range 5 {
		sku := fmt.Sprint(i + 1)
		_, err := r.AddItem(ctx, o.Number, model.Product{SKU: sku, Name: "n" + sku, Barcodes: []string{"b" + sku}}, 1)
		require.NoError(t, err)
	}

	got, err := r.FindOrder(ctx, o.Number)
	require.NoError(t, err)
	require.Len(t, got.Items, 5)
	assert.Equal(t, "5", got.Items[4].SKU)

	require.NoError(t, r.UpdateItemQuantity(ctx, o.Number, "5", 3))
	got, err = r.FindOrder(ctx, o.Number)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Items[4].Quantity)
}

func TestFindOrderWithoutItems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewOrderRepository(newFakeBackend(), time.UTC, 0)

	o, err := r.CreateOrder(ctx, mainStore)
	require.NoError(t, err)

	got, err := r.FindOrder(ctx, o.Number)
	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}
