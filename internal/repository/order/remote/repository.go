package remote

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/samber/lo"

	backendclient "github.com/you-humble/field-orders/internal/client/http/backend/v1"
	"github.com/you-humble/field-orders/internal/model"
)

const defaultPageSize = 100

var (
	orderPopulate = []string{"store", "merchant"}
	itemPopulate  = []string{"product", "packaging"}
)

type BackendClient interface {
	ListProducts(ctx context.Context, q backendclient.ProductsQuery) ([]model.Product, error)
	CreateProduct(ctx context.Context, params backendclient.CreateProductParams) (model.Product, error)
	ListPackagings(ctx context.Context, productID string) ([]model.Packaging, error)
	CreatePackaging(ctx context.Context, productID string, quantity int) (model.Packaging, error)
	CreatePurchaseOrder(ctx context.Context, merchantID, storeID string) (model.Order, error)
	GetPurchaseOrder(ctx context.Context, id string, populate ...string) (model.Order, error)
	ListPurchaseOrders(ctx context.Context, q backendclient.PurchaseOrdersQuery) ([]model.Order, backendclient.Paging, error)
	UpdatePurchaseOrderNotes(ctx context.Context, id, notes string) (model.Order, error)
	DeletePurchaseOrder(ctx context.Context, id string) error
	CreatePurchaseOrderItem(ctx context.Context, params backendclient.CreatePurchaseOrderItemParams) (model.Item, error)
	ListPurchaseOrderItems(ctx context.Context, q backendclient.PurchaseOrderItemsQuery) ([]model.Item, backendclient.Paging, error)
	UpdatePurchaseOrderItemQuantity(ctx context.Context, id string, quantity int) error
	DeletePurchaseOrderItem(ctx context.Context, id string) error
}

// repository keeps orders on the backend. Items are stored there as
// references and are populated on every read.
type repository struct {
	client   BackendClient
	loc      *time.Location
	pageSize int
}

func NewOrderRepository(client BackendClient, loc *time.Location, pageSize int) *repository {
	if loc == nil {
		loc = time.Local
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &repository{client: client, loc: loc, pageSize: pageSize}
}

func (r *repository) CreateOrder(ctx context.Context, store model.StoreRef) (model.Order, error) {
	if store.ID == "" {
		return model.Order{}, model.ErrNoStoreSelected
	}

	created, err := r.client.CreatePurchaseOrder(ctx, store.MerchantID, store.ID)
	if err != nil {
		return model.Order{}, err
	}

	created.Store = store
	return created, nil
}

func (r *repository) FindOrder(ctx context.Context, number string) (model.Order, error) {
	o, err := r.order(ctx, number)
	if err != nil {
		return model.Order{}, err
	}

	items, err := r.items(ctx, number)
	if err != nil {
		return model.Order{}, err
	}
	o.Items = items

	return o, nil
}

// ListOrders returns every order without items.
func (r *repository) ListOrders(ctx context.Context) ([]model.Order, error) {
	return backendclient.ListAll(ctx, r.pageSize,
		func(ctx context.Context, page, limit int) ([]model.Order, backendclient.Paging, error) {
			return r.client.ListPurchaseOrders(ctx, backendclient.PurchaseOrdersQuery{
				ListQuery: backendclient.ListQuery{
					Page:     page,
					Limit:    limit,
					Sort:     "-createdAt",
					Populate: orderPopulate,
				},
			})
		})
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

	if _, err := r.order(ctx, number); err != nil {
		return model.Item{}, err
	}

	productID, err := r.ensureProduct(ctx, p)
	if err != nil {
		return model.Item{}, err
	}

	packagingID, err := r.ensurePackaging(ctx, productID, p.PackSizes)
	if err != nil {
		return model.Item{}, err
	}

	created, err := r.client.CreatePurchaseOrderItem(ctx, backendclient.CreatePurchaseOrderItemParams{
		Product:       productID,
		PurchaseOrder: number,
		Packaging:     packagingID,
		Quantity:      quantity,
	})
	if err != nil {
		return model.Item{}, err
	}

	item := model.NewItem(p, quantity, created.CreatedAt)
	item.ID = created.ID
	item.ProductID = productID
	item.PackagingID = packagingID
	return item, nil
}

func (r *repository) UpdateItemQuantity(ctx context.Context, number, sku string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", model.ErrValidation)
	}

	item, err := r.findItem(ctx, number, sku)
	if err != nil {
		return err
	}

	return r.client.UpdatePurchaseOrderItemQuantity(ctx, item.ID, quantity)
}

func (r *repository) RemoveItem(ctx context.Context, number, sku string) error {
	item, err := r.findItem(ctx, number, sku)
	if err != nil {
		return err
	}

	return r.client.DeletePurchaseOrderItem(ctx, item.ID)
}

func (r *repository) UpdateNotes(ctx context.Context, number, notes string) error {
	if _, err := r.client.UpdatePurchaseOrderNotes(ctx, number, notes); err != nil {
		return notFound(err, model.ErrOrderNotFound)
	}
	return nil
}

func (r *repository) RemoveOrder(ctx context.Context, number string) error {
	if err := r.client.DeletePurchaseOrder(ctx, number); err != nil {
		return notFound(err, model.ErrOrderNotFound)
	}
	return nil
}

func (r *repository) order(ctx context.Context, number string) (model.Order, error) {
	if number == "" {
		return model.Order{}, model.ErrOrderNotFound
	}

	o, err := r.client.GetPurchaseOrder(ctx, number, orderPopulate...)
	if err != nil {
		return model.Order{}, notFound(err, model.ErrOrderNotFound)
	}
	return o, nil
}

func (r *repository) items(ctx context.Context, number string) ([]model.Item, error) {
	return backendclient.ListAll(ctx, r.pageSize,
		func(ctx context.Context, page, limit int) ([]model.Item, backendclient.Paging, error) {
			return r.client.ListPurchaseOrderItems(ctx, backendclient.PurchaseOrderItemsQuery{
				ListQuery:     backendclient.ListQuery{Page: page, Limit: limit, Populate: itemPopulate},
				PurchaseOrder: number,
			})
		})
}

func (r *repository) findItem(ctx context.Context, number, sku string) (model.Item, error) {
	o, err := r.FindOrder(ctx, number)
	if err != nil {
		return model.Item{}, err
	}

	i := o.ItemIndex(sku)
	if i < 0 {
		return model.Item{}, model.ErrItemNotFound
	}
	return o.Items[i], nil
}

// ensureProduct returns the backend id of p, looking it up by barcode and
// creating it when the backend does not know it yet.
func (r *repository) ensureProduct(ctx context.Context, p model.Product) (string, error) {
	if p.ID != "" {
		return p.ID, nil
	}

	barcode, _ := lo.First(p.Barcodes)
	if barcode != "" {
		found, err := r.client.ListProducts(ctx, backendclient.ProductsQuery{Barcode: barcode})
		if err != nil {
			return "", err
		}
		if match, ok := lo.First(found); ok {
			return match.ID, nil
		}
	}

	if p.Name == "" || p.SKU == "" || barcode == "" {
		return "", fmt.Errorf("%w: name, sku and barcode are required for a new product", model.ErrValidation)
	}

	created, err := r.client.CreateProduct(ctx, backendclient.CreateProductParams{
		Name:    p.Name,
		SKU:     p.SKU,
		Barcode: barcode,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (r *repository) ensurePackaging(ctx context.Context, productID string, packSizes []string) (string, error) {
	found, err := r.client.ListPackagings(ctx, productID)
	if err != nil {
		return "", err
	}
	if match, ok := lo.First(found); ok {
		return match.ID, nil
	}

	quantity := 1
	if i := slices.IndexFunc(packSizes, func(s string) bool { _, err := strconv.Atoi(s); return err == nil }); i >= 0 {
		quantity, _ = strconv.Atoi(packSizes[i])
	}
	if quantity <= 0 {
		return "", fmt.Errorf("%w: pack size must be positive", model.ErrValidation)
	}

	created, err := r.client.CreatePackaging(ctx, productID, quantity)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func notFound(err, target error) error {
	if backendclient.IsNotFound(err) {
		return errors.Join(target, err)
	}
	return err
}
