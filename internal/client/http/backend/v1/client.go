package backendclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"

	"github.com/you-humble/field-orders/internal/model"
)

const (
	merchantPath          = "/merchant"
	storePath             = "/store"
	productPath           = "/product"
	packagingPath         = "/packaging"
	purchaseOrderPath     = "/purchaseOrder"
	purchaseOrderItemPath = "/purchaseOrderItem"
)

// APIError is a non-2xx answer from the backend. It matches model.ErrNetwork.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return model.ErrNetwork }

type client struct {
	http *resty.Client
}

// NewClient builds a client for <baseURL>/api/<version>. Requests are never
// retried.
func NewClient(baseURL, version string, timeout time.Duration) *client {
	r := resty.New().
		SetBaseURL(fmt.Sprintf("%s/api/%s", strings.TrimRight(baseURL, "/"), version)).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &client{http: r}
}

type ListQuery struct {
	Page     int
	Limit    int
	Sort     string
	Populate []string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	for _, p := range q.Populate {
		v.Add("populate[]", p)
	}
	return v
}

type StoresQuery struct {
	ListQuery
	Merchant string
}

type ProductsQuery struct {
	ListQuery
	Barcode string
	SKU     string
	Name    string
}

type PurchaseOrdersQuery struct {
	ListQuery
	Store string
}

type PurchaseOrderItemsQuery struct {
	ListQuery
	PurchaseOrder string
}

type CreateProductParams struct {
	Name    string
	SKU     string
	Barcode string
}

type CreatePurchaseOrderItemParams struct {
	Product       string
	PurchaseOrder string
	Packaging     string
	Quantity      int
}

func (c *client) ListMerchants(ctx context.Context) ([]model.Merchant, error) {
	const op = "backendclient.client.ListMerchants"

	res, err := do[[]MerchantDTO](ctx, c, http.MethodGet, merchantPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Map(res.Data, func(m MerchantDTO, _ int) model.Merchant { return merchantToModel(m) }), nil
}

func (c *client) ListStores(ctx context.Context, q StoresQuery) ([]model.Store, Paging, error) {
	const op = "backendclient.client.ListStores"

	params := q.values()
	if q.Merchant != "" {
		params.Set("merchant", q.Merchant)
	}

	res, err := do[[]StoreDTO](ctx, c, http.MethodGet, storePath, params, nil)
	if err != nil {
		return nil, Paging{}, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Map(res.Data, func(s StoreDTO, _ int) model.Store { return storeToModel(s) }), paging(res), nil
}

func (c *client) GetStore(ctx context.Context, id string, populate ...string) (model.Store, error) {
	const op = "backendclient.client.GetStore"

	res, err := do[StoreDTO](ctx, c, http.MethodGet, storePath+"/"+url.PathEscape(id), ListQuery{Populate: populate}.values(), nil)
	if err != nil {
		return model.Store{}, fmt.Errorf("%s: %w", op, err)
	}

	return storeToModel(res.Data), nil
}

func (c *client) ListProducts(ctx context.Context, q ProductsQuery) ([]model.Product, error) {
	const op = "backendclient.client.ListProducts"

	params := q.values()
	if q.Barcode != "" {
		params.Set("barcode", q.Barcode)
	}
	if q.SKU != "" {
		params.Set("sku", q.SKU)
	}
	if q.Name != "" {
		params.Set("name", q.Name)
	}

	res, err := do[[]ProductDTO](ctx, c, http.MethodGet, productPath, params, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Map(res.Data, func(p ProductDTO, _ int) model.Product { return productToModel(p) }), nil
}

func (c *client) GetProduct(ctx context.Context, id string) (model.Product, error) {
	const op = "backendclient.client.GetProduct"

	res, err := do[ProductDTO](ctx, c, http.MethodGet, productPath+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return model.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	return productToModel(res.Data), nil
}

func (c *client) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	const op = "backendclient.client.CreateProduct"

	body := createProductRequest{Name: params.Name, SKU: params.SKU, Barcode: params.Barcode}
	res, err := do[ProductDTO](ctx, c, http.MethodPost, productPath, nil, body)
	if err != nil {
		return model.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	return productToModel(res.Data), nil
}

func (c *client) ListPackagings(ctx context.Context, productID string) ([]model.Packaging, error) {
	const op = "backendclient.client.ListPackagings"

	params := url.Values{}
	params.Set("product", productID)

	res, err := do[[]PackagingDTO](ctx, c, http.MethodGet, packagingPath, params, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Map(res.Data, func(p PackagingDTO, _ int) model.Packaging { return packagingToModel(p) }), nil
}

func (c *client) CreatePackaging(ctx context.Context, productID string, quantity int) (model.Packaging, error) {
	const op = "backendclient.client.CreatePackaging"

	body := createPackagingRequest{Product: productID, Quantity: quantity}
	res, err := do[PackagingDTO](ctx, c, http.MethodPost, packagingPath, nil, body)
	if err != nil {
		return model.Packaging{}, fmt.Errorf("%s: %w", op, err)
	}

	return packagingToModel(res.Data), nil
}

func (c *client) CreatePurchaseOrder(ctx context.Context, merchantID, storeID string) (model.Order, error) {
	const op = "backendclient.client.CreatePurchaseOrder"

	body := createPurchaseOrderRequest{Merchant: merchantID, Store: storeID}
	res, err := do[PurchaseOrderDTO](ctx, c, http.MethodPost, purchaseOrderPath, nil, body)
	if err != nil {
		return model.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return purchaseOrderToModel(res.Data), nil
}

func (c *client) GetPurchaseOrder(ctx context.Context, id string, populate ...string) (model.Order, error) {
	const op = "backendclient.client.GetPurchaseOrder"

	path := purchaseOrderPath + "/" + url.PathEscape(id)
	res, err := do[PurchaseOrderDTO](ctx, c, http.MethodGet, path, ListQuery{Populate: populate}.values(), nil)
	if err != nil {
		return model.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return purchaseOrderToModel(res.Data), nil
}

func (c *client) ListPurchaseOrders(ctx context.Context, q PurchaseOrdersQuery) ([]model.Order, Paging, error) {
	const op = "backendclient.client.ListPurchaseOrders"

	params := q.values()
	if q.Store != "" {
		params.Set("store", q.Store)
	}

	res, err := do[[]PurchaseOrderDTO](ctx, c, http.MethodGet, purchaseOrderPath, params, nil)
	if err != nil {
		return nil, Paging{}, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Map(res.Data, func(o PurchaseOrderDTO, _ int) model.Order { return purchaseOrderToModel(o) }), paging(res), nil
}

func (c *client) UpdatePurchaseOrderNotes(ctx context.Context, id, notes string) (model.Order, error) {
	const op = "backendclient.client.UpdatePurchaseOrderNotes"

	body := updatePurchaseOrderRequest{Notes: &notes}
	res, err := do[PurchaseOrderDTO](ctx, c, http.MethodPut, purchaseOrderPath+"/"+url.PathEscape(id), nil, body)
	if err != nil {
		return model.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return purchaseOrderToModel(res.Data), nil
}

func (c *client) DeletePurchaseOrder(ctx context.Context, id string) error {
	const op = "backendclient.client.DeletePurchaseOrder"

	if err := c.execute(ctx, http.MethodDelete, purchaseOrderPath+"/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *client) CreatePurchaseOrderItem(ctx context.Context, params CreatePurchaseOrderItemParams) (model.Item, error) {
	const op = "backendclient.client.CreatePurchaseOrderItem"

	body := createPurchaseOrderItemRequest{
		Product:       params.Product,
		PurchaseOrder: params.PurchaseOrder,
		Packaging:     params.Packaging,
		Quantity:      params.Quantity,
	}
	res, err := do[PurchaseOrderItemDTO](ctx, c, http.MethodPost, purchaseOrderItemPath, nil, body)
	if err != nil {
		return model.Item{}, fmt.Errorf("%s: %w", op, err)
	}

	return purchaseOrderItemToModel(res.Data), nil
}

func (c *client) ListPurchaseOrderItems(ctx context.Context, q PurchaseOrderItemsQuery) ([]model.Item, Paging, error) {
	const op = "backendclient.client.ListPurchaseOrderItems"

	params := q.values()
	if q.PurchaseOrder != "" {
		params.Set("purchaseOrder", q.PurchaseOrder)
	}

	res, err := do[[]PurchaseOrderItemDTO](ctx, c, http.MethodGet, purchaseOrderItemPath, params, nil)
	if err != nil {
		return nil, Paging{}, fmt.Errorf("%s: %w", op, err)
	}

	items := lo.Map(res.Data, func(it PurchaseOrderItemDTO, _ int) model.Item { return purchaseOrderItemToModel(it) })
	return items, paging(res), nil
}

func (c *client) UpdatePurchaseOrderItemQuantity(ctx context.Context, id string, quantity int) error {
	const op = "backendclient.client.UpdatePurchaseOrderItemQuantity"

	body := updatePurchaseOrderItemRequest{Quantity: quantity}
	if err := c.execute(ctx, http.MethodPut, purchaseOrderItemPath+"/"+url.PathEscape(id), nil, body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *client) DeletePurchaseOrderItem(ctx context.Context, id string) error {
	const op = "backendclient.client.DeletePurchaseOrderItem"

	if err := c.execute(ctx, http.MethodDelete, purchaseOrderItemPath+"/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func do[T any](ctx context.Context, c *client, method, path string, params url.Values, body any) (envelope[T], error) {
	var out envelope[T]
	err := c.execute(ctx, method, path, params, body, &out)
	return out, err
}

// execute sends one request. A nil result skips decoding of a 2xx body.
func (c *client) execute(ctx context.Context, method, path string, params url.Values, body, result any) error {
	var apiErr errorEnvelope

	req := c.http.R().
		SetContext(ctx).
		ForceContentType("application/json").
		SetError(&apiErr)
	if result != nil {
		req.SetResult(result)
	}
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, model.ErrNetwork, err)
	}

	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%s %s: %w", method, path, &APIError{StatusCode: resp.StatusCode(), Message: msg})
	}

	return nil
}

func paging[T any](e envelope[T]) Paging {
	return Paging{Total: e.Total, Page: e.Page, Limit: e.Limit}
}

// IsNotFound reports whether err is a 404 answer from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
