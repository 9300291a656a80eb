package converter

import (
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/field-orders/internal/model"
)

type StoreRefResponse struct {
	ID         string `json:"id,omitempty"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Merchant   string `json:"merchant"`
	MerchantID string `json:"merchantId,omitempty"`
}

type ItemResponse struct {
	ID          string    `json:"id,omitempty"`
	ProductID   string    `json:"productId,omitempty"`
	PackagingID string    `json:"packagingId,omitempty"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Barcodes    []string  `json:"barcodes"`
	PackSizes   []string  `json:"packSizes"`
	Image       string    `json:"image,omitempty"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderResponse struct {
	OrderNumber string           `json:"orderNumber"`
	Store       StoreRefResponse `json:"store"`
	CreatedAt   time.Time        `json:"createdAt"`
	Notes       string           `json:"notes"`
	Items       []ItemResponse   `json:"items"`
}

type DayGroupResponse struct {
	Date   string          `json:"date"`
	Orders []OrderResponse `json:"orders"`
}

type ProductResponse struct {
	ID        string   `json:"id,omitempty"`
	SKU       string   `json:"sku"`
	Name      string   `json:"name"`
	Brand     string   `json:"brand,omitempty"`
	Barcodes  []string `json:"barcodes"`
	PackSizes []string `json:"packSizes"`
	Image     string   `json:"image,omitempty"`
	Status    string   `json:"status"`
}

type ResolutionResponse struct {
	Code     string            `json:"code"`
	Kind     string            `json:"kind"`
	Products []ProductResponse `json:"products"`
}

type MerchantResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type StaffResponse struct {
	FirstName string   `json:"firstName"`
	Phones    []string `json:"phones"`
}

type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

type StoreResponse struct {
	ID               string          `json:"id,omitempty"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Merchant         string          `json:"merchant"`
	MerchantID       string          `json:"merchantId,omitempty"`
	Address          AddressResponse `json:"address"`
	FormattedAddress string          `json:"formattedAddress"`
	MapsURI          string          `json:"mapsUri"`
	Staffs           []StaffResponse `json:"staffs"`
	Remark           string          `json:"remark,omitempty"`
}

func OrderToResponse(o model.Order) OrderResponse {
	return OrderResponse{
		OrderNumber: o.Number,
		Store: StoreRefResponse{
			ID:         o.Store.ID,
			Code:       o.Store.Code,
			Name:       o.Store.Name,
			Merchant:   o.Store.Merchant,
			MerchantID: o.Store.MerchantID,
		},
		CreatedAt: o.CreatedAt,
		Notes:     o.Notes,
		Items:     ItemsToResponse(o.Items),
	}
}

func ItemToResponse(it model.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		ProductID:   it.ProductID,
		PackagingID: it.PackagingID,
		SKU:         it.SKU,
		Name:        it.Name,
		Brand:       it.Brand,
		Barcodes:    nonNil(it.Barcodes),
		PackSizes:   nonNil(it.PackSizes),
		Image:       it.Image,
		Quantity:    it.Quantity,
		CreatedAt:   it.CreatedAt,
	}
}

func ItemsToResponse(items []model.Item) []ItemResponse {
	return lo.Map(items, func(it model.Item, _ int) ItemResponse { return ItemToResponse(it) })
}

func DayGroupsToResponse(groups []model.DayGroup) []DayGroupResponse {
	return lo.Map(groups, func(g model.DayGroup, _ int) DayGroupResponse {
		return DayGroupResponse{
			Date:   g.Date,
			Orders: lo.Map(g.Orders, func(o model.Order, _ int) OrderResponse { return OrderToResponse(o) }),
		}
	})
}

func ProductToResponse(p model.Product) ProductResponse {
	status := p.Status
	if status == "" {
		status = model.StatusInStock
	}
	return ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Brand:     p.Brand,
		Barcodes:  nonNil(p.Barcodes),
		PackSizes: nonNil(p.PackSizes),
		Image:     p.Image,
		Status:    string(status),
	}
}

func ProductsToResponse(products []model.Product) []ProductResponse {
	return lo.Map(products, func(p model.Product, _ int) ProductResponse { return ProductToResponse(p) })
}

func ResolutionToResponse(r model.Resolution) ResolutionResponse {
	return ResolutionResponse{
		Code:     r.Code,
		Kind:     string(r.Kind),
		Products: ProductsToResponse(r.Products),
	}
}

func MerchantsToResponse(merchants []model.Merchant) []MerchantResponse {
	return lo.Map(merchants, func(m model.Merchant, _ int) MerchantResponse {
		return MerchantResponse{ID: m.ID, Name: m.Name}
	})
}

// StoreToResponse leaves FormattedAddress and MapsURI for the caller.
func StoreToResponse(s model.Store) StoreResponse {
	return StoreResponse{
		ID:         s.ID,
		Code:       s.Code,
		Name:       s.Name,
		Merchant:   s.Merchant,
		MerchantID: s.MerchantID,
		Address: AddressResponse{
			Street:     s.Address.Street,
			City:       s.Address.City,
			Province:   s.Address.Province,
			PostalCode: s.Address.PostalCode,
		},
		Staffs: lo.Map(s.Staffs, func(st model.Staff, _ int) StaffResponse {
			return StaffResponse{FirstName: st.FirstName, Phones: nonNil(st.Phones)}
		}),
		Remark: s.Remark,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
