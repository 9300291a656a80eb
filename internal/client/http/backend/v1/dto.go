package backendclient

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/you-humble/field-orders/internal/model"
)

type envelope[T any] struct {
	Data  T   `json:"data"`
	Total int `json:"total,omitempty"`
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Paging is the list metadata returned next to a page of results.
type Paging struct {
	Total int
	Page  int
	Limit int
}

// Ref is a relation that arrives either as a bare id or as the populated
// document. It always encodes back to the id.
type Ref[T any] struct {
	ID    string
	Value *T
}

func RefID[T any](id string) Ref[T] { return Ref[T]{ID: id} }

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref[T]{ID: id}
		return nil
	}

	var doc struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*r = Ref[T]{ID: doc.ID, Value: &v}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// Code is a business code the backend may send as a string or a number.
type Code string

func (c *Code) UnmarshalJSON(b []byte) error {
	var set model.StringSet
	if err := json.Unmarshal(b, &set); err != nil {
		return err
	}
	if len(set) == 0 {
		*c = ""
		return nil
	}
	*c = Code(set[0])
	return nil
}

type MerchantDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type AddressDTO struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

type StaffDTO struct {
	FirstName string          `json:"firstName"`
	Phones    model.StringSet `json:"phones"`
}

type LocationDTO struct {
	Type        string    `json:"type,omitempty"`
	Coordinates []float64 `json:"coordinates"`
}

type StoreDTO struct {
	ID       string           `json:"_id"`
	Code     Code             `json:"code"`
	Name     string           `json:"name"`
	Merchant Ref[MerchantDTO] `json:"merchant"`
	Address  AddressDTO       `json:"address"`
	Staffs   []StaffDTO       `json:"staffs,omitempty"`
	Location *LocationDTO     `json:"location,omitempty"`
	Remark   string           `json:"remark,omitempty"`
}

type ProductDTO struct {
	ID       string          `json:"_id"`
	SKU      Code            `json:"sku"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand,omitempty"`
	Barcode  model.StringSet `json:"barcode,omitempty"`
	PackSize model.StringSet `json:"packSize,omitempty"`
	Image    string          `json:"image,omitempty"`
}

type PackagingDTO struct {
	ID       string          `json:"_id"`
	Product  Ref[ProductDTO] `json:"product"`
	Quantity int             `json:"quantity"`
}

type PurchaseOrderDTO struct {
	ID        string           `json:"_id"`
	Merchant  Ref[MerchantDTO] `json:"merchant"`
	Store     Ref[StoreDTO]    `json:"store"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

type PurchaseOrderItemDTO struct {
	ID            string                `json:"_id"`
	Product       Ref[ProductDTO]       `json:"product"`
	PurchaseOrder Ref[PurchaseOrderDTO] `json:"purchaseOrder"`
	Packaging     Ref[PackagingDTO]     `json:"packaging"`
	Quantity      int                   `json:"quantity"`
	CreatedAt     time.Time             `json:"createdAt"`
}

type createProductRequest struct {
	Name    string `json:"name"`
	SKU     string `json:"sku"`
	Barcode string `json:"barcode"`
}

type createPackagingRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type createPurchaseOrderRequest struct {
	Merchant string `json:"merchant,omitempty"`
	Store    string `json:"store,omitempty"`
}

type updatePurchaseOrderRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type createPurchaseOrderItemRequest struct {
	Product       string `json:"product"`
	PurchaseOrder string `json:"purchaseOrder"`
	Packaging     string `json:"packaging,omitempty"`
	Quantity      int    `json:"quantity"`
}

type updatePurchaseOrderItemRequest struct {
	Quantity int `json:"quantity"`
}
