package local

import (
	"encoding/json"
	"time"

	"github.com/you-humble/field-orders/internal/model"
)

// OrderEntity is one element of the JSON array stored under the "orders" key.
// Older records carry only storeCode; newer ones carry the store object too.
type OrderEntity struct {
	OrderNumber string       `json:"orderNumber"`
	StoreCode   string       `json:"storeCode,omitempty"`
	Store       *StoreEntity `json:"store,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	Notes       string       `json:"notes,omitempty"`
	Items       []ItemEntity `json:"items"`

	// Extra keeps fields this version does not know so a write-back does not
	// lose them.
	Extra map[string]json.RawMessage `json:"-"`
}

type StoreEntity struct {
	ID         string `json:"id,omitempty"`
	Code       string `json:"code"`
	Name       string `json:"name,omitempty"`
	Merchant   string `json:"merchant,omitempty"`
	MerchantID string `json:"merchantId,omitempty"`
}

// ItemEntity accepts both the singular (barcode, packSize) and the array
// (barcodes, packSizes) shapes. Writes always use the array shape.
type ItemEntity struct {
	SKU       string          `json:"sku"`
	ProductID string          `json:"productId,omitempty"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Barcode   model.StringSet `json:"barcode,omitempty"`
	Barcodes  model.StringSet `json:"barcodes,omitempty"`
	PackSize  model.StringSet `json:"packSize,omitempty"`
	PackSizes model.StringSet `json:"packSizes,omitempty"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var (
	orderKeys = []string{"orderNumber", "storeCode", "store", "createdAt", "notes", "items"}
	itemKeys  = []string{
		"sku", "productId", "name", "brand", "barcode", "barcodes",
		"packSize", "packSizes", "image", "quantity", "createdAt",
	}
)

func (e *OrderEntity) UnmarshalJSON(b []byte) error {
	type plain OrderEntity
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	extra, err := unknownFields(b, orderKeys)
	if err != nil {
		return err
	}

	*e = OrderEntity(p)
	e.Extra = extra
	return nil
}

func (e OrderEntity) MarshalJSON() ([]byte, error) {
	type plain OrderEntity
	return withFields(plain(e), e.Extra)
}

func (e *ItemEntity) UnmarshalJSON(b []byte) error {
	type plain ItemEntity
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	extra, err := unknownFields(b, itemKeys)
	if err != nil {
		return err
	}

	*e = ItemEntity(p)
	e.Extra = extra
	return nil
}

func (e ItemEntity) MarshalJSON() ([]byte, error) {
	type plain ItemEntity
	return withFields(plain(e), e.Extra)
}

// unknownFields returns the members of the JSON object b whose keys are not
// in known, or nil when there are none.
func unknownFields(b []byte, known []string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}

	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// withFields encodes v and adds the extra members that v does not set itself.
func withFields(v any, extra map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return b, err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	for k, raw := range extra {
		if _, ok := all[k]; !ok {
			all[k] = raw
		}
	}
	return json.Marshal(all)
}
