package model

import "encoding/json"

type StockStatus string

const (
	StatusInStock    StockStatus = "inStock"
	StatusOutOfStock StockStatus = "outOfStock"
)

func (s StockStatus) Valid() bool {
	return s == StatusInStock || s == StatusOutOfStock
}

type Product struct {
	// Backend identifier, empty for products from the bundled dataset.
	ID string
	// Stable business code, the per-order item key.
	SKU   string
	Name  string
	Brand string
	// Set of barcodes. A scanned code may match any of them.
	Barcodes []string
	// Set of pack sizes the product is sold in.
	PackSizes []string
	Image     string
	Status    StockStatus
}

type Packaging struct {
	ID        string
	ProductID string
	Quantity  int
}

// StockOverride is a per-SKU stock status set by the user.
type StockOverride struct {
	SKU    string      `json:"sku"`
	Status StockStatus `json:"status"`
}

type ProductsFilter struct {
	Barcode string
	Name    string
	SKU     string
}

func (f ProductsFilter) Empty() bool {
	return f.Barcode == "" && f.Name == "" && f.SKU == ""
}

type ResolutionKind string

const (
	ResolutionNoMatch  ResolutionKind = "NO_MATCH"
	ResolutionSingle   ResolutionKind = "SINGLE"
	ResolutionMultiple ResolutionKind = "MULTIPLE"
)

// Resolution is the outcome of resolving a scanned code.
type Resolution struct {
	Code     string
	Kind     ResolutionKind
	Products []Product
}

// StringSet decodes either a JSON string, number or array into a list of
// strings. Stored data uses both singular and array shapes.
type StringSet []string

func (s *StringSet) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = nil
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, raw := range list {
			v, err := scalarString(raw)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		*s = out
		return nil
	}

	v, err := scalarString(b)
	if err != nil {
		return err
	}
	if v == "" {
		*s = nil
		return nil
	}
	*s = StringSet{v}
	return nil
}

func scalarString(raw json.RawMessage) (string, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, nil
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return "", err
	}
	return num.String(), nil
}
