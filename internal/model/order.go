package model

import (
	"cmp"
	"slices"
	"strconv"
	"time"
)

type Order struct {
	// Unique order number: PO<yyyyMMdd><seq> locally, backend id remotely.
	Number string
	// Store the order was raised for.
	Store StoreRef
	// Time the order was created.
	CreatedAt time.Time
	// Free-text notes.
	Notes string
	// Order lines in insertion order.
	Items []Item
}

// StoreRef is the store snapshot kept on an order.
type StoreRef struct {
	ID         string
	Code       string
	Name       string
	Merchant   string
	MerchantID string
}

type Item struct {
	// Backend identifier of the order line, remote orders only.
	ID string
	// Backend identifiers of the referenced product and packaging, remote orders only.
	ProductID   string
	PackagingID string

	SKU       string
	Name      string
	Brand     string
	Barcodes  []string
	PackSizes []string
	Image     string
	Quantity  int
	CreatedAt time.Time
}

// NewItem snapshots the product fields into an order line.
func NewItem(p Product, quantity int, now time.Time) Item {
	return Item{
		ProductID: p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Brand:     p.Brand,
		Barcodes:  slices.Clone(p.Barcodes),
		PackSizes: slices.Clone(p.PackSizes),
		Image:     p.Image,
		Quantity:  quantity,
		CreatedAt: now,
	}
}

// ItemIndex returns the index of the first item with the given sku or -1.
func (o *Order) ItemIndex(sku string) int {
	return slices.IndexFunc(o.Items, func(it Item) bool { return it.SKU == sku })
}

type CreateOrderParams struct {
	StoreCode string
}

type AddItemParams struct {
	OrderNumber string
	SKU         string
	Quantity    int
}

type UpdateItemParams struct {
	OrderNumber string
	SKU         string
	Quantity    int
}

// DayGroup holds the orders created on one calendar date, newest first.
type DayGroup struct {
	Date   string
	Orders []Order
}

type ItemSortKey string

const (
	SortByCreatedAt ItemSortKey = "createdAt"
	SortBySKU       ItemSortKey = "sku"
)

func (k ItemSortKey) Valid() bool {
	return k == SortByCreatedAt || k == SortBySKU
}

// SortItems returns a sorted copy. The input slice is left untouched.
// SKUs compare as plain strings here, unlike the export rows.
func SortItems(items []Item, by ItemSortKey) []Item {
	out := slices.Clone(items)
	switch by {
	case SortByCreatedAt:
		slices.SortStableFunc(out, func(a, b Item) int { return a.CreatedAt.Compare(b.CreatedAt) })
	case SortBySKU:
		slices.SortStableFunc(out, func(a, b Item) int { return cmp.Compare(a.SKU, b.SKU) })
	}
	return out
}

// CompareSKU orders numeric codes numerically and everything else lexically.
// Numeric codes sort before non-numeric ones.
func CompareSKU(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

const DayLayout = "2006-01-02"

// GroupByDate sorts orders newest first and groups them by the calendar date
// of CreatedAt in loc. Orders within a group keep the sorted order.
func GroupByDate(orders []Order, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}

	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b Order) int { return b.CreatedAt.Compare(a.CreatedAt) })

	groups := make([]DayGroup, 0)
	for _, o := range sorted {
		day := o.CreatedAt.In(loc).Format(DayLayout)
		if n := len(groups); n > 0 && groups[n-1].Date == day {
			groups[n-1].Orders = append(groups[n-1].Orders, o)
			continue
		}
		groups = append(groups, DayGroup{Date: day, Orders: []Order{o}})
	}
	return groups
}
