package local

import (
	"slices"

	"github.com/samber/lo"

	"github.com/you-humble/field-orders/internal/model"
)

func EntityToModel(e OrderEntity) model.Order {
	out := model.Order{
		Number:    e.OrderNumber,
		Store:     model.StoreRef{Code: e.StoreCode},
		CreatedAt: e.CreatedAt,
		Notes:     e.Notes,
		Items:     make([]model.Item, 0, len(e.Items)),
	}

	if e.Store != nil {
		out.Store = model.StoreRef{
			ID:         e.Store.ID,
			Code:       e.Store.Code,
			Name:       e.Store.Name,
			Merchant:   e.Store.Merchant,
			MerchantID: e.Store.MerchantID,
		}
		if out.Store.Code == "" {
			out.Store.Code = e.StoreCode
		}
	}

	for _, it := range e.Items {
		out.Items = append(out.Items, itemEntityToModel(it))
	}

	return out
}

func itemEntityToModel(e ItemEntity) model.Item {
	out := model.Item{
		ProductID: e.ProductID,
		SKU:       e.SKU,
		Name:      e.Name,
		Brand:     e.Brand,
		Barcodes:  mergeSets(e.Barcodes, e.Barcode),
		PackSizes: mergeSets(e.PackSizes, e.PackSize),
		Image:     e.Image,
		Quantity:  e.Quantity,
	}
	if e.CreatedAt != nil {
		out.CreatedAt = *e.CreatedAt
	}
	return out
}

func EntityFromModel(o model.Order) OrderEntity {
	out := OrderEntity{
		OrderNumber: o.Number,
		StoreCode:   o.Store.Code,
		Store: &StoreEntity{
			ID:         o.Store.ID,
			Code:       o.Store.Code,
			Name:       o.Store.Name,
			Merchant:   o.Store.Merchant,
			MerchantID: o.Store.MerchantID,
		},
		CreatedAt: o.CreatedAt,
		Notes:     o.Notes,
		Items:     make([]ItemEntity, 0, len(o.Items)),
	}

	for _, it := range o.Items {
		out.Items = append(out.Items, itemEntityFromModel(it))
	}

	return out
}

func itemEntityFromModel(it model.Item) ItemEntity {
	out := ItemEntity{
		SKU:       it.SKU,
		ProductID: it.ProductID,
		Name:      it.Name,
		Brand:     it.Brand,
		Barcodes:  slices.Clone(it.Barcodes),
		PackSizes: slices.Clone(it.PackSizes),
		Image:     it.Image,
		Quantity:  it.Quantity,
	}
	if !it.CreatedAt.IsZero() {
		out.CreatedAt = lo.ToPtr(it.CreatedAt)
	}
	return out
}

// carryExtra copies the unknown fields of prev onto next, its rewritten form.
// Items are matched by sku in order, so duplicates pair up one to one.
func carryExtra(prev, next OrderEntity) OrderEntity {
	next.Extra = prev.Extra

	used := make([]bool, len(prev.Items))
	for i := range next.Items {
		for j, it := range prev.Items {
			if !used[j] && it.SKU == next.Items[i].SKU {
				used[j] = true
				next.Items[i].Extra = it.Extra
				break
			}
		}
	}

	return next
}

func EntitiesToModels(entities []OrderEntity) []model.Order {
	out := make([]model.Order, 0, len(entities))
	for _, e := range entities {
		out = append(out, EntityToModel(e))
	}
	return out
}

// mergeSets joins the array and the legacy singular field, dropping duplicates.
func mergeSets(sets ...model.StringSet) []string {
	var out []string
	for _, set := range sets {
		for _, v := range set {
			if v != "" && !slices.Contains(out, v) {
				out = append(out, v)
			}
		}
	}
	return out
}
