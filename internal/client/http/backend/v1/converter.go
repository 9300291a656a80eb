package backendclient

import (
	"slices"
	"strconv"

	"github.com/samber/lo"

	"github.com/you-humble/field-orders/internal/model"
)

func merchantToModel(m MerchantDTO) model.Merchant {
	return model.Merchant{ID: m.ID, Name: m.Name}
}

func merchantName(r Ref[MerchantDTO]) string {
	if r.Value == nil {
		return ""
	}
	return r.Value.Name
}

func storeToModel(s StoreDTO) model.Store {
	out := model.Store{
		ID:         s.ID,
		Code:       string(s.Code),
		Name:       s.Name,
		Merchant:   merchantName(s.Merchant),
		MerchantID: s.Merchant.ID,
		Address: model.Address{
			Street:     s.Address.Street,
			City:       s.Address.City,
			Province:   s.Address.Province,
			PostalCode: s.Address.PostalCode,
		},
		Staffs: lo.Map(s.Staffs, func(st StaffDTO, _ int) model.Staff {
			return model.Staff{FirstName: st.FirstName, Phones: slices.Clone(st.Phones)}
		}),
		Remark: s.Remark,
	}

	// GeoJSON order is [lng, lat].
	if s.Location != nil && len(s.Location.Coordinates) == 2 {
		out.Location = &model.GeoPoint{
			Lng: s.Location.Coordinates[0],
			Lat: s.Location.Coordinates[1],
		}
	}

	return out
}

func storeRefToModel(r Ref[StoreDTO], merchant Ref[MerchantDTO]) model.StoreRef {
	out := model.StoreRef{
		ID:         r.ID,
		Merchant:   merchantName(merchant),
		MerchantID: merchant.ID,
	}
	if r.Value != nil {
		out.Code = string(r.Value.Code)
		out.Name = r.Value.Name
		if out.Merchant == "" {
			out.Merchant = merchantName(r.Value.Merchant)
		}
		if out.MerchantID == "" {
			out.MerchantID = r.Value.Merchant.ID
		}
	}
	return out
}

func productToModel(p ProductDTO) model.Product {
	return model.Product{
		ID:        p.ID,
		SKU:       string(p.SKU),
		Name:      p.Name,
		Brand:     p.Brand,
		Barcodes:  slices.Clone(p.Barcode),
		PackSizes: slices.Clone(p.PackSize),
		Image:     p.Image,
	}
}

func packagingToModel(p PackagingDTO) model.Packaging {
	return model.Packaging{ID: p.ID, ProductID: p.Product.ID, Quantity: p.Quantity}
}

func purchaseOrderToModel(o PurchaseOrderDTO) model.Order {
	return model.Order{
		Number:    o.ID,
		Store:     storeRefToModel(o.Store, o.Merchant),
		CreatedAt: o.CreatedAt,
		Notes:     o.Notes,
		Items:     []model.Item{},
	}
}

// purchaseOrderItemToModel flattens a populated item into the snapshot shape
// used by local orders. Unpopulated relations leave the product fields empty.
func purchaseOrderItemToModel(it PurchaseOrderItemDTO) model.Item {
	out := model.Item{
		ID:          it.ID,
		ProductID:   it.Product.ID,
		PackagingID: it.Packaging.ID,
		Quantity:    it.Quantity,
		CreatedAt:   it.CreatedAt,
	}

	if p := it.Product.Value; p != nil {
		out.SKU = string(p.SKU)
		out.Name = p.Name
		out.Brand = p.Brand
		out.Barcodes = slices.Clone(p.Barcode)
		out.PackSizes = slices.Clone(p.PackSize)
		out.Image = p.Image
	}

	if pk := it.Packaging.Value; pk != nil && len(out.PackSizes) == 0 && pk.Quantity > 0 {
		out.PackSizes = []string{strconv.Itoa(pk.Quantity)}
	}

	return out
}
