package mongo

import (
	"regexp"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/field-orders/internal/model"
)

func EntityToModel(e *ProductEntity) model.Product {
	if e == nil {
		return model.Product{}
	}

	return model.Product{
		SKU:       e.SKU,
		Name:      e.Name,
		Brand:     e.Brand,
		Barcodes:  slices.Clone(e.Barcodes),
		PackSizes: slices.Clone(e.PackSizes),
		Image:     e.Image,
	}
}

func EntityFromModel(p model.Product) *ProductEntity {
	return &ProductEntity{
		SKU:       p.SKU,
		Name:      p.Name,
		NameNorm:  normalizeName(p.Name),
		Brand:     p.Brand,
		Barcodes:  slices.Clone(p.Barcodes),
		PackSizes: slices.Clone(p.PackSizes),
		Image:     p.Image,
	}
}

// BuildMongoFilter narrows the candidates on the server. Barcode and name are
// substring matches, sku is exact.
func BuildMongoFilter(f model.ProductsFilter) bson.M {
	q := bson.M{}

	if f.SKU != "" {
		q["_id"] = f.SKU
	}
	if f.Barcode != "" {
		q["barcodes"] = bson.M{"$regex": regexp.QuoteMeta(f.Barcode)}
	}
	if name := normalizeName(f.Name); name != "" {
		q["name_norm"] = bson.M{"$regex": regexp.QuoteMeta(name)}
	}

	return q
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
