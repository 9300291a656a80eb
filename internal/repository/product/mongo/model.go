package mongo

import "time"

type ProductEntity struct {
	SKU       string     `bson:"_id"`
	Name      string     `bson:"name"`
	NameNorm  string     `bson:"name_norm"`
	Brand     string     `bson:"brand,omitempty"`
	Barcodes  []string   `bson:"barcodes"`
	PackSizes []string   `bson:"pack_sizes,omitempty"`
	Image     string     `bson:"image,omitempty"`
	CreatedAt *time.Time `bson:"created_at,omitempty"`
}
