package export

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/you-humble/field-orders/internal/model"
)

const createdAtLayout = "02/01/2006 15:04"

var columns = []string{"Name", "Brand", "Barcode", "Pack Size", "Code", "Quantity"}

// OrderCSV renders an order as comma separated text: a metadata block, a
// blank line, the column header and one row per item ordered by sku.
// Fields are written verbatim, embedded commas are not quoted.
func OrderCSV(order model.Order, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	var b strings.Builder
	line := func(fields ...string) { b.WriteString(strings.Join(fields, ",")) }

	line("Order Number", order.Number)
	b.WriteByte('\n')
	line("Merchant", order.Store.Merchant)
	b.WriteByte('\n')
	line("Store", order.Store.Name+" - #"+order.Store.Code)
	b.WriteByte('\n')
	line("Created At", order.CreatedAt.In(loc).Format(createdAtLayout))
	b.WriteByte('\n')
	line("Notes", order.Notes)
	b.WriteString("\n\n")

	line(columns...)
	b.WriteByte('\n')

	items := slices.Clone(order.Items)
	slices.SortStableFunc(items, func(a, b model.Item) int { return model.CompareSKU(a.SKU, b.SKU) })
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		line(
			it.Name,
			it.Brand,
			strings.Join(it.Barcodes, " "),
			strings.Join(it.PackSizes, " "),
			it.SKU,
			strconv.Itoa(it.Quantity),
		)
	}

	return b.String()
}

// FileName is "<number>_#<store code>.csv", or "<number>.csv" for orders
// without a store code.
func FileName(order model.Order) string {
	if order.Store.Code == "" {
		return order.Number + ".csv"
	}
	return order.Number + "_#" + order.Store.Code + ".csv"
}
