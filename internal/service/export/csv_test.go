package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/field-orders/internal/model"
)

func literalOrder() model.Order {
	return model.Order{
		Number:    "PO20240101000",
		Store:     model.StoreRef{Merchant: "Acme", Name: "Main St", Code: "7"},
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Notes:     "n/a",
		Items: []model.Item{{
			Name:      "Widget",
			Brand:     "Bco",
			SKU:       "100",
			Barcodes:  []string{"111"},
			PackSizes: []string{"6"},
			Quantity:  2,
		}},
	}
}

func TestOrderCSV(t *testing.T) {
	t.Parallel()

	out := OrderCSV(literalOrder(), time.UTC)

	want := "Order Number,PO20240101000\n" +
		"Merchant,Acme\n" +
		"Store,Main St - #7\n" +
		"Created At,01/01/2024 10:00\n" +
		"Notes,n/a\n" +
		"\n" +
		"Name,Brand,Barcode,Pack Size,Code,Quantity\n" +
		"Widget,Bco,111,6,100,2"
	assert.Equal(t, want, out)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines, "Order Number,PO20240101000")
	assert.Contains(t, lines, "Widget,Bco,111,6,100,2")
}

func TestOrderCSVDeterministic(t *testing.T) {
	t.Parallel()

	order := literalOrder()
	first := OrderCSV(order, time.UTC)
	second := OrderCSV(order, time.UTC)
	assert.Equal(t, []byte(first), []byte(second))
}

func TestOrderCSVRows(t *testing.T) {
	t.Parallel()

	order := literalOrder()
	order.Notes = ""
	order.Items = []model.Item{
		{Name: "B", SKU: "20", Barcodes: []string{"1", "2"}, PackSizes: []string{"6", "12"}, Quantity: 1},
		{Name: "C", SKU: "abc", Quantity: 4},
		{Name: "A", SKU: "3", Quantity: 5},
		{Name: "D", SKU: "100", Quantity: 7},
	}

	lines := strings.Split(OrderCSV(order, time.UTC), "\n")
	assert.Equal(t, "Notes,", lines[4])
	assert.Equal(t, []string{
		"A,,,,3,5",
		"B,,1 2,6 12,20,1",
		"D,,,,100,7",
		"C,,,,abc,4",
	}, lines[7:])
	assert.Len(t, order.Items, 4)
	assert.Equal(t, "20", order.Items[0].SKU)
}

func TestOrderCSVTimeZone(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*60*60)
	lines := strings.Split(OrderCSV(literalOrder(), loc), "\n")
	assert.Equal(t, "Created At,01/01/2024 17:00", lines[3])
}

// Embedded commas are written verbatim and shift the columns.
func TestOrderCSVCommaNotQuoted(t *testing.T) {
	t.Parallel()

	order := literalOrder()
	order.Items[0].Name = "Widget, large"

	lines := strings.Split(OrderCSV(order, time.UTC), "\n")
	row := lines[len(lines)-1]
	assert.Equal(t, "Widget, large,Bco,111,6,100,2", row)
	assert.Len(t, strings.Split(row, ","), 7)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	order := literalOrder()
	require.Equal(t, "PO20240101000_#7.csv", FileName(order))

	order.Store.Code = ""
	assert.Equal(t, "PO20240101000.csv", FileName(order))
}
