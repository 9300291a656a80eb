package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSetUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want StringSet
	}{
		{name: "array", in: `["0123","4567"]`, want: StringSet{"0123", "4567"}},
		{name: "single string", in: `"0123"`, want: StringSet{"0123"}},
		{name: "number", in: `6`, want: StringSet{"6"}},
		{name: "mixed array", in: `[6, "12"]`, want: StringSet{"6", "12"}},
		{name: "empty string", in: `""`, want: nil},
		{name: "null", in: `null`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got StringSet
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var bad StringSet
	require.Error(t, json.Unmarshal([]byte(`{"a":1}`), &bad))
}

func TestSortItems(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	items := []Item{
		{SKU: "20", CreatedAt: now.Add(2 * time.Minute)},
		{SKU: "100", CreatedAt: now},
		{SKU: "abc", CreatedAt: now.Add(time.Minute)},
		{SKU: "3", CreatedAt: now.Add(3 * time.Minute)},
	}

	bySKU := SortItems(items, SortBySKU)
	assert.Equal(t, []string{"100", "20", "3", "abc"}, skus(bySKU))

	byCreated := SortItems(items, SortByCreatedAt)
	assert.Equal(t, []string{"100", "abc", "20", "3"}, skus(byCreated))

	// input untouched
	assert.Equal(t, []string{"20", "100", "abc", "3"}, skus(items))
}

func TestSortItemsBySKUIsLexical(t *testing.T) {
	t.Parallel()

	items := []Item{{SKU: "9"}, {SKU: "10"}, {SKU: "B-2"}, {SKU: "A-10"}}
	assert.Equal(t, []string{"10", "9", "A-10", "B-2"}, skus(SortItems(items, SortBySKU)))

	assert.Equal(t, 1, CompareSKU("10", "9"), "export rows keep numeric order")
}

func TestOrderItemIndex(t *testing.T) {
	t.Parallel()

	ord := Order{Items: []Item{{SKU: "1"}, {SKU: "2"}, {SKU: "2"}}}
	assert.Equal(t, 1, ord.ItemIndex("2"))
	assert.Equal(t, -1, ord.ItemIndex("9"))
}

func TestNewItemSnapshotsProduct(t *testing.T) {
	t.Parallel()

	p := Product{ID: "p1", SKU: "100", Name: "Widget", Barcodes: []string{"111"}, PackSizes: []string{"6"}}
	now := time.Now()
	it := NewItem(p, 3, now)

	p.Barcodes[0] = "changed"
	assert.Equal(t, []string{"111"}, it.Barcodes)
	assert.Equal(t, 3, it.Quantity)
	assert.Equal(t, "p1", it.ProductID)
	assert.Equal(t, now, it.CreatedAt)
}

func skus(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.SKU
	}
	return out
}

func TestGroupByDate(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*60*60)
	at := func(s string) time.Time {
		ts, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err)
		return ts
	}

	orders := []Order{
		{Number: "a", CreatedAt: at("2024-01-01T10:00:00Z")},
		{Number: "b", CreatedAt: at("2024-01-02T09:00:00Z")},
		// 18:30 UTC is already the next day at UTC+7.
		{Number: "c", CreatedAt: at("2024-01-01T18:30:00Z")},
		{Number: "d", CreatedAt: at("2024-01-01T01:00:00Z")},
	}

	groups := GroupByDate(orders, loc)
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-01-02", groups[0].Date)
	assert.Equal(t, []string{"b", "c"}, numbers(groups[0].Orders))

	assert.Equal(t, "2024-01-01", groups[1].Date)
	assert.Equal(t, []string{"a", "d"}, numbers(groups[1].Orders))

	assert.Equal(t, "a", orders[0].Number, "input must not be reordered")
	assert.Empty(t, GroupByDate(nil, loc))
}

func numbers(orders []Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Number)
	}
	return out
}
