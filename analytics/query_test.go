package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/billscan/receipt-analyzer/dto"
)

func fptr(v float64) *float64 { return &v }

func tptr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func sptr(s string) *string { return &s }

func sampleRecords() []dto.TransactionRecord {
	return []dto.TransactionRecord{
		{Vendor: "Walmart", Category: "Groceries", Amount: fptr(45.50), Date: tptr(2024, time.January, 5), Currency: sptr("USD")},
		{Vendor: "Airtel", Category: "Internet", Amount: fptr(19.99), Date: tptr(2024, time.February, 1)},
		{Vendor: "Tata Power", Category: "Electricity", Date: tptr(2024, time.February, 20)},
		{Vendor: "Walmart", Category: "Groceries", Amount: fptr(80.00)},
		{Vendor: "Unknown", Category: "Other"},
	}
}

func TestLinearSearch(t *testing.T) {
	records := sampleRecords()

	matches := LinearSearch(records, "walmart", []Field{FieldVendor})
	if assert.Len(t, matches, 2) {
		assert.Equal(t, "Walmart", matches[0].Vendor)
		assert.Equal(t, fptr(45.50), matches[0].Amount)
		assert.Equal(t, fptr(80.00), matches[1].Amount)
	}

	// a record matches when any listed field matches
	matches = LinearSearch(records, "electr", []Field{FieldVendor, FieldCategory})
	if assert.Len(t, matches, 1) {
		assert.Equal(t, "Tata Power", matches[0].Vendor)
	}

	assert.Empty(t, LinearSearch(records, "nope", []Field{FieldVendor, FieldCategory}))
}

func TestHashSearch(t *testing.T) {
	records := sampleRecords()

	matches := HashSearch(records, FieldCategory, "GROCERIES")
	assert.Len(t, matches, 2)

	assert.Empty(t, HashSearch(records, FieldCategory, "travel"))
}

func TestIndexReuse(t *testing.T) {
	idx := NewIndex(sampleRecords(), FieldVendor)

	assert.Len(t, idx.Lookup("walmart"), 2)
	assert.Len(t, idx.Lookup("airtel"), 1)
	assert.Empty(t, idx.Lookup("costco"))
}

func TestRangeSearch(t *testing.T) {
	records := sampleRecords()

	// inclusive bounds; records without an amount are excluded
	matches := RangeSearch(records, FieldAmount, fptr(19.99), fptr(45.50))
	assert.Len(t, matches, 2)

	// nil bound means unbounded on that side
	matches = RangeSearch(records, FieldAmount, fptr(50), nil)
	if assert.Len(t, matches, 1) {
		assert.Equal(t, fptr(80.00), matches[0].Amount)
	}

	matches = RangeSearch(records, FieldAmount, nil, nil)
	assert.Len(t, matches, 3)
}

func TestPatternSearch(t *testing.T) {
	records := sampleRecords()

	matches, err := PatternSearch(records, FieldVendor, `^wal.*t$`)
	assert.NoError(t, err)
	assert.Len(t, matches, 2)

	_, err = PatternSearch(records, FieldVendor, `(`)
	assert.Error(t, err)
}
