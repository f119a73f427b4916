// Package analytics provides the in-memory query, sort and aggregation
// engines over parsed transaction records. All functions are pure: they never
// mutate their input and return fresh collections, so they are safe to call
// concurrently.
package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/billscan/receipt-analyzer/dto"
)

// Field names a searchable/sortable attribute of a TransactionRecord.
type Field string

const (
	FieldVendor   Field = "vendor"
	FieldDate     Field = "date"
	FieldAmount   Field = "amount"
	FieldCategory Field = "category"
	FieldCurrency Field = "currency"
)

// ParseField maps a request parameter to a known field name.
func ParseField(s string) (Field, bool) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case FieldVendor:
		return FieldVendor, true
	case FieldDate:
		return FieldDate, true
	case FieldAmount:
		return FieldAmount, true
	case FieldCategory:
		return FieldCategory, true
	case FieldCurrency:
		return FieldCurrency, true
	}
	return "", false
}

// hasValue reports whether the field is present on the record. Vendor and
// category are always populated.
func hasValue(r *dto.TransactionRecord, field Field) bool {
	switch field {
	case FieldDate:
		return r.Date != nil
	case FieldAmount:
		return r.Amount != nil
	case FieldCurrency:
		return r.Currency != nil
	default:
		return true
	}
}

// stringValue renders the field for substring, index and regex matching.
// Absent fields render as the empty string.
func stringValue(r *dto.TransactionRecord, field Field) string {
	switch field {
	case FieldVendor:
		return r.Vendor
	case FieldCategory:
		return r.Category
	case FieldCurrency:
		if r.Currency == nil {
			return ""
		}
		return *r.Currency
	case FieldDate:
		if r.Date == nil {
			return ""
		}
		return r.Date.Format("2006-01-02")
	case FieldAmount:
		if r.Amount == nil {
			return ""
		}
		return strconv.FormatFloat(*r.Amount, 'f', -1, 64)
	}
	return ""
}

// numberValue returns the field as a number for range filtering. Only the
// amount field is numeric.
func numberValue(r *dto.TransactionRecord, field Field) (float64, bool) {
	if field != FieldAmount || r.Amount == nil {
		return 0, false
	}
	return *r.Amount, true
}

// compareValues orders two records by field. Absent values compare as the
// field's zero value; callers needing null segregation handle presence
// before calling.
func compareValues(a, b *dto.TransactionRecord, field Field) int {
	switch field {
	case FieldAmount:
		av, _ := a.AmountValue()
		bv, _ := b.AmountValue()
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case FieldDate:
		var at, bt time.Time
		if a.Date != nil {
			at = *a.Date
		}
		if b.Date != nil {
			bt = *b.Date
		}
		return at.Compare(bt)
	default:
		return strings.Compare(stringValue(a, field), stringValue(b, field))
	}
}
