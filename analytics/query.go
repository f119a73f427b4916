package analytics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/billscan/receipt-analyzer/dto"
)

// LinearSearch returns records where the keyword appears, case-insensitively,
// in the string form of at least one of the given fields. Input order is
// preserved and each record short-circuits on its first matching field.
func LinearSearch(records []dto.TransactionRecord, keyword string, fields []Field) []dto.TransactionRecord {
	keyword = strings.ToLower(keyword)
	result := make([]dto.TransactionRecord, 0)
	for i := range records {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(stringValue(&records[i], field)), keyword) {
				result = append(result, records[i])
				break
			}
		}
	}
	return result
}

// Index is a case-insensitive exact-match index over one field, built once
// so that repeated lookups amortize the construction cost.
type Index struct {
	field   Field
	buckets map[string][]dto.TransactionRecord
}

// NewIndex builds an index keyed by the lowercased string form of field.
func NewIndex(records []dto.TransactionRecord, field Field) *Index {
	idx := &Index{field: field, buckets: make(map[string][]dto.TransactionRecord)}
	for i := range records {
		key := strings.ToLower(stringValue(&records[i], field))
		idx.buckets[key] = append(idx.buckets[key], records[i])
	}
	return idx
}

// Lookup returns the bucket for value, or an empty slice when absent.
func (idx *Index) Lookup(value string) []dto.TransactionRecord {
	bucket, ok := idx.buckets[strings.ToLower(value)]
	if !ok {
		return []dto.TransactionRecord{}
	}
	return bucket
}

// HashSearch is a one-shot exact-match lookup over field.
func HashSearch(records []dto.TransactionRecord, field Field, value string) []dto.TransactionRecord {
	return NewIndex(records, field).Lookup(value)
}

// RangeSearch filters records whose numeric field value lies in the
// inclusive [min, max] range. A nil bound means unbounded on that side;
// records with an absent field are excluded.
func RangeSearch(records []dto.TransactionRecord, field Field, min, max *float64) []dto.TransactionRecord {
	result := make([]dto.TransactionRecord, 0)
	for i := range records {
		val, ok := numberValue(&records[i], field)
		if !ok {
			continue
		}
		if min != nil && val < *min {
			continue
		}
		if max != nil && val > *max {
			continue
		}
		result = append(result, records[i])
	}
	return result
}

// PatternSearch filters records whose field matches the regular expression,
// case-insensitively. A malformed pattern is the one failure this engine
// surfaces to the caller.
func PatternSearch(records []dto.TransactionRecord, field Field, pattern string) ([]dto.TransactionRecord, error) {
	re, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	result := make([]dto.TransactionRecord, 0)
	for i := range records {
		if re.MatchString(stringValue(&records[i], field)) {
			result = append(result, records[i])
		}
	}
	return result, nil
}
