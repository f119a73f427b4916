package analytics

import (
	"sort"

	"github.com/billscan/receipt-analyzer/dto"
)

// SortBy returns a stable, null-tolerant ordering of records by field.
// Records with an absent field value are grouped together and placed after
// all present values for ascending order, or before them for descending
// order, so present and absent values are never compared against each other.
// Equal keys keep their relative input order.
func SortBy(records []dto.TransactionRecord, field Field, descending bool) []dto.TransactionRecord {
	out := make([]dto.TransactionRecord, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		iPresent := hasValue(&out[i], field)
		jPresent := hasValue(&out[j], field)
		if iPresent != jPresent {
			if descending {
				return !iPresent
			}
			return iPresent
		}
		if !iPresent {
			return false
		}
		cmp := compareValues(&out[i], &out[j], field)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// Quicksort is the simpler, non-null-tolerant sorting primitive: an
// iterative first-element-pivot partition sort for fields guaranteed to be
// present (vendor, category). Absent values compare as the field's zero
// value. The ordering of equal keys is not stable.
func Quicksort(records []dto.TransactionRecord, field Field) []dto.TransactionRecord {
	out := make([]dto.TransactionRecord, len(records))
	copy(out, records)
	if len(out) < 2 {
		return out
	}

	// explicit stack instead of recursion, the pivot-first scheme degrades
	// to O(n) depth on sorted input
	type span struct{ lo, hi int }
	stack := []span{{0, len(out) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.lo >= s.hi {
			continue
		}
		p := partition(out, s.lo, s.hi, field)
		stack = append(stack, span{s.lo, p - 1}, span{p + 1, s.hi})
	}
	return out
}

// partition places the first element of the span as pivot, groups elements
// <= pivot before it and > pivot after it, and returns the pivot's final
// index.
func partition(records []dto.TransactionRecord, lo, hi int, field Field) int {
	records[lo], records[hi] = records[hi], records[lo]
	pivot := records[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if compareValues(&records[j], &pivot, field) <= 0 {
			records[i], records[j] = records[j], records[i]
			i++
		}
	}
	records[i], records[hi] = records[hi], records[i]
	return i
}
