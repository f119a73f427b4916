package analytics

import (
	"sort"

	"github.com/billscan/receipt-analyzer/dto"
)

// Aggregates holds summary statistics over a numeric field. Mode is nil when
// the value set is empty or has no single most frequent value.
type Aggregates struct {
	Sum    float64
	Mean   float64
	Median float64
	Mode   *float64
}

// ComputeAggregates computes sum, mean, median and mode over the records
// where field is present. An empty present-value set yields the zero
// defaults with a nil mode.
func ComputeAggregates(records []dto.TransactionRecord, field Field) Aggregates {
	values := make([]float64, 0, len(records))
	for i := range records {
		if v, ok := numberValue(&records[i], field); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return Aggregates{}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	agg := Aggregates{
		Sum:    sum,
		Mean:   sum / float64(len(values)),
		Median: median(values),
		Mode:   mode(values),
	}
	return agg
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// mode returns the single most frequent value, or nil when the distribution
// is multimodal. Tie detection is explicit so multimodal input degrades to
// an absent result instead of an error.
func mode(values []float64) *float64 {
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var best float64
	bestCount := 0
	tied := false
	for v, n := range counts {
		switch {
		case n > bestCount:
			best, bestCount, tied = v, n, false
		case n == bestCount:
			tied = true
		}
	}
	if tied && len(counts) > 1 {
		return nil
	}
	return &best
}

// FrequencyDistribution counts occurrences of the field's value across all
// records. Absent values are counted under the literal "Unknown" bucket.
func FrequencyDistribution(records []dto.TransactionRecord, field Field) map[string]int {
	freq := make(map[string]int)
	for i := range records {
		key := stringValue(&records[i], field)
		if !hasValue(&records[i], field) || key == "" {
			key = "Unknown"
		}
		freq[key]++
	}
	return freq
}

// MonthlyAggregation sums amounts into "YYYY-MM" buckets keyed by each
// record's date. Records missing either the date or the amount are skipped.
func MonthlyAggregation(records []dto.TransactionRecord) map[string]float64 {
	monthly := make(map[string]float64)
	for i := range records {
		date, ok := records[i].DateValue()
		if !ok {
			continue
		}
		amount, ok := records[i].AmountValue()
		if !ok {
			continue
		}
		monthly[date.Format("2006-01")] += amount
	}
	return monthly
}

// SlidingWindow computes a trailing moving average over the monthly series.
// Months are taken in ascending key order ("YYYY-MM" sorts chronologically);
// each position averages itself and up to window-1 predecessors, so the
// first window-1 positions use a shorter effective window. There is no
// look-ahead and no zero padding.
func SlidingWindow(monthly map[string]float64, window int) map[string]float64 {
	if window < 1 {
		window = 1
	}

	keys := make([]string, 0, len(monthly))
	for k := range monthly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make(map[string]float64, len(keys))
	for i, key := range keys {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for _, k := range keys[start : i+1] {
			sum += monthly[k]
		}
		result[key] = sum / float64(i-start+1)
	}
	return result
}
