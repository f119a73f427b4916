package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/billscan/receipt-analyzer/dto"
)

func amountRecords(values ...float64) []dto.TransactionRecord {
	records := make([]dto.TransactionRecord, len(values))
	for i, v := range values {
		records[i] = dto.TransactionRecord{Vendor: "V", Category: "Other", Amount: fptr(v)}
	}
	return records
}

func TestComputeAggregatesEmpty(t *testing.T) {
	agg := ComputeAggregates(nil, FieldAmount)

	assert.Equal(t, 0.0, agg.Sum)
	assert.Equal(t, 0.0, agg.Mean)
	assert.Equal(t, 0.0, agg.Median)
	assert.Nil(t, agg.Mode)

	// records exist but none carries the field
	agg = ComputeAggregates([]dto.TransactionRecord{{Vendor: "V", Category: "Other"}}, FieldAmount)
	assert.Equal(t, 0.0, agg.Sum)
	assert.Nil(t, agg.Mode)
}

func TestComputeAggregatesSingleValue(t *testing.T) {
	agg := ComputeAggregates(amountRecords(42.5), FieldAmount)

	assert.Equal(t, 42.5, agg.Sum)
	assert.Equal(t, 42.5, agg.Mean)
	assert.Equal(t, 42.5, agg.Median)
	if assert.NotNil(t, agg.Mode) {
		assert.Equal(t, 42.5, *agg.Mode)
	}
}

func TestComputeAggregates(t *testing.T) {
	agg := ComputeAggregates(amountRecords(10, 20, 20, 30), FieldAmount)

	assert.Equal(t, 80.0, agg.Sum)
	assert.Equal(t, 20.0, agg.Mean)
	assert.Equal(t, 20.0, agg.Median)
	if assert.NotNil(t, agg.Mode) {
		assert.Equal(t, 20.0, *agg.Mode)
	}
}

func TestComputeAggregatesMultimodal(t *testing.T) {
	agg := ComputeAggregates(amountRecords(10, 10, 20, 20), FieldAmount)

	assert.Equal(t, 60.0, agg.Sum)
	assert.Nil(t, agg.Mode)
}

func TestComputeAggregatesMedianEvenCount(t *testing.T) {
	agg := ComputeAggregates(amountRecords(10, 30, 20, 40), FieldAmount)
	assert.Equal(t, 25.0, agg.Median)
}

func TestFrequencyDistribution(t *testing.T) {
	freq := FrequencyDistribution(sampleRecords(), FieldVendor)

	assert.Equal(t, 2, freq["Walmart"])
	assert.Equal(t, 1, freq["Airtel"])

	// absent values land in the "Unknown" bucket
	freq = FrequencyDistribution(sampleRecords(), FieldCurrency)
	assert.Equal(t, 1, freq["USD"])
	assert.Equal(t, 4, freq["Unknown"])
}

func TestMonthlyAggregation(t *testing.T) {
	records := []dto.TransactionRecord{
		{Vendor: "A", Category: "Other", Date: tptr(2024, time.January, 5), Amount: fptr(10)},
		{Vendor: "B", Category: "Other", Date: tptr(2024, time.January, 20), Amount: fptr(15)},
		{Vendor: "C", Category: "Other", Date: tptr(2024, time.February, 1), Amount: fptr(30)},
		// skipped: missing amount, then missing date
		{Vendor: "D", Category: "Other", Date: tptr(2024, time.March, 1)},
		{Vendor: "E", Category: "Other", Amount: fptr(99)},
	}

	monthly := MonthlyAggregation(records)

	assert.Equal(t, map[string]float64{
		"2024-01": 25,
		"2024-02": 30,
	}, monthly)
}

func TestSlidingWindow(t *testing.T) {
	monthly := map[string]float64{
		"2024-01": 10,
		"2024-02": 20,
		"2024-03": 30,
		"2024-04": 40,
	}

	avg := SlidingWindow(monthly, 3)

	assert.Equal(t, map[string]float64{
		"2024-01": 10,
		"2024-02": 15,
		"2024-03": 20,
		"2024-04": 30,
	}, avg)
}

func TestSlidingWindowSingleMonth(t *testing.T) {
	avg := SlidingWindow(map[string]float64{"2024-06": 12}, 3)
	assert.Equal(t, map[string]float64{"2024-06": 12}, avg)

	assert.Empty(t, SlidingWindow(map[string]float64{}, 3))
}
