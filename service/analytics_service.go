package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/billscan/receipt-analyzer/analytics"
	"github.com/billscan/receipt-analyzer/categorizer"
	"github.com/billscan/receipt-analyzer/dto"
	"github.com/billscan/receipt-analyzer/storage"
)

// movingAverageWindow is the trailing month count for spend smoothing.
const movingAverageWindow = 3

// AnalyticsService runs the query, sort and aggregation engines over the
// stored record collection.
type AnalyticsService struct {
	store       storage.DB
	categorizer *categorizer.Categorizer
}

func NewAnalyticsService(store storage.DB, cat *categorizer.Categorizer) *AnalyticsService {
	return &AnalyticsService{
		store:       store,
		categorizer: cat,
	}
}

// ListTransactions returns all stored transactions.
func (s *AnalyticsService) ListTransactions() ([]dto.TransactionRecord, error) {
	return s.store.ListTransactions()
}

// Sorted returns all transactions ordered by field. Records with an absent
// value are grouped at the end for ascending order and at the front for
// descending order.
func (s *AnalyticsService) Sorted(fieldName string, descending bool) ([]dto.TransactionRecord, error) {
	field, ok := analytics.ParseField(fieldName)
	if !ok {
		return nil, fmt.Errorf("unknown sort field: %q", fieldName)
	}

	records, err := s.store.ListTransactions()
	if err != nil {
		return nil, err
	}
	return analytics.SortBy(records, field, descending), nil
}

// KeywordSearch matches the keyword against the given fields of every
// record. An empty field list searches vendor and category.
func (s *AnalyticsService) KeywordSearch(keyword string, fieldNames []string) ([]dto.TransactionRecord, error) {
	fields := make([]analytics.Field, 0, len(fieldNames))
	for _, name := range fieldNames {
		field, ok := analytics.ParseField(name)
		if !ok {
			return nil, fmt.Errorf("unknown search field: %q", name)
		}
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		fields = []analytics.Field{analytics.FieldVendor, analytics.FieldCategory}
	}

	records, err := s.store.ListTransactions()
	if err != nil {
		return nil, err
	}
	return analytics.LinearSearch(records, keyword, fields), nil
}

// ExactSearch returns records whose field equals value, case-insensitively.
func (s *AnalyticsService) ExactSearch(fieldName, value string) ([]dto.TransactionRecord, error) {
	field, ok := analytics.ParseField(fieldName)
	if !ok {
		return nil, fmt.Errorf("unknown search field: %q", fieldName)
	}

	records, err := s.store.ListTransactions()
	if err != nil {
		return nil, err
	}
	return analytics.HashSearch(records, field, value), nil
}

// RangeSearch returns records whose numeric field lies within the inclusive
// bounds; a nil bound is unbounded.
func (s *AnalyticsService) RangeSearch(fieldName string, min, max *float64) ([]dto.TransactionRecord, error) {
	field, ok := analytics.ParseField(fieldName)
	if !ok {
		return nil, fmt.Errorf("unknown search field: %q", fieldName)
	}

	records, err := s.store.ListTransactions()
	if err != nil {
		return nil, err
	}
	return analytics.RangeSearch(records, field, min, max), nil
}

// PatternSearch returns records whose field matches the regular expression.
// A malformed pattern is reported back to the caller.
func (s *AnalyticsService) PatternSearch(fieldName, pattern string) ([]dto.TransactionRecord, error) {
	field, ok := analytics.ParseField(fieldName)
	if !ok {
		return nil, fmt.Errorf("unknown search field: %q", fieldName)
	}

	records, err := s.store.ListTransactions()
	if err != nil {
		return nil, err
	}
	return analytics.PatternSearch(records, field, pattern)
}

// Stats assembles the dashboard summary: amount aggregates, vendor and
// category frequencies, monthly totals and their trailing moving average.
func (s *AnalyticsService) Stats() (*dto.StatsResponse, error) {
	records, err := s.store.ListTransactions()
	if err != nil {
		return nil, err
	}

	agg := analytics.ComputeAggregates(records, analytics.FieldAmount)
	monthly := analytics.MonthlyAggregation(records)

	return &dto.StatsResponse{
		Amounts: dto.AggregatesPayload{
			Sum:    agg.Sum,
			Mean:   agg.Mean,
			Median: agg.Median,
			Mode:   agg.Mode,
		},
		VendorFrequency:   analytics.FrequencyDistribution(records, analytics.FieldVendor),
		CategoryFrequency: analytics.FrequencyDistribution(records, analytics.FieldCategory),
		MonthlyTotals:     monthly,
		MonthlyMovingAvg:  analytics.SlidingWindow(monthly, movingAverageWindow),
	}, nil
}

// Reclassify re-runs the category classifier over every stored record and
// persists the ones whose category changed. Classification is a pure
// function of the vendor, so re-running it is idempotent.
func (s *AnalyticsService) Reclassify() (updated, total int, err error) {
	records, err := s.store.ListTransactions()
	if err != nil {
		return 0, 0, err
	}

	for i := range records {
		category := s.categorizer.Classify(records[i].Vendor)
		if category == records[i].Category {
			continue
		}
		records[i].Category = category
		if err := s.store.SaveTransaction(&records[i]); err != nil {
			return updated, len(records), fmt.Errorf("saving reclassified transaction %s: %w", records[i].ID, err)
		}
		updated++
	}

	logrus.WithFields(logrus.Fields{"updated": updated, "total": len(records)}).Info("reclassification complete")
	return updated, len(records), nil
}
