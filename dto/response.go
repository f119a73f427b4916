package dto

import "errors"

// Custom errors
var (
	ErrNoFileProvided      = errors.New("no file provided")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file size exceeds 10 MB limit")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// UploadResponse echoes the persisted receipt and its parsed transaction.
type UploadResponse struct {
	Receipt     ReceiptMeta       `json:"receipt"`
	Transaction TransactionRecord `json:"transaction"`
	Message     string            `json:"message"`
}

// TransactionsResponse wraps a record collection for transport.
type TransactionsResponse struct {
	Transactions []TransactionRecord `json:"transactions"`
	Count        int                 `json:"count"`
}

// StatsResponse carries the analytics summary consumed by the dashboard.
type StatsResponse struct {
	Amounts           AggregatesPayload  `json:"amounts"`
	VendorFrequency   map[string]int     `json:"vendor_frequency"`
	CategoryFrequency map[string]int     `json:"category_frequency"`
	MonthlyTotals     map[string]float64 `json:"monthly_totals"`
	MonthlyMovingAvg  map[string]float64 `json:"monthly_moving_avg"`
}

// AggregatesPayload is the JSON shape of summary statistics. Mode is null
// when the underlying value set is empty or multimodal.
type AggregatesPayload struct {
	Sum    float64  `json:"sum"`
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	Mode   *float64 `json:"mode"`
}

// ReclassifyResponse reports a bulk re-classification run.
type ReclassifyResponse struct {
	Updated int    `json:"updated"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}
