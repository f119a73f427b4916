package dto

import "time"

// LineItem is a single priced entry parsed from one line of receipt text.
type LineItem struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

// TransactionRecord is the structured result of parsing one receipt or bill.
// Vendor and Category are always populated (falling back to "Unknown" and
// "Other"); every pointer field is genuinely optional and serializes as null
// when absent. Downstream callers must treat a nil field as "unknown", not
// as zero.
type TransactionRecord struct {
	ID        string     `json:"id,omitempty"`
	ReceiptID string     `json:"receipt_id,omitempty"`
	Vendor    string     `json:"vendor"`
	Date      *time.Time `json:"date"`
	Amount    *float64   `json:"amount"`
	Category  string     `json:"category"`
	Currency  *string    `json:"currency"`
	LineItems []LineItem `json:"line_items,omitempty"`
}

// ReceiptMeta describes an uploaded source document.
type ReceiptMeta struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	UploadDate time.Time `json:"upload_date"`
}

// DateValue returns the record's date and whether it is present.
func (t *TransactionRecord) DateValue() (time.Time, bool) {
	if t.Date == nil {
		return time.Time{}, false
	}
	return *t.Date, true
}

// AmountValue returns the record's amount and whether it is present.
func (t *TransactionRecord) AmountValue() (float64, bool) {
	if t.Amount == nil {
		return 0, false
	}
	return *t.Amount, true
}

// CurrencyValue returns the record's currency and whether it is present.
func (t *TransactionRecord) CurrencyValue() (string, bool) {
	if t.Currency == nil {
		return "", false
	}
	return *t.Currency, true
}
