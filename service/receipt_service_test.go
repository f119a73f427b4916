package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/billscan/receipt-analyzer/categorizer"
	"github.com/billscan/receipt-analyzer/dto"
)

// fakeStore is an in-memory storage.DB that preserves insertion order.
type fakeStore struct {
	receipts     []dto.ReceiptMeta
	transactions []dto.TransactionRecord
}

func (f *fakeStore) SaveReceipt(meta *dto.ReceiptMeta) error {
	f.receipts = append(f.receipts, *meta)
	return nil
}

func (f *fakeStore) ListReceipts() ([]dto.ReceiptMeta, error) {
	return f.receipts, nil
}

func (f *fakeStore) SaveTransaction(record *dto.TransactionRecord) error {
	for i := range f.transactions {
		if f.transactions[i].ID == record.ID {
			f.transactions[i] = *record
			return nil
		}
	}
	f.transactions = append(f.transactions, *record)
	return nil
}

func (f *fakeStore) ListTransactions() ([]dto.TransactionRecord, error) {
	out := make([]dto.TransactionRecord, len(f.transactions))
	copy(out, f.transactions)
	return out, nil
}

func (f *fakeStore) Close() error { return nil }

func newTestReceiptService() *ReceiptService {
	return NewReceiptService(nil, nil, categorizer.New(categorizer.DefaultRules()), &fakeStore{})
}

func TestParseTextEndToEnd(t *testing.T) {
	service := newTestReceiptService()

	record := service.ParseText("ACME STORE\nTotal: 1,050.00\n01/02/2024\nUSD")

	assert.Equal(t, "ACME STORE", record.Vendor)
	assert.Equal(t, "Other", record.Category)
	if assert.NotNil(t, record.Amount) {
		assert.Equal(t, 1050.00, *record.Amount)
	}
	if assert.NotNil(t, record.Date) {
		assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), *record.Date)
	}
	if assert.NotNil(t, record.Currency) {
		assert.Equal(t, "USD", *record.Currency)
	}
}

func TestParseTextClassifiesVendor(t *testing.T) {
	service := newTestReceiptService()

	record := service.ParseText("WALMART SUPERCENTER\nMilk 3.50\nBread 2.00\nTotal: 5.50\n15/03/2024")

	assert.Equal(t, "WALMART SUPERCENTER", record.Vendor)
	assert.Equal(t, "Groceries", record.Category)
	if assert.Len(t, record.LineItems, 2) {
		assert.Equal(t, "Milk", record.LineItems[0].Item)
		assert.Equal(t, "Bread", record.LineItems[1].Item)
	}
}

func TestParseTextDegradesGracefully(t *testing.T) {
	service := newTestReceiptService()

	record := service.ParseText("completely unstructured text")

	assert.Equal(t, "Unknown", record.Vendor)
	assert.Equal(t, "Other", record.Category)
	assert.Nil(t, record.Date)
	assert.Nil(t, record.Amount)
	assert.Nil(t, record.Currency)
	assert.Empty(t, record.LineItems)
}
