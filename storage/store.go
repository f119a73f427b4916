// Package storage persists uploaded receipts and their parsed transactions.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/billscan/receipt-analyzer/dto"
)

const (
	receiptBucket     = "receipts"
	transactionBucket = "transactions"
)

// DB defines the interface for persistence operations.
type DB interface {
	// SaveReceipt stores the metadata of an uploaded document
	SaveReceipt(meta *dto.ReceiptMeta) error

	// ListReceipts returns all stored receipt metadata
	ListReceipts() ([]dto.ReceiptMeta, error)

	// SaveTransaction stores or replaces a parsed transaction by ID
	SaveTransaction(record *dto.TransactionRecord) error

	// ListTransactions returns all stored transactions
	ListTransactions() ([]dto.TransactionRecord, error)

	// Close closes the database
	Close() error
}

// BoltStore implements DB on top of bbolt.
type BoltStore struct {
	db *bbolt.DB
}

// Open opens (or creates) the bolt database at path.
func Open(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(receiptBucket)); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(transactionBucket)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// SaveReceipt stores the metadata of an uploaded document.
func (s *BoltStore) SaveReceipt(meta *dto.ReceiptMeta) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("marshaling receipt: %w", err)
		}
		return tx.Bucket([]byte(receiptBucket)).Put([]byte(meta.ID), data)
	})
}

// ListReceipts returns all stored receipt metadata.
func (s *BoltStore) ListReceipts() ([]dto.ReceiptMeta, error) {
	receipts := make([]dto.ReceiptMeta, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(receiptBucket)).ForEach(func(k, v []byte) error {
			var meta dto.ReceiptMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return fmt.Errorf("unmarshaling receipt: %w", err)
			}
			receipts = append(receipts, meta)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// SaveTransaction stores or replaces a parsed transaction by ID.
func (s *BoltStore) SaveTransaction(record *dto.TransactionRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshaling transaction: %w", err)
		}
		return tx.Bucket([]byte(transactionBucket)).Put([]byte(record.ID), data)
	})
}

// ListTransactions returns all stored transactions.
func (s *BoltStore) ListTransactions() ([]dto.TransactionRecord, error) {
	records := make([]dto.TransactionRecord, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(transactionBucket)).ForEach(func(k, v []byte) error {
			var record dto.TransactionRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("unmarshaling transaction: %w", err)
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
