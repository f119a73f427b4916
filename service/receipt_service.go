package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/billscan/receipt-analyzer/categorizer"
	"github.com/billscan/receipt-analyzer/dto"
	"github.com/billscan/receipt-analyzer/storage"
	"github.com/billscan/receipt-analyzer/utils"
)

// OCRClient extracts text from receipt images.
type OCRClient interface {
	ExtractTextFromFile(fileHeader *multipart.FileHeader) (string, error)
	ExtractTextFromBytes(data []byte, ext string) (string, error)
}

// ReceiptService turns an uploaded document into a persisted, structured
// transaction record.
type ReceiptService struct {
	ocrClient    OCRClient
	pdfProcessor PDFProcessor
	categorizer  *categorizer.Categorizer
	store        storage.DB
}

func NewReceiptService(
	ocrClient OCRClient,
	pdfProcessor PDFProcessor,
	cat *categorizer.Categorizer,
	store storage.DB,
) *ReceiptService {
	return &ReceiptService{
		ocrClient:    ocrClient,
		pdfProcessor: pdfProcessor,
		categorizer:  cat,
		store:        store,
	}
}

// ParseText extracts a structured record from raw receipt text and
// classifies its category from the vendor. It never fails: every field
// degrades independently to its default or absent value.
func (s *ReceiptService) ParseText(text string) dto.TransactionRecord {
	record := utils.ParseReceiptText(text)
	record.Category = s.categorizer.Classify(record.Vendor)
	return record
}

// ProcessUpload acquires text from the uploaded document, parses it and
// persists both the receipt metadata and the transaction record.
func (s *ReceiptService) ProcessUpload(fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	text, err := s.acquireText(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", fileHeader.Filename, err)
	}

	record := s.ParseText(text)
	record.ID = uuid.NewString()

	meta := dto.ReceiptMeta{
		ID:         uuid.NewString(),
		Filename:   fileHeader.Filename,
		UploadDate: time.Now().UTC(),
	}
	record.ReceiptID = meta.ID

	if err := s.store.SaveReceipt(&meta); err != nil {
		return nil, fmt.Errorf("saving receipt: %w", err)
	}
	if err := s.store.SaveTransaction(&record); err != nil {
		return nil, fmt.Errorf("saving transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"filename": fileHeader.Filename,
		"vendor":   record.Vendor,
		"category": record.Category,
	}).Info("receipt processed")

	return &dto.UploadResponse{
		Receipt:     meta,
		Transaction: record,
		Message:     "File uploaded successfully.",
	}, nil
}

// acquireText picks the extraction path by file extension: plain text is
// decoded directly, images go through OCR, PDFs use the text layer with an
// OCR fallback over extracted page images for scanned documents.
func (s *ReceiptService) acquireText(fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))

	switch ext {
	case ".txt":
		return readAll(fileHeader)
	case ".pdf":
		data, err := readAll(fileHeader)
		if err != nil {
			return "", err
		}
		return s.pdfText([]byte(data))
	default:
		return s.ocrClient.ExtractTextFromFile(fileHeader)
	}
}

func (s *ReceiptService) pdfText(data []byte) (string, error) {
	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	// No text layer: OCR the embedded page images instead.
	images, err := s.pdfProcessor.ExtractPageImages(data)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for _, img := range images {
		pageText, err := s.ocrClient.ExtractTextFromBytes(img.Data, img.Ext)
		if err != nil {
			logrus.WithError(err).Warn("OCR failed on PDF page image")
			continue
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func readAll(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}
