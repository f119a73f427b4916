package main

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/billscan/receipt-analyzer/categorizer"
	"github.com/billscan/receipt-analyzer/client"
	"github.com/billscan/receipt-analyzer/config"
	"github.com/billscan/receipt-analyzer/handler"
	"github.com/billscan/receipt-analyzer/service"
	"github.com/billscan/receipt-analyzer/storage"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		logrus.WithError(err).Fatal("failed to create data directory")
	}

	// Open persistence
	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer store.Close()

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor and category rules
	pdfProcessor := service.NewPDFProcessor()
	cat := categorizer.Load(cfg.CategoryRulePath)

	// Initialize service layer
	receiptService := service.NewReceiptService(tesseractClient, pdfProcessor, cat, store)
	analyticsService := service.NewAnalyticsService(store, cat)

	// Initialize handler layer
	receiptHandler := handler.NewReceiptHandler(receiptService)
	transactionHandler := handler.NewTransactionHandler(analyticsService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Receipt Analyzer",
		})
	})

	// API routes
	router.POST("/upload/", receiptHandler.Upload)
	transactions := router.Group("/transactions")
	{
		transactions.GET("/", transactionHandler.List)
		transactions.GET("/sorted/", transactionHandler.Sorted)
		transactions.GET("/search/", transactionHandler.Search)
		transactions.GET("/stats/", transactionHandler.Stats)
		transactions.POST("/reclassify", transactionHandler.Reclassify)
	}

	// Start server
	logrus.WithField("port", cfg.ServerPort).Info("starting receipt analyzer service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
