package main

import (
	"log"

	"github.com/splitkaro/receipt-analyzer/client"
	"github.com/splitkaro/receipt-analyzer/config"
	"github.com/splitkaro/receipt-analyzer/handler"
	"github.com/splitkaro/receipt-analyzer/service"
	"github.com/splitkaro/receipt-analyzer/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor and QR scanner
	pdfProcessor := service.NewPDFProcessor()
	qrScanner := service.NewQRScanner()

	// The label predictor is optional; without a configured URL the engine
	// runs on its rule-based classifier alone.
	var predictor utils.LabelPredictor
	if cfg.PredictorURL != "" {
		predictor = client.NewPredictorClient(cfg.PredictorURL)
	} else {
		log.Println("No PREDICTOR_URL set, using rule-based classification only")
	}

	// Initialize service layer
	receiptService := service.NewReceiptService(tesseractClient, pdfProcessor, qrScanner, predictor)

	// Initialize handler layer
	receiptHandler := handler.NewReceiptHandler(receiptService)

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
	api := router.Group("/api/v1")
	{
		receipts := api.Group("/receipts")
		{
			receipts.POST("/analyze", receiptHandler.AnalyzeReceipt)
			receipts.POST("/parse", receiptHandler.ParseReceiptText)
		}
	}

	// Start server
	log.Printf("Starting Receipt Analyzer on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
