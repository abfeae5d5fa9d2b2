package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/splitkaro/receipt-analyzer/dto"
	"github.com/splitkaro/receipt-analyzer/service"
	"github.com/splitkaro/receipt-analyzer/utils"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// AnalyzeReceipt handles POST /receipts/analyze: a multipart upload of one
// receipt image or PDF.
func (h *ReceiptHandler) AnalyzeReceipt(c *gin.Context) {
	log.Println("Received receipt analysis request")

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No receipt image uploaded", err)
		return
	}

	result, err := h.receiptService.AnalyzeUpload(fileHeader)
	if err != nil {
		h.sendAnalysisError(c, err)
		return
	}

	log.Printf("Receipt analyzed: merchant=%q items=%d total=%.2f confidence=%.2f",
		result.Merchant, len(result.Items), result.TotalAmount, result.Confidence)
	c.JSON(http.StatusOK, result)
}

// ParseReceiptText handles POST /receipts/parse: raw OCR text in, analysis
// out, no image pipeline involved.
func (h *ReceiptHandler) ParseReceiptText(c *gin.Context) {
	var req dto.ParseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Receipt text is required", err)
		return
	}

	result, err := h.receiptService.ParseText(req.Text)
	if err != nil {
		h.sendAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// sendAnalysisError distinguishes a hard validation failure, which carries its
// own payload, from an extraction failure.
func (h *ReceiptHandler) sendAnalysisError(c *gin.Context, err error) {
	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		log.Printf("Receipt failed validation: %s", validationErr.Reason)
		c.JSON(http.StatusUnprocessableEntity, dto.AnalysisError{
			Error:   "RECEIPT_VALIDATION_FAILED",
			Reason:  validationErr.Reason,
			RawText: validationErr.RawText,
		})
		return
	}

	h.sendError(c, http.StatusInternalServerError, "Failed to analyze receipt", err)
}

// sendError sends a structured error response
func (h *ReceiptHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
