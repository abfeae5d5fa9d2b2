package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"strings"

	"github.com/splitkaro/receipt-analyzer/client"
	"github.com/splitkaro/receipt-analyzer/dto"
	"github.com/splitkaro/receipt-analyzer/utils"
)

// minEmbeddedTextLen: below this a PDF is treated as a scan and goes through
// image extraction plus OCR instead.
const minEmbeddedTextLen = 20

// ReceiptService drives one receipt through OCR and the extraction engine.
type ReceiptService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
	qrScanner       *QRScanner
	predictor       utils.LabelPredictor
}

func NewReceiptService(
	tesseractClient *client.TesseractClient,
	pdfProcessor PDFProcessor,
	qrScanner *QRScanner,
	predictor utils.LabelPredictor,
) *ReceiptService {
	return &ReceiptService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
		qrScanner:       qrScanner,
		predictor:       predictor,
	}
}

// AnalyzeUpload extracts text from an uploaded receipt (image or PDF) and runs
// the parsing pipeline over it. A QR code on the receipt, when one decodes,
// supplies a grand-total hint for the reconciler.
func (s *ReceiptService) AnalyzeUpload(fileHeader *multipart.FileHeader) (*dto.ReceiptAnalysis, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var text string
	var totalHint float64

	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		text, totalHint, err = s.extractFromPDF(fileBytes)
	} else {
		text, totalHint, err = s.extractFromImage(fileHeader, fileBytes)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text could be extracted from the receipt")
	}

	return utils.ParseReceipt(normalizeOCRText(text), utils.ParseOptions{
		Predictor: s.predictor,
		TotalHint: totalHint,
	})
}

// ParseText runs the engine over caller-supplied OCR text, skipping the image
// pipeline entirely.
func (s *ReceiptService) ParseText(text string) (*dto.ReceiptAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no receipt text provided")
	}

	return utils.ParseReceipt(normalizeOCRText(text), utils.ParseOptions{
		Predictor: s.predictor,
	})
}

func (s *ReceiptService) extractFromImage(fileHeader *multipart.FileHeader, fileBytes []byte) (string, float64, error) {
	var totalHint float64
	if img, _, err := image.Decode(bytes.NewReader(fileBytes)); err == nil {
		if amount, ok := s.qrScanner.AmountFromImage(img); ok {
			log.Printf("Payment QR decoded, amount hint: %.2f", amount)
			totalHint = amount
		}
	}

	text, err := s.tesseractClient.ExtractTextFromFile(fileHeader)
	if err != nil {
		return "", 0, fmt.Errorf("image OCR failed: %w", err)
	}
	return text, totalHint, nil
}

func (s *ReceiptService) extractFromPDF(fileBytes []byte) (string, float64, error) {
	text, err := s.pdfProcessor.ExtractText(fileBytes)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}
	if len(strings.TrimSpace(text)) >= minEmbeddedTextLen {
		return text, 0, nil
	}

	// Scanned PDF: OCR the embedded page images instead.
	log.Println("PDF has little embedded text, falling back to image-based OCR")

	images, err := s.pdfProcessor.ExtractImages(fileBytes)
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract images from PDF: %w", err)
	}
	if len(images) == 0 {
		return "", 0, fmt.Errorf("no pages could be extracted from the PDF")
	}

	var totalHint float64
	var combined strings.Builder
	for idx, img := range images {
		if totalHint == 0 {
			if amount, ok := s.qrScanner.AmountFromImage(img); ok {
				totalHint = amount
			}
		}

		tempImg, err := saveImageToTempFile(img)
		if err != nil {
			log.Printf("Failed to save page %d for OCR: %v", idx+1, err)
			continue
		}

		pageText, err := s.tesseractClient.ExtractTextFromPath(tempImg)
		os.Remove(tempImg)
		if err != nil {
			log.Printf("OCR failed for page %d: %v", idx+1, err)
			continue
		}

		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	return combined.String(), totalHint, nil
}

// normalizeOCRText cleans up the artifacts Tesseract leaves in receipt scans:
// pipes misread from the digit 1, the rupee sign, empty lines.
func normalizeOCRText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.ReplaceAll(line, "|", "1")
		line = strings.ReplaceAll(line, "₹", "Rs")
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	return strings.Join(lines, "\n")
}

// saveImageToTempFile writes a page image to disk for the OCR client.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "receipt-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}
