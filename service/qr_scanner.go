package service

import (
	"encoding/json"
	"image"
	"net/url"
	"strconv"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// QRScanner reads the payment QR printed on many Indian receipts. UPI QR
// payloads carry the bill amount in the "am" parameter; GST e-invoice QR
// payloads carry it as TotalInvVal. The decoded amount is only a hint for the
// reconciler, never a substitute for the text heuristics.
type QRScanner struct{}

func NewQRScanner() *QRScanner {
	return &QRScanner{}
}

// AmountFromImage tries to find and decode a QR code in the receipt image.
// Most receipts have none; failure is the normal case and is not an error.
func (q *QRScanner) AmountFromImage(img image.Image) (float64, bool) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return 0, false
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return 0, false
	}

	return AmountFromQRPayload(result.GetText())
}

// AmountFromQRPayload extracts the invoice amount from a decoded QR payload.
func AmountFromQRPayload(payload string) (float64, bool) {
	payload = strings.TrimSpace(payload)

	// UPI payment URI: upi://pay?pa=...&am=450.00&cu=INR
	if strings.HasPrefix(strings.ToLower(payload), "upi://") {
		u, err := url.Parse(payload)
		if err != nil {
			return 0, false
		}
		am := u.Query().Get("am")
		if am == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(am, 64)
		if err != nil || v <= 0 {
			return 0, false
		}
		return v, true
	}

	// GST e-invoice QR: JSON with the invoice value among the fields.
	var einvoice struct {
		TotalInvVal float64 `json:"TotalInvVal"`
	}
	if err := json.Unmarshal([]byte(payload), &einvoice); err == nil && einvoice.TotalInvVal > 0 {
		return einvoice.TotalInvVal, true
	}

	return 0, false
}
