package utils

import (
	"github.com/splitkaro/receipt-analyzer/dto"
)

// ParseOptions carries the injected collaborators of a parse run. The zero
// value is valid: no predictor, no total hint.
type ParseOptions struct {
	// Predictor is the optional external category model; nil is a first-class
	// state, not an error.
	Predictor LabelPredictor
	// TotalHint is an amount decoded from a payment QR on the receipt, used
	// only when no grand-total line qualifies from the text.
	TotalHint float64
}

// ParseReceipt runs the whole extraction pipeline over normalized OCR text.
// It is a pure function: identical text and identical predictor behavior
// produce identical results.
func ParseReceipt(text string, opts ParseOptions) (*dto.ReceiptAnalysis, error) {
	raw := ExtractItems(text)
	items, splits := ClassifyItems(raw, opts.Predictor)

	itemSum := 0.0
	for _, item := range items {
		itemSum += item.Amount
	}

	figures := ExtractAggregates(text)
	totalAmount := ReconciledTotal(figures, itemSum, opts.TotalHint)

	merchant := ResolveMerchant(text)
	category := resolveCategory(text, opts.Predictor)

	return Reconcile(items, splits, merchant, category, totalAmount, text)
}

// resolveCategory is the overall receipt category. The predictor sees the full
// text when it is available; the rule-based default is Food, which is what the
// bill splitter assumes for restaurant receipts.
func resolveCategory(text string, predictor LabelPredictor) string {
	if predictor != nil {
		if label, err := predictor.PredictLabel(text); err == nil && label != "" {
			return label
		}
	}
	return string(dto.TypeFood)
}
