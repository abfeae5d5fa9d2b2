package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/splitkaro/receipt-analyzer/dto"
)

const (
	// confirmDiffThreshold: beyond this gap between summed items and the
	// reconciled total the user has to confirm the result.
	confirmDiffThreshold = 10.0
	// deficitTolerance: items may exceed the reconciled total by this much
	// before the result is considered internally contradictory. Independent of
	// confirmDiffThreshold; the two gates fire on their own.
	deficitTolerance = 2.0

	confidenceHigh = 0.85
	confidenceLow  = 0.60
)

// ValidationError aborts the whole result: the heuristics produced internally
// contradictory data that must not reach the user as if it were trustworthy.
type ValidationError struct {
	Reason  string
	RawText string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Reconcile cross-checks the classified items against the reconciled total and
// assembles the final analysis. Validation failures return a *ValidationError
// instead of a partial result.
func Reconcile(items []dto.LineItem, splits map[dto.ItemType]float64,
	merchant, category string, totalAmount float64, text string) (*dto.ReceiptAnalysis, error) {

	if err := validate(items, totalAmount, text); err != nil {
		return nil, err
	}

	itemSum := 0.0
	for _, item := range items {
		itemSum += item.Amount
	}

	_, hasAlcohol := splits[dto.TypeAlcohol]
	requiresConfirmation := math.Abs(totalAmount-itemSum) > confirmDiffThreshold ||
		len(items) == 0 ||
		merchant == dto.UnknownMerchant ||
		hasAlcohol

	confidence := confidenceHigh
	if requiresConfirmation {
		confidence = confidenceLow
	}

	return &dto.ReceiptAnalysis{
		Merchant:             merchant,
		Category:             category,
		Items:                items,
		TotalAmount:          totalAmount,
		Confidence:           confidence,
		RequiresConfirmation: requiresConfirmation,
		SuggestedSplits:      splits,
		Text:                 text,
	}, nil
}

// validate re-checks, post hoc, the invariants the cascade is supposed to
// guarantee: no charge line survived into the items, every quantity is at
// least one, and the items do not add up to more than the receipt charged.
// A "discount" anywhere in the text legitimately explains a deficit.
func validate(items []dto.LineItem, totalAmount float64, text string) error {
	itemSum := 0.0
	for _, item := range items {
		lower := strings.ToLower(item.Name)
		if containsAny(lower, validationKeywords) {
			return &ValidationError{
				Reason:  fmt.Sprintf("item %q looks like a tax or discount line", item.Name),
				RawText: text,
			}
		}
		if item.Quantity < 1 {
			return &ValidationError{
				Reason:  fmt.Sprintf("item %q has non-positive quantity %d", item.Name, item.Quantity),
				RawText: text,
			}
		}
		itemSum += item.Amount
	}

	if totalAmount < itemSum-deficitTolerance &&
		!strings.Contains(strings.ToLower(text), "discount") {
		return &ValidationError{
			Reason: fmt.Sprintf("items add up to %.2f but the receipt total is %.2f",
				itemSum, totalAmount),
			RawText: text,
		}
	}
	return nil
}
