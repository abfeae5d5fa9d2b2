package utils

import (
	"regexp"
	"strings"

	"github.com/splitkaro/receipt-analyzer/dto"
)

const (
	// maxTaxLineAmount rejects a misread figure posing as one tax line.
	maxTaxLineAmount = 5000
	// maxGrandTotal rejects a misread figure posing as the grand total.
	maxGrandTotal = 500000
)

// alnumRuns finds candidate identifier runs; only runs mixing letters and
// digits (GSTIN, invoice ids) disqualify a line.
var alnumRuns = regexp.MustCompile(`[A-Za-z0-9]{10,}`)

// ExtractAggregates scans the full text for subtotal, tax total and grand
// total, independently of the item extraction pass. The subtotal is the first
// labelled line top-down; the tax total sums every qualifying tax line; the
// grand total is the first qualifying labelled line bottom-up.
func ExtractAggregates(text string) dto.AggregateFigures {
	lines := strings.Split(text, "\n")
	fig := dto.AggregateFigures{}

	for _, line := range lines {
		lower := strings.ToLower(line)

		if fig.Subtotal == 0 && containsAny(lower, subtotalLabels) {
			if v, ok := trailingNumber(line); ok {
				fig.Subtotal = v
			}
		}

		if containsAny(lower, taxKeywords) &&
			!strings.Contains(lower, "gstin") &&
			!hasIdentifierRun(line) &&
			!containsAny(lower, taxLineExclusions) {
			if v, ok := trailingNumber(line); ok && v < maxTaxLineAmount {
				fig.TaxTotal += v
			}
		}
	}

	for i := len(lines) - 1; i >= 0; i-- {
		lower := strings.ToLower(lines[i])
		if !containsAny(lower, grandTotalLabels) {
			continue
		}
		if containsAny(lower, grandTotalExclusions) {
			continue
		}
		if strings.Contains(lower, "gstin") || hasIdentifierRun(lines[i]) {
			continue
		}
		v, ok := trailingNumber(lines[i])
		if !ok || v > maxGrandTotal {
			continue
		}
		fig.GrandTotal = v
		fig.GrandTotalFound = true
		break
	}

	return fig
}

// ReconciledTotal resolves the amount the receipt actually charged. A printed
// grand total wins; totalHint carries an amount decoded from a payment QR and
// is only consulted when the text had none; after that subtotal+tax, then the
// summed items.
func ReconciledTotal(fig dto.AggregateFigures, itemSum, totalHint float64) float64 {
	if fig.GrandTotalFound {
		return fig.GrandTotal
	}
	if totalHint > 0 {
		return totalHint
	}
	if fig.Subtotal > 0 {
		return fig.Subtotal + fig.TaxTotal
	}
	return itemSum + fig.TaxTotal
}

// trailingNumber extracts the last numeric candidate on a line.
func trailingNumber(line string) (float64, bool) {
	nums, _ := SplitTokens(line)
	if len(nums) == 0 {
		return 0, false
	}
	return nums[len(nums)-1].Value, true
}

// hasIdentifierRun reports a long alphanumeric run mixing letters and digits,
// the shape of GSTINs and invoice numbers rather than amounts.
func hasIdentifierRun(line string) bool {
	for _, run := range alnumRuns.FindAllString(line, -1) {
		if strings.ContainsAny(run, "0123456789") &&
			strings.IndexFunc(run, func(r rune) bool {
				return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			}) >= 0 {
			return true
		}
	}
	return false
}
