package utils

import "math"

// Triplet is the (quantity, unit price, line total) relationship a receipt line
// is expected to encode.
type Triplet struct {
	Quantity  int
	UnitPrice float64
	Total     float64
}

const (
	// duplicatedColumnTolerance bounds the single-price rule: OCR often prints the
	// same figure in both the rate and amount columns.
	duplicatedColumnTolerance = 2.0
	// productTolerance bounds how far quantity*rate may drift from the line total.
	productTolerance = 5.0
	// minLineTotal filters out stray small numerics posing as a line total.
	minLineTotal = 5.0
	// maxQuantity is the largest value still believable as an item count.
	maxQuantity = 50
)

// tripletRule tries to resolve the prior candidates against the assumed total.
type tripletRule func(priors []NumericCandidate, total float64) (Triplet, bool)

// tripletRules in precedence order; the first rule that fires wins.
var tripletRules = []tripletRule{
	resolveSinglePrice,
	resolveQuantityPair,
	resolveImpliedUnitPrice,
}

// ResolveTriplet recovers a (quantity, unit price, total) triple from the
// numeric candidates of one line. The last candidate is assumed to be the line
// total. Returns false when no rule fires; the caller falls back to the
// standalone-price cascade.
func ResolveTriplet(nums []NumericCandidate) (Triplet, bool) {
	if len(nums) == 0 {
		return Triplet{}, false
	}

	total := nums[len(nums)-1].Value
	priors := nums[:len(nums)-1]

	for _, rule := range tripletRules {
		if t, ok := rule(priors, total); ok {
			return t, true
		}
	}
	return Triplet{}, false
}

// resolveSinglePrice handles a lone prior figure that nearly equals the total:
// the rate column duplicated into the amount column, quantity one.
func resolveSinglePrice(priors []NumericCandidate, total float64) (Triplet, bool) {
	if len(priors) != 1 {
		return Triplet{}, false
	}
	if math.Abs(priors[0].Value-total) < duplicatedColumnTolerance && total > minLineTotal {
		return Triplet{Quantity: 1, UnitPrice: priors[0].Value, Total: total}, true
	}
	return Triplet{}, false
}

// resolveQuantityPair looks for an unordered pair whose product matches the
// total. The smaller value is taken as the quantity; the first matching pair in
// scan order wins, there is no search for a globally best pair.
func resolveQuantityPair(priors []NumericCandidate, total float64) (Triplet, bool) {
	if total <= minLineTotal {
		return Triplet{}, false
	}
	for i := 0; i < len(priors); i++ {
		for j := i + 1; j < len(priors); j++ {
			n1, n2 := priors[i].Value, priors[j].Value
			if math.Abs(n1*n2-total) > productTolerance {
				continue
			}
			smaller, larger := n1, n2
			if n2 < n1 {
				smaller, larger = n2, n1
			}
			// Smaller-value-wins is the tie-break even when the smaller figure is
			// not an integral count below maxQuantity; deterministic beats clever.
			qty := int(math.Round(smaller))
			if qty < 1 {
				continue
			}
			return Triplet{Quantity: qty, UnitPrice: larger, Total: total}, true
		}
	}
	return Triplet{}, false
}

// resolveImpliedUnitPrice handles "qty total" lines where the rate column was
// never printed: a small integral count that divides the total evenly.
func resolveImpliedUnitPrice(priors []NumericCandidate, total float64) (Triplet, bool) {
	for _, p := range priors {
		v := p.Value
		if v <= 0 || v >= maxQuantity || !isIntegral(v) {
			continue
		}
		unit := total / v
		if isIntegral(unit) && unit > minLineTotal {
			return Triplet{Quantity: int(v), UnitPrice: unit, Total: total}, true
		}
	}
	return Triplet{}, false
}

func isIntegral(v float64) bool {
	return v == math.Trunc(v)
}
