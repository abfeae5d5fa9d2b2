package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// NumericCandidate is a value recovered from one token of a receipt line.
// Substituted is set when an OCR confusable (o->0, l->1) contributed a digit.
type NumericCandidate struct {
	Value       float64
	Substituted bool
}

// narrowConfusables reverses the two digit misreads Tesseract produces most often
// inside price columns. The wider map lives in recoverTrailingAmount.
var narrowConfusables = strings.NewReplacer("o", "0", "l", "1")

var wideConfusables = strings.NewReplacer("o", "0", "l", "1", "s", "5", "z", "2")

var nonNumericChars = regexp.MustCompile(`[^\d.]`)

var digitRuns = regexp.MustCompile(`[0-9]+`)

// SplitTokens splits a line into numeric candidates and residual word tokens,
// both in original left-to-right order. Word tokens keep their original text so
// the item name can be rebuilt from them. A token whose numeric residue is a
// bare decimal point is dropped entirely (currency markers like "Rs." leave
// nothing usable behind).
func SplitTokens(line string) ([]NumericCandidate, []string) {
	var nums []NumericCandidate
	var words []string

	for _, token := range strings.Fields(line) {
		substituted := narrowConfusables.Replace(token)
		residue := nonNumericChars.ReplaceAllString(substituted, "")

		if residue == "" {
			words = append(words, token)
			continue
		}
		if residue == "." {
			continue
		}

		value, err := strconv.ParseFloat(residue, 64)
		if err != nil || value > maxNumericValue {
			words = append(words, token)
			continue
		}

		nums = append(nums, NumericCandidate{
			Value:       value,
			Substituted: substituted != token,
		})
	}

	return nums, words
}

// maxNumericValue caps parsed values; anything above it is OCR garbage, not a price.
const maxNumericValue = 100000

// recoverTrailingAmount applies the wide confusable map to a raw token and
// returns the longest embedded digit run as an amount. Used by the last-resort
// fallback on lines the regular recognizer could not make sense of. Tokens
// without a single real digit are not worth guessing at.
func recoverTrailingAmount(token string) float64 {
	if !strings.ContainsAny(token, "0123456789") {
		return 0
	}

	mapped := wideConfusables.Replace(strings.ToLower(token))

	var longest string
	for _, run := range digitRuns.FindAllString(mapped, -1) {
		if len(run) > len(longest) {
			longest = run
		}
	}
	if longest == "" {
		return 0
	}

	value, err := strconv.ParseFloat(longest, 64)
	if err != nil {
		return 0
	}
	return value
}
