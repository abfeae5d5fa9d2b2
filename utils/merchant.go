package utils

import (
	"regexp"
	"strings"

	"github.com/splitkaro/receipt-analyzer/dto"
)

// merchantNoise drops everything except word characters, whitespace and the
// ampersand restaurants are fond of.
var merchantNoise = regexp.MustCompile(`[^\w\s&]`)

// maxMerchantLines is how deep into the preamble the resolver looks.
const maxMerchantLines = 5

// ResolveMerchant names the merchant from the first few lines of the receipt.
// Invoice boilerplate and registration lines are skipped; when nothing
// survives the sentinel dto.UnknownMerchant is returned.
func ResolveMerchant(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > maxMerchantLines {
			break
		}

		lower := strings.ToLower(line)
		if containsAny(lower, merchantIgnorePhrases) {
			continue
		}
		// The column-header row of the item table is never the shop name.
		if headerSignalCount(lower) >= 2 {
			continue
		}
		// Neither is a line carrying a literal amount. Candidates produced only
		// by confusable substitution are words and do not count.
		if hasLiteralNumber(line) {
			continue
		}
		candidate := strings.TrimSpace(merchantNoise.ReplaceAllString(line, ""))
		if len(candidate) < 3 {
			continue
		}
		return candidate
	}
	return dto.UnknownMerchant
}

func hasLiteralNumber(line string) bool {
	nums, _ := SplitTokens(line)
	for _, n := range nums {
		if !n.Substituted {
			return true
		}
	}
	return false
}
