package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/splitkaro/receipt-analyzer/dto"
)

const (
	// minStandalonePrice / maxStandalonePrice bound a believable single price on
	// a line the triplet resolver gave up on.
	minStandalonePrice = 5.0
	maxStandalonePrice = 50000
	// minItemNameLen is exclusive; shorter cleaned names are OCR shrapnel.
	minItemNameLen = 2
	// maxCarriedNameLen caps the short name-only lines ("Roti", "Naan") that get
	// attached to a price remembered from an earlier nameless line.
	maxCarriedNameLen = 12
)

var (
	leadingNameJunk  = regexp.MustCompile(`^[^a-zA-Z0-9(]+`)
	trailingNameJunk = regexp.MustCompile(`[^a-zA-Z0-9)]+$`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	anyLetter        = regexp.MustCompile(`[a-zA-Z]`)
)

// ExtractItems walks the receipt text in document order and emits the raw line
// items. Each candidate line goes through the triplet resolver first, then a
// fallback cascade: last numeric as a standalone price (only inside the item
// table), a wide-confusable rescue of the last raw token, and finally the
// carry-over of a remembered price onto a short name-only line.
func ExtractItems(text string) []dto.LineItem {
	var items []dto.LineItem

	tableMode := false
	lastSeenPrice := 0.0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch ClassifyLine(line, tableMode) {
		case LineNoise:
			continue
		case LineHeader:
			tableMode = true
			continue
		}

		nums, words := SplitTokens(line)
		name := CleanItemName(strings.Join(words, " "))

		if len(nums) > 0 {
			if t, ok := ResolveTriplet(nums); ok {
				if len(name) > minItemNameLen {
					items = append(items, dto.LineItem{Name: name, Amount: t.Total, Quantity: t.Quantity})
					tableMode = true
					continue
				}
				// Resolved amounts without a name are remembered for a following
				// name-only line.
				lastSeenPrice = t.Total
			}

			// Fallback A: inside the table, trust the last numeric as the price.
			if tableMode {
				price := nums[len(nums)-1].Value
				if price > minStandalonePrice && price < maxStandalonePrice {
					if len(name) > minItemNameLen {
						items = append(items, dto.LineItem{Name: name, Amount: price, Quantity: 1})
						continue
					}
					lastSeenPrice = price
				}
			}
		}

		// Fallback B: rescue an amount out of the last raw token with the wider
		// confusable map, regardless of table mode.
		raw := strings.Fields(line)
		if len(raw) >= 2 {
			amount := recoverTrailingAmount(raw[len(raw)-1])
			if amount > 0 && amount < maxStandalonePrice {
				rescued := CleanItemName(strings.Join(raw[:len(raw)-1], " "))
				if len(rescued) > minItemNameLen && anyLetter.MatchString(rescued) {
					items = append(items, dto.LineItem{Name: rescued, Amount: amount, Quantity: 1})
					continue
				}
			}
		}

		// Carry-over: a short bare name picks up the price left behind by an
		// earlier nameless line.
		if lastSeenPrice > 0 && len(words) > 0 &&
			len(name) > minItemNameLen && len(name) <= maxCarriedNameLen {
			items = append(items, dto.LineItem{Name: name, Amount: lastSeenPrice, Quantity: 1})
			lastSeenPrice = 0
		}
	}

	return items
}

// CleanItemName strips OCR junk off both ends of a name, collapses whitespace
// and title-cases the result. Opening and closing parentheses survive so
// annotations like "(Half)" keep their shape.
func CleanItemName(name string) string {
	name = leadingNameJunk.ReplaceAllString(name, "")
	name = trailingNameJunk.ReplaceAllString(name, "")
	name = whitespaceRuns.ReplaceAllString(name, " ")
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
