package utils

import (
	"regexp"
	"strings"
)

// LineKind is the verdict of the per-line classifier.
type LineKind int

const (
	// LineNoise covers totals, taxes, addresses and bill metadata.
	LineNoise LineKind = iota
	// LineHeader is the column-header row of the item table.
	LineHeader
	// LineCandidate may carry a purchased item.
	LineCandidate
)

var postalCodeRun = regexp.MustCompile(`[0-9]{6}`)

// billMarker matches loose "Table No", "Date", "Bill #" style metadata lines.
var billMarker = regexp.MustCompile(`(?i)\b(table|date|bill)\b[\s.:]*(no|num|dt|#)?`)

var nonLetters = regexp.MustCompile(`[^a-z]`)

// ClassifyLine decides what a trimmed, non-empty receipt line is. Rules run in
// order and the first match wins. The header check only applies before the item
// table has been located; once tableMode is set every non-noise line is a
// candidate.
func ClassifyLine(line string, tableMode bool) LineKind {
	lower := strings.ToLower(line)

	if strings.Contains(lower, "%") || containsAny(lower, ignoreKeywords) {
		return LineNoise
	}
	if postalCodeRun.MatchString(line) {
		return LineNoise
	}
	if containsAny(lower, addressSignals) {
		return LineNoise
	}
	if billMarker.MatchString(line) {
		return LineNoise
	}

	if !tableMode && headerSignalCount(lower) >= 2 {
		return LineHeader
	}

	return LineCandidate
}

// headerSignalCount counts tokens drawn from the column-header vocabulary.
func headerSignalCount(lower string) int {
	count := 0
	for _, token := range strings.Fields(lower) {
		if headerSignals[nonLetters.ReplaceAllString(token, "")] {
			count++
		}
	}
	return count
}
