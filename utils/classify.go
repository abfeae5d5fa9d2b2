package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/splitkaro/receipt-analyzer/dto"
)

// LabelPredictor is the optional external category model. Implementations take
// a short string (an item name, or the whole receipt text for the overall
// category) and return a label, or an empty string when they have no opinion.
// Absence and errors are treated identically: the rule-based classifier runs.
type LabelPredictor interface {
	PredictLabel(text string) (string, error)
}

// ClassifyItems assigns each raw item a semantic type and accumulates the
// per-type amounts used for split suggestions. Items classified as tax or
// service charges are dropped here and never reach the output. Names are run
// through the food-word autocorrect before being emitted.
func ClassifyItems(raw []dto.LineItem, predictor LabelPredictor) ([]dto.LineItem, map[dto.ItemType]float64) {
	items := make([]dto.LineItem, 0, len(raw))
	splits := make(map[dto.ItemType]float64)

	for _, item := range raw {
		itemType := classifyName(item.Name, predictor)
		if itemType == dto.TypeTaxIgnore {
			continue
		}

		item.Name = AutocorrectItemName(item.Name)
		item.Type = itemType
		items = append(items, item)
		splits[itemType] += item.Amount
	}

	return items, splits
}

// classifyName consults the predictor first; labels it is most likely to be
// wrong about (the catch-all Common and Food) fall through to the rules.
func classifyName(name string, predictor LabelPredictor) dto.ItemType {
	if predictor != nil {
		label, err := predictor.PredictLabel(name)
		if err == nil && label != "" &&
			label != string(dto.TypeCommon) && label != string(dto.TypeFood) {
			return dto.ItemType(label)
		}
	}

	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, taxServiceKeywords):
		return dto.TypeTaxIgnore
	case containsAny(lower, alcoholKeywords):
		return dto.TypeAlcohol
	case containsAny(lower, drinkKeywords):
		return dto.TypeDrinks
	case strings.Contains(lower, "veg") && !strings.Contains(lower, "non"):
		return dto.TypeVeg
	case containsAny(lower, nonVegKeywords):
		return dto.TypeNonVeg
	}
	return dto.TypeFood
}

// foodWordVariants maps OCR misspellings of common dish words back to the real
// word. Ordered so replacements stay deterministic.
var foodWordVariants = []struct {
	correct  string
	variants []string
}{
	{"roti", []string{"rotl", "r0ti"}},
	{"naan", []string{"nann", "naon", "nan"}},
	{"butter", []string{"buttr", "buter"}},
	{"tandoori", []string{"tandoott", "tandoorl"}},
	{"chapati", []string{"chapatl"}},
	{"paneer", []string{"paner", "paneor"}},
}

// AutocorrectItemName fixes the misreads diners actually see on their bills.
func AutocorrectItemName(name string) string {
	lower := strings.ToLower(name)
	for _, fw := range foodWordVariants {
		for _, v := range fw.variants {
			if strings.Contains(lower, v) {
				lower = strings.ReplaceAll(lower, v, fw.correct)
			}
		}
	}
	return cases.Title(language.English).String(lower)
}
