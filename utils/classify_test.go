package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitkaro/receipt-analyzer/dto"
)

type stubPredictor struct {
	label string
	err   error
	calls int
}

func (s *stubPredictor) PredictLabel(text string) (string, error) {
	s.calls++
	return s.label, s.err
}

func TestClassifyItemsRuleCascade(t *testing.T) {
	tests := []struct {
		name     string
		expected dto.ItemType
	}{
		{"Kingfisher Beer", dto.TypeAlcohol},
		{"Masala Tea", dto.TypeDrinks},
		{"Veg Biryani", dto.TypeVeg},
		{"Chicken 65", dto.TypeNonVeg},
		{"Egg Curry", dto.TypeNonVeg},
		{"Paneer Tikka", dto.TypeFood},
	}

	for _, tt := range tests {
		items, _ := ClassifyItems([]dto.LineItem{{Name: tt.name, Amount: 100, Quantity: 1}}, nil)
		require.Len(t, items, 1, "item %q", tt.name)
		assert.Equal(t, tt.expected, items[0].Type, "item %q", tt.name)
	}
}

func TestClassifyItemsDropsTaxLikeLines(t *testing.T) {
	raw := []dto.LineItem{
		{Name: "Paneer Tikka", Amount: 300, Quantity: 1},
		{Name: "Service Charge", Amount: 50, Quantity: 1},
	}

	items, splits := ClassifyItems(raw, nil)

	require.Len(t, items, 1)
	assert.Equal(t, "Paneer Tikka", items[0].Name)
	assert.Equal(t, 300.0, splits[dto.TypeFood])
	assert.NotContains(t, splits, dto.TypeTaxIgnore)
}

func TestClassifyItemsPredictorOverride(t *testing.T) {
	predictor := &stubPredictor{label: "Alcohol"}

	items, splits := ClassifyItems([]dto.LineItem{{Name: "Mystery Special", Amount: 200, Quantity: 1}}, predictor)

	require.Len(t, items, 1)
	assert.Equal(t, dto.TypeAlcohol, items[0].Type)
	assert.Equal(t, 200.0, splits[dto.TypeAlcohol])
	assert.Equal(t, 1, predictor.calls)
}

func TestClassifyItemsPredictorCatchAllFallsThrough(t *testing.T) {
	// "Food" from the model carries no information; the rules still decide.
	predictor := &stubPredictor{label: "Food"}

	items, _ := ClassifyItems([]dto.LineItem{{Name: "Pepsi", Amount: 40, Quantity: 1}}, predictor)

	require.Len(t, items, 1)
	assert.Equal(t, dto.TypeDrinks, items[0].Type)
}

func TestClassifyItemsPredictorErrorFallsThrough(t *testing.T) {
	predictor := &stubPredictor{err: errors.New("sidecar down")}

	items, _ := ClassifyItems([]dto.LineItem{{Name: "Kingfisher Beer", Amount: 360, Quantity: 2}}, predictor)

	require.Len(t, items, 1)
	assert.Equal(t, dto.TypeAlcohol, items[0].Type)
}

func TestAutocorrectItemName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Tandoott Rotl", "Tandoori Roti"},
		{"Butter Nan", "Butter Naan"},
		{"Paner Tikka", "Paneer Tikka"},
		{"Chapatl", "Chapati"},
		{"Veg Biryani", "Veg Biryani"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AutocorrectItemName(tt.in), "input %q", tt.in)
	}
}
