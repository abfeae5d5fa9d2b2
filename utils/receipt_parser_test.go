package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitkaro/receipt-analyzer/dto"
)

const spiceGardenReceipt = `Spice Garden
12 MG Road
Item Qty Rate Amount
Paneer Tikka 2 150 300.00
Butter Naan 3 30 90.00
Veg Biryani 180.00
Pepsi 40.00
Subtotal 610.00
CGST @2.5% 2.50
SGST @2.5% 2.50
Grand Total 615.00
Thank You Visit Again`

func TestParseReceiptFullPipeline(t *testing.T) {
	result, err := ParseReceipt(spiceGardenReceipt, ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Spice Garden", result.Merchant)
	assert.Equal(t, "Food", result.Category)
	assert.Equal(t, 615.0, result.TotalAmount)
	assert.False(t, result.RequiresConfirmation)
	assert.Equal(t, 0.85, result.Confidence)

	require.Len(t, result.Items, 4)
	assert.Equal(t, dto.LineItem{Name: "Paneer Tikka", Amount: 300, Quantity: 2, Type: dto.TypeFood}, result.Items[0])
	assert.Equal(t, dto.LineItem{Name: "Butter Naan", Amount: 90, Quantity: 3, Type: dto.TypeFood}, result.Items[1])
	assert.Equal(t, dto.LineItem{Name: "Veg Biryani", Amount: 180, Quantity: 1, Type: dto.TypeVeg}, result.Items[2])
	assert.Equal(t, dto.LineItem{Name: "Pepsi", Amount: 40, Quantity: 1, Type: dto.TypeDrinks}, result.Items[3])

	assert.Equal(t, map[dto.ItemType]float64{
		dto.TypeFood:   390,
		dto.TypeVeg:    180,
		dto.TypeDrinks: 40,
	}, result.SuggestedSplits)

	for _, item := range result.Items {
		assert.GreaterOrEqual(t, item.Quantity, 1, "item %q", item.Name)
		assert.NotEqual(t, dto.TypeTaxIgnore, item.Type, "item %q", item.Name)
	}
}

func TestParseReceiptDeterministic(t *testing.T) {
	first, err := ParseReceipt(spiceGardenReceipt, ParseOptions{})
	require.NoError(t, err)
	second, err := ParseReceipt(spiceGardenReceipt, ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseReceiptAlcoholForcesConfirmation(t *testing.T) {
	text := `Night Owl Pub
Item Qty Rate Amount
Kingfisher Beer 2 180 360.00
Veg Burger 150.00
Total 510.00`

	result, err := ParseReceipt(text, ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Night Owl Pub", result.Merchant)
	assert.Equal(t, 510.0, result.TotalAmount)
	assert.True(t, result.RequiresConfirmation)
	assert.Equal(t, 0.60, result.Confidence)
	assert.Equal(t, 360.0, result.SuggestedSplits[dto.TypeAlcohol])
}

func TestParseReceiptConfirmationThreshold(t *testing.T) {
	base := `Cafe Blue
Item Qty Rate Amount
Veg Burger 180.00
Paneer Wrap 120.00
`

	over, err := ParseReceipt(base+"Total 311.00", ParseOptions{})
	require.NoError(t, err)
	assert.True(t, over.RequiresConfirmation, "gap of 11 needs confirmation")
	assert.Equal(t, 0.60, over.Confidence)

	at, err := ParseReceipt(base+"Total 310.00", ParseOptions{})
	require.NoError(t, err)
	assert.False(t, at.RequiresConfirmation, "gap of exactly 10 does not")
	assert.Equal(t, 0.85, at.Confidence)
}

func TestParseReceiptDeficitFailsValidation(t *testing.T) {
	text := `Annapurna Mess
Item Qty Rate Amount
Paneer Tikka 2 150 300.00
Veg Biryani 130.00
Total 400.00`

	result, err := ParseReceipt(text, ParseOptions{})
	assert.Nil(t, result)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, text, verr.RawText)
}

func TestParseReceiptDiscountExplainsDeficit(t *testing.T) {
	text := `Annapurna Mess
Item Qty Rate Amount
Paneer Tikka 2 150 300.00
Veg Biryani 130.00
Discount -30.00
Total 400.00`

	result, err := ParseReceipt(text, ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, 400.0, result.TotalAmount)
	assert.True(t, result.RequiresConfirmation, "a 30 rupee gap still needs a human")
	assert.Equal(t, 0.60, result.Confidence)
}

func TestParseReceiptUsesTotalHint(t *testing.T) {
	text := `Spice Garden
Item Qty Rate Amount
Paneer Tikka 2 150 300.00`

	result, err := ParseReceipt(text, ParseOptions{TotalHint: 305})
	require.NoError(t, err)

	assert.Equal(t, 305.0, result.TotalAmount)
	assert.False(t, result.RequiresConfirmation)
}

func TestParseReceiptPredictorSetsCategory(t *testing.T) {
	text := `Spice Garden
Item Qty Rate Amount
Pepsi 40.00
Total 40.00`

	result, err := ParseReceipt(text, ParseOptions{Predictor: &stubPredictor{label: "Drinks"}})
	require.NoError(t, err)

	assert.Equal(t, "Drinks", result.Category)
}

func TestParseReceiptUnknownMerchantLowersConfidence(t *testing.T) {
	text := `Tax Invoice
Item Qty Rate Amount
Veg Burger 180.00
Total 180.00`

	result, err := ParseReceipt(text, ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, dto.UnknownMerchant, result.Merchant)
	assert.True(t, result.RequiresConfirmation)
	assert.Equal(t, 0.60, result.Confidence)
}
