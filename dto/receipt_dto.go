package dto

// ItemType is the semantic category of a purchased line item.
type ItemType string

const (
	TypeFood    ItemType = "Food"
	TypeNonVeg  ItemType = "Non-Veg"
	TypeVeg     ItemType = "Veg"
	TypeDrinks  ItemType = "Drinks"
	TypeAlcohol ItemType = "Alcohol"
	TypeCommon  ItemType = "Common"

	// TypeTaxIgnore marks a line that looks like a tax or service charge. Items
	// carrying it are dropped before the result is assembled; it never appears
	// in a response.
	TypeTaxIgnore ItemType = "TAX_IGNORE"
)

// UnknownMerchant is the sentinel used when no line of the receipt preamble
// survives the merchant heuristics.
const UnknownMerchant = "Unknown Merchant"

// LineItem is one purchased item recovered from the receipt.
type LineItem struct {
	Name     string   `json:"name"`
	Amount   float64  `json:"amount"`
	Quantity int      `json:"quantity"`
	Type     ItemType `json:"type,omitempty"`
}

// AggregateFigures are the totals extracted from the receipt text independently
// of the item lines. GrandTotalFound distinguishes a printed grand total from
// one reconstructed out of subtotal and tax.
type AggregateFigures struct {
	Subtotal        float64 `json:"subtotal"`
	TaxTotal        float64 `json:"taxTotal"`
	GrandTotal      float64 `json:"grandTotal"`
	GrandTotalFound bool    `json:"grandTotalFound"`
}

// ReceiptAnalysis is the final result of analyzing one receipt. TotalAmount is
// always the reconciled total: the printed grand total when one was found,
// otherwise subtotal plus tax, otherwise the sum of the items.
type ReceiptAnalysis struct {
	Merchant             string               `json:"merchant"`
	Category             string               `json:"category"`
	Items                []LineItem           `json:"items"`
	TotalAmount          float64              `json:"totalAmount"`
	Confidence           float64              `json:"confidence"`
	RequiresConfirmation bool                 `json:"requiresConfirmation"`
	SuggestedSplits      map[ItemType]float64 `json:"suggestedSplits"`
	Text                 string               `json:"text"`
}
