package utils

import "strings"

// Keyword vocabularies shared across the extraction stages. Every component matches
// against these tables instead of carrying its own copies, so a new label only needs
// to be added once.

// ignoreKeywords mark lines that belong to the totals/tax block, never to an item.
var ignoreKeywords = []string{
	"total", "subtotal", "cgst", "sgst", "gst", "tax", "vat",
	"discount", "service charge", "round off", "net payable", "cess",
}

// addressSignals mark preamble lines: shop address, phone, tax registration, bill metadata.
var addressSignals = []string{
	"road", "street", "layout", "nagar", "ph:", "phone", "gstin", "date:", "bill no",
}

// headerSignals is the column-header vocabulary of the tabular item region.
var headerSignals = map[string]bool{
	"qty": true, "rate": true, "price": true, "amount": true, "particulars": true,
	"description": true, "item": true, "product": true, "mrp": true,
}

var subtotalLabels = []string{
	"subtotal", "sub total", "sub-total", "total amount before tax", "taxable value",
}

var taxKeywords = []string{"cgst", "sgst", "gst", "vat", "sst", "tax", "cess"}

// taxLineExclusions keep grand-total lines that merely mention tax out of the tax sum.
var taxLineExclusions = []string{"total", "sub", "net", "payable"}

var grandTotalLabels = []string{
	"total", "grand total", "net payable", "net amount", "payable", "balance due",
}

var grandTotalExclusions = []string{"sub", "tax", "cgst", "sgst", "vat", "discount"}

// merchantIgnorePhrases disqualify a top-of-receipt line as the merchant name.
var merchantIgnorePhrases = []string{
	"tax invoice", "bill of supply", "cash memo", "welcome",
	"table", "date", "gstin", "ph:", "phone",
}

// taxServiceKeywords in an item name mean the line is a charge, not a purchase.
var taxServiceKeywords = []string{"tax", "gst", "vat", "service"}

// validationKeywords must never survive into an emitted item name.
var validationKeywords = []string{"tax", "gst", "vat", "service", "discount"}

var alcoholKeywords = []string{"beer", "whisky", "vodka", "rum", "wine"}

var drinkKeywords = []string{"tea", "coffee", "coke", "pepsi", "water"}

var nonVegKeywords = []string{"chicken", "mutton", "fish", "prawn", "egg"}

// containsAny reports whether the lowercase line contains any of the keywords.
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
