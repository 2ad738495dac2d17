package models

import "github.com/shopspring/decimal"

// AssetEntry is a single cash-equivalent holding entered by the user.
// Entries are summed for valuation; insertion order matters only for display.
type AssetEntry struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// MetalEntry is a weight-based precious-metal holding in grams.
type MetalEntry struct {
	Description string          `json:"description"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
}

// MetalHoldings groups gold and silver entries. The two collections are
// never merged before valuation; each is priced at its own rate.
type MetalHoldings struct {
	Gold   []MetalEntry `json:"gold"`
	Silver []MetalEntry `json:"silver"`
}

// DebtEntry is an outstanding debt deducted from total assets.
type DebtEntry struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// RateInputs holds the point-in-time metal prices used for a valuation.
// These are manual user inputs; a live feed may pre-fill them but never
// replaces them.
type RateInputs struct {
	SilverPricePerGram decimal.Decimal `json:"silver_price_per_gram"`
	GoldPricePerGram   decimal.Decimal `json:"gold_price_per_gram"`
}
