package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotLine is one asset or debt line captured in a saved calculation.
// Metal holdings are captured as synthesized lines ("Gold: Ring (10g)")
// valued at the rates in effect at save time.
type SnapshotLine struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// CalculationSnapshot is an immutable record of a past computation's inputs
// and results, created only on explicit save.
type CalculationSnapshot struct {
	Timestamp          time.Time       `json:"timestamp"`
	Currency           string          `json:"currency"`
	CurrencySymbol     string          `json:"currency_symbol"`
	SilverPricePerGram decimal.Decimal `json:"silver_price_per_gram"`
	GoldPricePerGram   decimal.Decimal `json:"gold_price_per_gram"`
	TotalZakat         decimal.Decimal `json:"total_zakat"`
	NetWealth          decimal.Decimal `json:"net_wealth"`
	Assets             []SnapshotLine  `json:"assets"`
	Debts              []SnapshotLine  `json:"debts"`
}
