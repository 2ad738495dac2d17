package models

import "github.com/shopspring/decimal"

// ValuationResult is the outcome of evaluating the entered holdings against
// the nisab threshold. It is derived data and is never persisted on its own;
// the current obligation fields are committed into the Ledger separately.
type ValuationResult struct {
	TotalAssets    decimal.Decimal `json:"total_assets"`
	TotalDebts     decimal.Decimal `json:"total_debts"`
	NetWealth      decimal.Decimal `json:"net_wealth"`
	NisabThreshold decimal.Decimal `json:"nisab_threshold"`
	IsObligated    bool            `json:"is_obligated"`
	ZakatAmount    decimal.Decimal `json:"zakat_amount"`
}
