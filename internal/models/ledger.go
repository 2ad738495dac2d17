package models

import "github.com/shopspring/decimal"

// MaxCalculations caps the saved-calculation history. The oldest entry is
// evicted silently when a save would exceed it.
const MaxCalculations = 20

// Ledger is the persisted aggregate root for obligation state: the current
// computed obligation plus the running payment and calculation history.
// TotalZakat and NetWealth always reflect the most recent valuation, not any
// particular snapshot; both lists are ordered newest first. The whole
// aggregate is read once at startup and rewritten in full after every
// mutation.
type Ledger struct {
	TotalZakat   decimal.Decimal       `json:"total_zakat"`
	NetWealth    decimal.Decimal       `json:"net_wealth"`
	Payments     []Payment             `json:"payments"`
	Calculations []CalculationSnapshot `json:"calculations"`
}

// NewLedger returns an empty ledger with zero obligation.
func NewLedger() Ledger {
	return Ledger{
		TotalZakat:   decimal.Zero,
		NetWealth:    decimal.Zero,
		Payments:     []Payment{},
		Calculations: []CalculationSnapshot{},
	}
}
