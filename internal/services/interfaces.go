package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"muhasib/internal/models"
)

// Progress contains paid-vs-owed figures derived from the current obligation
// and the payment history. Percent is the raw ratio and may exceed 100 when
// the user has overpaid; clamping to [0,100] is a display concern.
type Progress struct {
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Remaining    decimal.Decimal `json:"remaining"`
	Percent      float64         `json:"percent"`
	PaymentCount int             `json:"payment_count"`
}

// Obligation is the current computed obligation held by the ledger.
type Obligation struct {
	TotalZakat decimal.Decimal `json:"total_zakat"`
	NetWealth  decimal.Decimal `json:"net_wealth"`
}

// LedgerServicer defines the contract for obligation-ledger operations.
// All mutations are written through to the blob store in the order they
// are invoked.
type LedgerServicer interface {
	Obligation() Obligation
	SetObligation(totalZakat, netWealth decimal.Decimal) error
	RecordPayment(amount decimal.Decimal, date time.Time, note, currency, currencySymbol string) (*models.Payment, error)
	DeletePayment(id string) error
	Payments() []models.Payment
	RecentPayments(n int) []models.Payment
	SaveCalculation(snapshot models.CalculationSnapshot) error
	Calculations() []models.CalculationSnapshot
	DeleteCalculation(index int) error
	Progress() Progress
}

// ValuationServicer defines the contract for running a valuation and
// committing its result into the ledger.
type ValuationServicer interface {
	Calculate(assets []models.AssetEntry, metals models.MetalHoldings, debts []models.DebtEntry, rates models.RateInputs) (models.ValuationResult, error)
}

// DraftServicer defines the contract for form-draft persistence.
type DraftServicer interface {
	Load() (models.Draft, error)
	Save(draft models.Draft) error
	Reset() (models.Draft, error)
}

// RatesServicer defines the contract for fetching live metal rates used to
// pre-fill the manual rate inputs.
type RatesServicer interface {
	FetchLive(ctx context.Context) (models.RateInputs, error)
}
