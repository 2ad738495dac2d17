package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a single zakat payment made by the user. Payments are
// immutable once created except for deletion, and are not tied to the
// calculation that produced the obligation they go toward.
type Payment struct {
	ID             string          `json:"id"` // UUIDv7, time-ordered
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Note           string          `json:"note,omitempty"`
	Currency       string          `json:"currency"`
	CurrencySymbol string          `json:"currency_symbol"`
	CreatedAt      time.Time       `json:"created_at"`
}
