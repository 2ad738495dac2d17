// Package provider defines the interface for fetching metal spot prices
// from external data sources. Fetched rates only pre-fill the manual rate
// inputs; they never feed a valuation directly.
package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MetalRates is a point-in-time gold/silver quote, already converted to a
// per-gram price in the provider's quote currency.
type MetalRates struct {
	GoldPerGram   decimal.Decimal
	SilverPerGram decimal.Decimal
	Currency      string
	FetchedAt     time.Time
}

// Provider fetches current gold and silver spot prices.
type Provider interface {
	// Name returns the provider's display name.
	Name() string

	// FetchRates fetches the current gold and silver per-gram prices.
	FetchRates(ctx context.Context) (MetalRates, error)
}
