package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"muhasib/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestSnapshot builds a calculation snapshot with a unique timestamp and
// the given zakat amount.
func NewTestSnapshot(totalZakat string) models.CalculationSnapshot {
	n := nextID()
	zakat := decimal.RequireFromString(totalZakat)
	return models.CalculationSnapshot{
		Timestamp:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Minute),
		Currency:           "INR",
		CurrencySymbol:     "₹",
		SilverPricePerGram: decimal.RequireFromString("90"),
		GoldPricePerGram:   decimal.Zero,
		TotalZakat:         zakat,
		NetWealth:          zakat.Div(decimal.RequireFromString("0.025")),
		Assets: []models.SnapshotLine{
			{Description: fmt.Sprintf("Savings %d", n), Value: decimal.RequireFromString("1000")},
		},
		Debts: []models.SnapshotLine{},
	}
}

// TestDate is a fixed payment date for fixtures.
var TestDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
