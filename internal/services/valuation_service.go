package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"muhasib/internal/models"
	"muhasib/internal/money"
)

// NisabSilverGrams is the silver-weight threshold of obligation. 612.36 g is
// the canonical value used here; obligation is evaluated against the silver
// threshold only, even when gold holdings dominate.
var NisabSilverGrams = decimal.RequireFromString("612.36")

// ZakatRate is the levy applied to net wealth once it meets the nisab.
var ZakatRate = decimal.RequireFromString("0.025")

// Evaluate converts the entered holdings and metal rates into a valuation.
// It is a pure function: committing the result into the ledger is the
// caller's decision.
func Evaluate(assets []models.AssetEntry, metals models.MetalHoldings, debts []models.DebtEntry, rates models.RateInputs) models.ValuationResult {
	goldValue := sumGrams(metals.Gold).Mul(rates.GoldPricePerGram)
	silverValue := sumGrams(metals.Silver).Mul(rates.SilverPricePerGram)

	totalAssets := goldValue.Add(silverValue)
	for _, a := range assets {
		totalAssets = totalAssets.Add(a.Value)
	}

	totalDebts := decimal.Zero
	for _, d := range debts {
		totalDebts = totalDebts.Add(d.Value)
	}

	// Net wealth may be negative; it is never clamped.
	netWealth := totalAssets.Sub(totalDebts)
	nisab := rates.SilverPricePerGram.Mul(NisabSilverGrams)

	// A zero or unset silver price must not trivially satisfy the comparison.
	obligated := nisab.IsPositive() && netWealth.GreaterThanOrEqual(nisab)

	zakat := decimal.Zero
	if obligated {
		zakat = netWealth.Mul(ZakatRate)
	}

	return models.ValuationResult{
		TotalAssets:    totalAssets,
		TotalDebts:     totalDebts,
		NetWealth:      netWealth,
		NisabThreshold: nisab,
		IsObligated:    obligated,
		ZakatAmount:    zakat,
	}
}

func sumGrams(entries []models.MetalEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.WeightGrams)
	}
	return total
}

// BuildSnapshot captures a valuation as an immutable calculation record.
// Metal holdings become synthesized asset lines valued at the rates in
// effect; blank rows are skipped.
func BuildSnapshot(
	timestamp time.Time,
	currency, currencySymbol string,
	assets []models.AssetEntry,
	metals models.MetalHoldings,
	debts []models.DebtEntry,
	rates models.RateInputs,
	result models.ValuationResult,
) models.CalculationSnapshot {
	snapshot := models.CalculationSnapshot{
		Timestamp:          timestamp,
		Currency:           currency,
		CurrencySymbol:     currencySymbol,
		SilverPricePerGram: rates.SilverPricePerGram,
		GoldPricePerGram:   rates.GoldPricePerGram,
		TotalZakat:         result.ZakatAmount,
		NetWealth:          result.NetWealth,
		Assets:             []models.SnapshotLine{},
		Debts:              []models.SnapshotLine{},
	}

	for _, a := range assets {
		if a.Description == "" && a.Value.IsZero() {
			continue
		}
		snapshot.Assets = append(snapshot.Assets, models.SnapshotLine{
			Description: a.Description,
			Value:       a.Value,
		})
	}
	snapshot.Assets = append(snapshot.Assets, metalLines("Gold", metals.Gold, rates.GoldPricePerGram)...)
	snapshot.Assets = append(snapshot.Assets, metalLines("Silver", metals.Silver, rates.SilverPricePerGram)...)

	for _, d := range debts {
		if d.Description == "" && d.Value.IsZero() {
			continue
		}
		snapshot.Debts = append(snapshot.Debts, models.SnapshotLine{
			Description: d.Description,
			Value:       d.Value,
		})
	}

	return snapshot
}

func metalLines(label string, entries []models.MetalEntry, pricePerGram decimal.Decimal) []models.SnapshotLine {
	var lines []models.SnapshotLine
	for _, e := range entries {
		if e.Description == "" && e.WeightGrams.IsZero() {
			continue
		}
		lines = append(lines, models.SnapshotLine{
			Description: fmt.Sprintf("%s: %s (%sg)", label, e.Description, e.WeightGrams.String()),
			Value:       money.Round2(e.WeightGrams.Mul(pricePerGram)),
		})
	}
	return lines
}

// valuationService runs valuations and commits their results.
type valuationService struct {
	ledger LedgerServicer
}

// NewValuationService creates a new ValuationServicer.
func NewValuationService(ledger LedgerServicer) ValuationServicer {
	return &valuationService{ledger: ledger}
}

// Calculate evaluates the holdings and overwrites the ledger's current
// obligation with the result.
func (s *valuationService) Calculate(assets []models.AssetEntry, metals models.MetalHoldings, debts []models.DebtEntry, rates models.RateInputs) (models.ValuationResult, error) {
	result := Evaluate(assets, metals, debts, rates)
	if err := s.ledger.SetObligation(result.ZakatAmount, result.NetWealth); err != nil {
		return models.ValuationResult{}, err
	}
	return result, nil
}
