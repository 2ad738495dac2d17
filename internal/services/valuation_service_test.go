package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"muhasib/internal/models"
	"muhasib/internal/services"
	"muhasib/internal/testutil"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEvaluate(t *testing.T) {
	t.Run("below nisab owes nothing", func(t *testing.T) {
		result := services.Evaluate(
			[]models.AssetEntry{{Description: "Savings", Value: d("1000")}},
			models.MetalHoldings{},
			nil,
			models.RateInputs{SilverPricePerGram: d("90")},
		)

		testutil.AssertDecimalEqual(t, "55112.4", result.NisabThreshold)
		testutil.AssertDecimalEqual(t, "1000", result.NetWealth)
		if result.IsObligated {
			t.Error("net wealth below nisab should not be obligated")
		}
		if !result.ZakatAmount.IsZero() {
			t.Errorf("expected zero zakat, got %s", result.ZakatAmount)
		}
	})

	t.Run("gold holdings above nisab", func(t *testing.T) {
		result := services.Evaluate(
			nil,
			models.MetalHoldings{
				Gold: []models.MetalEntry{{Description: "Jewellery", WeightGrams: d("50")}},
			},
			nil,
			models.RateInputs{SilverPricePerGram: d("90"), GoldPricePerGram: d("6000")},
		)

		testutil.AssertDecimalEqual(t, "300000", result.TotalAssets)
		testutil.AssertDecimalEqual(t, "300000", result.NetWealth)
		if !result.IsObligated {
			t.Fatal("net wealth above nisab should be obligated")
		}
		testutil.AssertDecimalEqual(t, "7500", result.ZakatAmount)
	})

	t.Run("nisab threshold is silver only", func(t *testing.T) {
		// A massive gold price must not move the threshold.
		result := services.Evaluate(
			[]models.AssetEntry{{Description: "Cash", Value: d("60000")}},
			models.MetalHoldings{},
			nil,
			models.RateInputs{SilverPricePerGram: d("90"), GoldPricePerGram: d("999999")},
		)
		testutil.AssertDecimalEqual(t, "55112.4", result.NisabThreshold)
		if !result.IsObligated {
			t.Error("60000 against a 55112.4 threshold should be obligated")
		}
	})

	t.Run("net wealth exactly at nisab is obligated", func(t *testing.T) {
		result := services.Evaluate(
			[]models.AssetEntry{{Description: "Cash", Value: d("55112.4")}},
			models.MetalHoldings{},
			nil,
			models.RateInputs{SilverPricePerGram: d("90")},
		)
		if !result.IsObligated {
			t.Error("net wealth equal to nisab should be obligated")
		}
		testutil.AssertDecimalEqual(t, "1377.81", result.ZakatAmount)
	})

	t.Run("zero silver price never obligates", func(t *testing.T) {
		result := services.Evaluate(
			[]models.AssetEntry{{Description: "Cash", Value: d("1000000")}},
			models.MetalHoldings{},
			nil,
			models.RateInputs{},
		)
		if result.IsObligated {
			t.Error("a zero nisab must not trivially obligate")
		}
		if !result.ZakatAmount.IsZero() {
			t.Errorf("expected zero zakat, got %s", result.ZakatAmount)
		}
	})

	t.Run("debts reduce net wealth and may leave it negative", func(t *testing.T) {
		result := services.Evaluate(
			[]models.AssetEntry{{Description: "Cash", Value: d("500")}},
			models.MetalHoldings{},
			[]models.DebtEntry{{Description: "Loan", Value: d("800")}},
			models.RateInputs{SilverPricePerGram: d("90")},
		)
		testutil.AssertDecimalEqual(t, "-300", result.NetWealth)
		if result.IsObligated {
			t.Error("negative net wealth should not be obligated")
		}
	})

	t.Run("evaluation is repeatable", func(t *testing.T) {
		assets := []models.AssetEntry{{Description: "Cash", Value: d("70000")}}
		rates := models.RateInputs{SilverPricePerGram: d("90")}

		first := services.Evaluate(assets, models.MetalHoldings{}, nil, rates)
		second := services.Evaluate(assets, models.MetalHoldings{}, nil, rates)

		if !first.ZakatAmount.Equal(second.ZakatAmount) || !first.NetWealth.Equal(second.NetWealth) {
			t.Errorf("identical inputs should produce identical results: %+v vs %+v", first, second)
		}
	})
}

func TestBuildSnapshot(t *testing.T) {
	rates := models.RateInputs{SilverPricePerGram: d("90"), GoldPricePerGram: d("6000")}
	assets := []models.AssetEntry{
		{Description: "Savings", Value: d("1000")},
		{Description: "", Value: decimal.Zero}, // blank row
	}
	metals := models.MetalHoldings{
		Gold:   []models.MetalEntry{{Description: "Ring", WeightGrams: d("10.5")}},
		Silver: []models.MetalEntry{{Description: "", WeightGrams: decimal.Zero}},
	}
	debts := []models.DebtEntry{{Description: "Loan", Value: d("200")}}

	result := services.Evaluate(assets, metals, debts, rates)
	ts := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	snapshot := services.BuildSnapshot(ts, "INR", "₹", assets, metals, debts, rates, result)

	if snapshot.Timestamp != ts {
		t.Errorf("expected timestamp %v, got %v", ts, snapshot.Timestamp)
	}
	if len(snapshot.Assets) != 2 {
		t.Fatalf("expected 2 asset lines (blank rows skipped), got %d", len(snapshot.Assets))
	}
	if snapshot.Assets[1].Description != "Gold: Ring (10.5g)" {
		t.Errorf("unexpected synthesized gold line: %q", snapshot.Assets[1].Description)
	}
	testutil.AssertDecimalEqual(t, "63000", snapshot.Assets[1].Value)
	if len(snapshot.Debts) != 1 {
		t.Fatalf("expected 1 debt line, got %d", len(snapshot.Debts))
	}
	testutil.AssertDecimalEqual(t, "90", snapshot.SilverPricePerGram)
	if !snapshot.TotalZakat.Equal(result.ZakatAmount) {
		t.Errorf("snapshot zakat %s should match result %s", snapshot.TotalZakat, result.ZakatAmount)
	}
}

func TestValuationServiceCommitsObligation(t *testing.T) {
	blobStore := testutil.SetupTestStore(t)
	ledger, err := services.NewLedgerService(blobStore)
	testutil.AssertNoError(t, err)
	svc := services.NewValuationService(ledger)

	result, err := svc.Calculate(
		nil,
		models.MetalHoldings{Gold: []models.MetalEntry{{Description: "Bar", WeightGrams: d("50")}}},
		nil,
		models.RateInputs{SilverPricePerGram: d("90"), GoldPricePerGram: d("6000")},
	)
	testutil.AssertNoError(t, err)
	testutil.AssertDecimalEqual(t, "7500", result.ZakatAmount)

	obligation := ledger.Obligation()
	testutil.AssertDecimalEqual(t, "7500", obligation.TotalZakat)
	testutil.AssertDecimalEqual(t, "300000", obligation.NetWealth)
}
