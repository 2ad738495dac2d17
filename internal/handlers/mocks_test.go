package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"muhasib/internal/models"
	"muhasib/internal/services"
	"muhasib/internal/validator"
)

// --- mock ledger service ---

type mockLedgerService struct {
	obligationFn        func() services.Obligation
	setObligationFn     func(totalZakat, netWealth decimal.Decimal) error
	recordPaymentFn     func(amount decimal.Decimal, date time.Time, note, currency, currencySymbol string) (*models.Payment, error)
	deletePaymentFn     func(id string) error
	paymentsFn          func() []models.Payment
	recentPaymentsFn    func(n int) []models.Payment
	saveCalculationFn   func(snapshot models.CalculationSnapshot) error
	calculationsFn      func() []models.CalculationSnapshot
	deleteCalculationFn func(index int) error
	progressFn          func() services.Progress
}

func (m *mockLedgerService) Obligation() services.Obligation {
	if m.obligationFn != nil {
		return m.obligationFn()
	}
	return services.Obligation{}
}

func (m *mockLedgerService) SetObligation(totalZakat, netWealth decimal.Decimal) error {
	if m.setObligationFn != nil {
		return m.setObligationFn(totalZakat, netWealth)
	}
	return nil
}

func (m *mockLedgerService) RecordPayment(amount decimal.Decimal, date time.Time, note, currency, currencySymbol string) (*models.Payment, error) {
	if m.recordPaymentFn != nil {
		return m.recordPaymentFn(amount, date, note, currency, currencySymbol)
	}
	return &models.Payment{}, nil
}

func (m *mockLedgerService) DeletePayment(id string) error {
	if m.deletePaymentFn != nil {
		return m.deletePaymentFn(id)
	}
	return nil
}

func (m *mockLedgerService) Payments() []models.Payment {
	if m.paymentsFn != nil {
		return m.paymentsFn()
	}
	return []models.Payment{}
}

func (m *mockLedgerService) RecentPayments(n int) []models.Payment {
	if m.recentPaymentsFn != nil {
		return m.recentPaymentsFn(n)
	}
	return []models.Payment{}
}

func (m *mockLedgerService) SaveCalculation(snapshot models.CalculationSnapshot) error {
	if m.saveCalculationFn != nil {
		return m.saveCalculationFn(snapshot)
	}
	return nil
}

func (m *mockLedgerService) Calculations() []models.CalculationSnapshot {
	if m.calculationsFn != nil {
		return m.calculationsFn()
	}
	return []models.CalculationSnapshot{}
}

func (m *mockLedgerService) DeleteCalculation(index int) error {
	if m.deleteCalculationFn != nil {
		return m.deleteCalculationFn(index)
	}
	return nil
}

func (m *mockLedgerService) Progress() services.Progress {
	if m.progressFn != nil {
		return m.progressFn()
	}
	return services.Progress{}
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

// --- mock valuation service ---

type mockValuationService struct {
	calculateFn func(assets []models.AssetEntry, metals models.MetalHoldings, debts []models.DebtEntry, rates models.RateInputs) (models.ValuationResult, error)
}

func (m *mockValuationService) Calculate(assets []models.AssetEntry, metals models.MetalHoldings, debts []models.DebtEntry, rates models.RateInputs) (models.ValuationResult, error) {
	if m.calculateFn != nil {
		return m.calculateFn(assets, metals, debts, rates)
	}
	return models.ValuationResult{}, nil
}

var _ services.ValuationServicer = (*mockValuationService)(nil)

// --- mock draft service ---

type mockDraftService struct {
	loadFn  func() (models.Draft, error)
	saveFn  func(draft models.Draft) error
	resetFn func() (models.Draft, error)
}

func (m *mockDraftService) Load() (models.Draft, error) {
	if m.loadFn != nil {
		return m.loadFn()
	}
	return models.NewDraft(), nil
}

func (m *mockDraftService) Save(draft models.Draft) error {
	if m.saveFn != nil {
		return m.saveFn(draft)
	}
	return nil
}

func (m *mockDraftService) Reset() (models.Draft, error) {
	if m.resetFn != nil {
		return m.resetFn()
	}
	return models.NewDraft(), nil
}

var _ services.DraftServicer = (*mockDraftService)(nil)

// --- mock rates service ---

type mockRatesService struct {
	fetchLiveFn func(ctx context.Context) (models.RateInputs, error)
}

func (m *mockRatesService) FetchLive(ctx context.Context) (models.RateInputs, error) {
	if m.fetchLiveFn != nil {
		return m.fetchLiveFn(ctx)
	}
	return models.RateInputs{}, nil
}

var _ services.RatesServicer = (*mockRatesService)(nil)

// --- test helpers ---

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
