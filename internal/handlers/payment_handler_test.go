package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "muhasib/internal/errors"
	"muhasib/internal/models"
)

func setupPaymentRouter(handler *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/payments", handler.CreatePayment)
	r.GET("/payments", handler.GetPayments)
	r.DELETE("/payments/:id", handler.DeletePayment)
	return r
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockLedgerService{
			recordPaymentFn: func(amount decimal.Decimal, date time.Time, note, currency, currencySymbol string) (*models.Payment, error) {
				return &models.Payment{
					ID:             "0194f6a0-0000-7000-8000-000000000001",
					Amount:         amount,
					Date:           date,
					Note:           note,
					Currency:       currency,
					CurrencySymbol: currencySymbol,
				}, nil
			},
		}
		handler := NewPaymentHandler(svc)
		r := setupPaymentRouter(handler)

		rec := doRequest(r, "POST", "/payments",
			`{"amount":"150.50","date":"2026-03-15T00:00:00Z","note":"cash"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		payment := result["payment"].(map[string]interface{})
		if payment["amount"] != "150.5" {
			t.Errorf("expected amount 150.5, got %v", payment["amount"])
		}
		if payment["currency"] != "INR" {
			t.Errorf("expected INR default, got %v", payment["currency"])
		}
	})

	t.Run("returns 400 on missing amount", func(t *testing.T) {
		handler := NewPaymentHandler(&mockLedgerService{})
		r := setupPaymentRouter(handler)

		rec := doRequest(r, "POST", "/payments", `{"date":"2026-03-15T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 when the service rejects the amount", func(t *testing.T) {
		svc := &mockLedgerService{
			recordPaymentFn: func(amount decimal.Decimal, _ time.Time, _, _, _ string) (*models.Payment, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Payment amount must be greater than zero")
			},
		}
		handler := NewPaymentHandler(svc)
		r := setupPaymentRouter(handler)

		rec := doRequest(r, "POST", "/payments",
			`{"amount":"-5","date":"2026-03-15T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestPaymentHandler_GetPayments(t *testing.T) {
	newHistory := func(n int) []models.Payment {
		payments := make([]models.Payment, n)
		for i := range payments {
			payments[i] = models.Payment{
				ID:     fmt.Sprintf("payment-%d", n-i),
				Amount: decimal.NewFromInt(int64(100 + i)),
			}
		}
		return payments
	}

	t.Run("returns the first page by default", func(t *testing.T) {
		svc := &mockLedgerService{paymentsFn: func() []models.Payment { return newHistory(3) }}
		handler := NewPaymentHandler(svc)
		r := setupPaymentRouter(handler)

		rec := doRequest(r, "GET", "/payments", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 3 {
			t.Errorf("expected 3 total items, got %v", result["total_items"])
		}
		if len(result["data"].([]interface{})) != 3 {
			t.Errorf("expected 3 items on the page, got %v", result["data"])
		}
	})

	t.Run("paginates past the end to an empty page", func(t *testing.T) {
		svc := &mockLedgerService{paymentsFn: func() []models.Payment { return newHistory(3) }}
		handler := NewPaymentHandler(svc)
		r := setupPaymentRouter(handler)

		rec := doRequest(r, "GET", "/payments?page=5&page_size=2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if len(result["data"].([]interface{})) != 0 {
			t.Errorf("expected an empty page, got %v", result["data"])
		}
	})

	t.Run("returns 400 on invalid page size", func(t *testing.T) {
		handler := NewPaymentHandler(&mockLedgerService{})
		r := setupPaymentRouter(handler)

		rec := doRequest(r, "GET", "/payments?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestPaymentHandler_DeletePayment(t *testing.T) {
	t.Run("returns 200 and passes the id through", func(t *testing.T) {
		var deleted string
		svc := &mockLedgerService{
			deletePaymentFn: func(id string) error {
				deleted = id
				return nil
			},
		}
		handler := NewPaymentHandler(svc)
		r := setupPaymentRouter(handler)

		rec := doRequest(r, "DELETE", "/payments/some-id", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if deleted != "some-id" {
			t.Errorf("expected id some-id, got %q", deleted)
		}
	})
}
