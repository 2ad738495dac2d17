package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "muhasib/internal/errors"
	"muhasib/internal/pagination"
	"muhasib/internal/services"
)

// PaymentHandler handles payment-related requests.
type PaymentHandler struct {
	ledgerService services.LedgerServicer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ledgerService services.LedgerServicer) *PaymentHandler {
	return &PaymentHandler{ledgerService: ledgerService}
}

// CreatePaymentRequest represents the request payload for recording a payment.
type CreatePaymentRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	Note           string          `json:"note" binding:"max=200"`
	Currency       string          `json:"currency" binding:"omitempty,iso4217"`
	CurrencySymbol string          `json:"currency_symbol"`
}

// CreatePayment handles recording a new zakat payment.
// @Summary     Record a payment
// @Description Record a zakat payment against the current obligation
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePaymentRequest true "Payment details"
// @Success     201 {object} models.Payment "Payment recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Currency == "" {
		req.Currency = "INR"
		req.CurrencySymbol = "₹"
	}
	if req.CurrencySymbol == "" {
		req.CurrencySymbol = req.Currency
	}

	payment, err := h.ledgerService.RecordPayment(req.Amount, req.Date, req.Note, req.Currency, req.CurrencySymbol)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// GetPayments handles listing the payment history, newest first.
// @Summary     Get payments
// @Description Get a paginated list of recorded payments, newest first
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Payment] "Paginated payments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /payments [get]
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	payments := h.ledgerService.Payments()
	items := pagination.Slice(payments, page)

	c.JSON(http.StatusOK, pagination.NewPageResponse(items, page.Page, page.PageSize, int64(len(payments))))
}

// DeletePayment handles removing a payment from the history.
// @Summary     Delete a payment
// @Description Remove a payment by id; deleting an absent id succeeds
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Payment ID"
// @Success     200 {object} map[string]string "Payment deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.ledgerService.DeletePayment(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
