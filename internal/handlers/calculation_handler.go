package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "muhasib/internal/errors"
	"muhasib/internal/services"
)

// CalculationHandler handles calculation-history requests.
type CalculationHandler struct {
	valuationService services.ValuationServicer
	ledgerService    services.LedgerServicer
}

// NewCalculationHandler creates a new CalculationHandler.
func NewCalculationHandler(valuationService services.ValuationServicer, ledgerService services.LedgerServicer) *CalculationHandler {
	return &CalculationHandler{valuationService: valuationService, ledgerService: ledgerService}
}

// SaveCalculation handles saving a snapshot of the entered holdings.
// The holdings are re-evaluated, the obligation committed, and the snapshot
// prepended to the capped history.
// @Summary     Save a calculation
// @Description Evaluate holdings and save an immutable snapshot into the history
// @Tags        calculations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CalculateRequest true "Holdings and rates"
// @Success     201 {object} models.CalculationSnapshot "Snapshot saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calculations [post]
func (h *CalculationHandler) SaveCalculation(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	req.defaults()

	assets, metals, debts, rates := req.holdings()
	result, err := h.valuationService.Calculate(assets, metals, debts, rates)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot := services.BuildSnapshot(time.Now(), req.Currency, req.CurrencySymbol, assets, metals, debts, rates, result)
	if err := h.ledgerService.SaveCalculation(snapshot); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"calculation": snapshot})
}

// GetCalculations handles listing the saved calculation history.
// @Summary     Get calculations
// @Description Get the saved calculation history, newest first (capped at 20)
// @Tags        calculations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Calculation history"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /calculations [get]
func (h *CalculationHandler) GetCalculations(c *gin.Context) {
	calculations := h.ledgerService.Calculations()
	c.JSON(http.StatusOK, gin.H{
		"calculations": calculations,
		"count":        len(calculations),
	})
}

// DeleteCalculation handles removing a snapshot by its position.
// @Summary     Delete a calculation
// @Description Remove the snapshot at the given position in the history
// @Tags        calculations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       index path int true "Position in the history, 0 is newest"
// @Success     200 {object} map[string]string "Calculation deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No calculation at that position"
// @Router      /calculations/{index} [delete]
func (h *CalculationHandler) DeleteCalculation(c *gin.Context) {
	index, err := parsePathIndex(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledgerService.DeleteCalculation(index); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Calculation deleted"})
}
