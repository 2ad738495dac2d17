package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"muhasib/internal/models"
	"muhasib/internal/money"
	"muhasib/internal/services"
)

// recentPaymentCount is how many payments the dashboard shows.
const recentPaymentCount = 5

// DashboardHandler handles the summary view.
type DashboardHandler struct {
	ledgerService services.LedgerServicer
	draftService  services.DraftServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ledgerService services.LedgerServicer, draftService services.DraftServicer) *DashboardHandler {
	return &DashboardHandler{ledgerService: ledgerService, draftService: draftService}
}

// DashboardResponse represents the obligation summary.
type DashboardResponse struct {
	Obligation     services.Obligation `json:"obligation"`
	Progress       services.Progress   `json:"progress"`
	DisplayPercent float64             `json:"display_percent"`
	TotalZakatStr  string              `json:"total_zakat_formatted"`
	TotalPaidStr   string              `json:"total_paid_formatted"`
	RemainingStr   string              `json:"remaining_formatted"`
	RecentPayments []models.Payment    `json:"recent_payments"`
}

// GetDashboard handles the obligation summary request.
// @Summary     Get dashboard
// @Description Get the current obligation, payment progress, and recent payments
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DashboardResponse "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	obligation := h.ledgerService.Obligation()
	progress := h.ledgerService.Progress()

	// The currency symbol follows the current form selection.
	symbol := "₹"
	if draft, err := h.draftService.Load(); err == nil && draft.CurrencySymbol != "" {
		symbol = draft.CurrencySymbol
	}

	displayPercent := progress.Percent
	if displayPercent > 100 {
		displayPercent = 100
	}
	if displayPercent < 0 {
		displayPercent = 0
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Obligation:     obligation,
		Progress:       progress,
		DisplayPercent: displayPercent,
		TotalZakatStr:  money.Format(symbol, obligation.TotalZakat),
		TotalPaidStr:   money.Format(symbol, progress.TotalPaid),
		RemainingStr:   money.Format(symbol, progress.Remaining),
		RecentPayments: h.ledgerService.RecentPayments(recentPaymentCount),
	})
}
