package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"muhasib/internal/services"
)

// RatesHandler handles live metal-rate requests.
type RatesHandler struct {
	ratesService services.RatesServicer
}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler(ratesService services.RatesServicer) *RatesHandler {
	return &RatesHandler{ratesService: ratesService}
}

// GetLiveRates handles fetching current metal spot prices. The rates are
// advisory and only pre-fill the manual rate inputs.
// @Summary     Get live rates
// @Description Fetch current gold and silver per-gram prices from the first available source
// @Tags        rates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.RateInputs "Per-gram prices"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "No rate source available"
// @Router      /rates/live [get]
func (h *RatesHandler) GetLiveRates(c *gin.Context) {
	rates, err := h.ratesService.FetchLive(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": rates})
}
