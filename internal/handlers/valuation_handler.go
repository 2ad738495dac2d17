package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "muhasib/internal/errors"
	"muhasib/internal/models"
	"muhasib/internal/money"
	"muhasib/internal/services"
)

// ValuationHandler handles valuation requests.
type ValuationHandler struct {
	valuationService services.ValuationServicer
	ledgerService    services.LedgerServicer
	draftService     services.DraftServicer
}

// NewValuationHandler creates a new ValuationHandler.
func NewValuationHandler(valuationService services.ValuationServicer, ledgerService services.LedgerServicer, draftService services.DraftServicer) *ValuationHandler {
	return &ValuationHandler{
		valuationService: valuationService,
		ledgerService:    ledgerService,
		draftService:     draftService,
	}
}

// EntryRequest is one form row. Values arrive as raw strings; blank or
// non-numeric values are coerced to zero, never rejected.
type EntryRequest struct {
	Description string `json:"description"`
	Value       string `json:"value"`
}

// CalculateRequest represents the request payload for running a valuation.
// The shape mirrors the entry form: asset entries keyed by category, metal
// entries keyed by metal, and per-gram rates as entered.
type CalculateRequest struct {
	Currency       string                    `json:"currency" binding:"omitempty,iso4217"`
	CurrencySymbol string                    `json:"currency_symbol"`
	SilverPrice    string                    `json:"silver_price"`
	GoldRate       string                    `json:"gold_rate"`
	Assets         map[string][]EntryRequest `json:"assets"`
	Metals         map[string][]EntryRequest `json:"metals"`
	Debts          []EntryRequest            `json:"debts"`
	SaveSnapshot   bool                      `json:"save_snapshot"`
	SaveDraft      bool                      `json:"save_draft"`
}

// CalculateResponse represents a valuation result with formatted amounts.
type CalculateResponse struct {
	Result        models.ValuationResult `json:"result"`
	NetWealthStr  string                 `json:"net_wealth_formatted"`
	ZakatStr      string                 `json:"zakat_formatted"`
	NisabStr      string                 `json:"nisab_formatted"`
	SnapshotSaved bool                   `json:"snapshot_saved"`
}

func (r *CalculateRequest) defaults() {
	if r.Currency == "" {
		r.Currency = "INR"
		r.CurrencySymbol = "₹"
	}
	if r.CurrencySymbol == "" {
		r.CurrencySymbol = r.Currency
	}
}

func (r *CalculateRequest) holdings() ([]models.AssetEntry, models.MetalHoldings, []models.DebtEntry, models.RateInputs) {
	var assets []models.AssetEntry
	for _, category := range models.AssetCategories {
		for _, e := range r.Assets[category] {
			assets = append(assets, models.AssetEntry{
				Description: e.Description,
				Value:       money.ToDecimal(e.Value),
			})
		}
	}

	metals := models.MetalHoldings{}
	for _, e := range r.Metals[models.MetalGold] {
		metals.Gold = append(metals.Gold, models.MetalEntry{
			Description: e.Description,
			WeightGrams: money.ToDecimal(e.Value),
		})
	}
	for _, e := range r.Metals[models.MetalSilver] {
		metals.Silver = append(metals.Silver, models.MetalEntry{
			Description: e.Description,
			WeightGrams: money.ToDecimal(e.Value),
		})
	}

	var debts []models.DebtEntry
	for _, e := range r.Debts {
		debts = append(debts, models.DebtEntry{
			Description: e.Description,
			Value:       money.ToDecimal(e.Value),
		})
	}

	rates := models.RateInputs{
		SilverPricePerGram: money.ToDecimal(r.SilverPrice),
		GoldPricePerGram:   money.ToDecimal(r.GoldRate),
	}
	return assets, metals, debts, rates
}

// draft rebuilds a Draft from the raw form values so they restore verbatim.
func (r *CalculateRequest) draft() models.Draft {
	toEntries := func(in []EntryRequest) []models.DraftEntry {
		out := make([]models.DraftEntry, 0, len(in))
		for _, e := range in {
			out = append(out, models.DraftEntry{Description: e.Description, Value: e.Value})
		}
		return out
	}

	draft := models.Draft{
		Currency:       r.Currency,
		CurrencySymbol: r.CurrencySymbol,
		SilverPrice:    r.SilverPrice,
		GoldRate:       r.GoldRate,
		Assets:         map[string][]models.DraftEntry{},
		Metals:         map[string][]models.DraftEntry{},
		Debts:          toEntries(r.Debts),
	}
	for category, entries := range r.Assets {
		draft.Assets[category] = toEntries(entries)
	}
	for metal, entries := range r.Metals {
		draft.Metals[metal] = toEntries(entries)
	}
	draft.Normalize()
	return draft
}

// Calculate handles running a valuation against the entered holdings.
// @Summary     Run a valuation
// @Description Evaluate entered holdings against the nisab and commit the resulting obligation
// @Tags        valuation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CalculateRequest true "Holdings and rates"
// @Success     200 {object} CalculateResponse "Valuation result"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calculate [post]
func (h *ValuationHandler) Calculate(c *gin.Context) {
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

	if req.SaveSnapshot {
		snapshot := services.BuildSnapshot(time.Now(), req.Currency, req.CurrencySymbol, assets, metals, debts, rates, result)
		if err := h.ledgerService.SaveCalculation(snapshot); err != nil {
			respondWithError(c, err)
			return
		}
	}
	if req.SaveDraft {
		if err := h.draftService.Save(req.draft()); err != nil {
			respondWithError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, CalculateResponse{
		Result:        result,
		NetWealthStr:  money.Format(req.CurrencySymbol, result.NetWealth),
		ZakatStr:      money.Format(req.CurrencySymbol, result.ZakatAmount),
		NisabStr:      money.Format(req.CurrencySymbol, result.NisabThreshold),
		SnapshotSaved: req.SaveSnapshot,
	})
}
