package services

import (
	"context"

	apperrors "muhasib/internal/errors"
	"muhasib/internal/logger"
	"muhasib/internal/models"
	"muhasib/internal/provider"
)

// ratesService fetches live metal quotes from the first provider that
// answers.
type ratesService struct {
	providers []provider.Provider
}

// NewRatesService creates a new RatesServicer backed by the given providers,
// tried in order.
func NewRatesService(providers ...provider.Provider) RatesServicer {
	return &ratesService{providers: providers}
}

// FetchLive returns the current per-gram gold and silver prices. The result
// is advisory: it pre-fills the manual rate inputs and is never used for a
// valuation without the user submitting it.
func (s *ratesService) FetchLive(ctx context.Context) (models.RateInputs, error) {
	var lastErr error
	for _, p := range s.providers {
		rates, err := p.FetchRates(ctx)
		if err != nil {
			logger.Get().Warnw("metal rate fetch failed", "provider", p.Name(), "error", err)
			lastErr = err
			continue
		}
		return models.RateInputs{
			SilverPricePerGram: rates.SilverPerGram,
			GoldPricePerGram:   rates.GoldPerGram,
		}, nil
	}
	return models.RateInputs{}, apperrors.Wrap(apperrors.ErrRateSourceUnavailable, lastErr)
}
