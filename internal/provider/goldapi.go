package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// gramsPerTroyOunce converts the feed's per-ounce spot prices to per-gram.
var gramsPerTroyOunce = decimal.RequireFromString("31.1034768")

// GoldAPIProvider fetches gold and silver spot prices from the free
// gold-api.com endpoint, which quotes USD per troy ounce.
type GoldAPIProvider struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
}

// NewGoldAPIProvider creates a new gold-api.com price provider.
func NewGoldAPIProvider(httpClient *http.Client) *GoldAPIProvider {
	return &GoldAPIProvider{
		httpClient: httpClient,
		baseURL:    "https://api.gold-api.com/price",
	}
}

// Name returns the provider's display name.
func (p *GoldAPIProvider) Name() string { return "gold-api.com" }

type goldAPIQuote struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Symbol string  `json:"symbol"`
}

// FetchRates fetches the XAU and XAG spot prices and converts them to
// per-gram values.
func (p *GoldAPIProvider) FetchRates(ctx context.Context) (MetalRates, error) {
	gold, err := p.fetchSymbol(ctx, "XAU")
	if err != nil {
		return MetalRates{}, err
	}
	silver, err := p.fetchSymbol(ctx, "XAG")
	if err != nil {
		return MetalRates{}, err
	}

	return MetalRates{
		GoldPerGram:   gold.Div(gramsPerTroyOunce).Round(2),
		SilverPerGram: silver.Div(gramsPerTroyOunce).Round(2),
		Currency:      "USD",
		FetchedAt:     time.Now(),
	}, nil
}

func (p *GoldAPIProvider) fetchSymbol(ctx context.Context, symbol string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+symbol, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("building %s request: %w", symbol, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetching %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("fetching %s: unexpected status %d", symbol, resp.StatusCode)
	}

	var quote goldAPIQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return decimal.Zero, fmt.Errorf("decoding %s quote: %w", symbol, err)
	}
	if quote.Price <= 0 {
		return decimal.Zero, fmt.Errorf("non-positive %s price %f", symbol, quote.Price)
	}

	return decimal.NewFromFloat(quote.Price), nil
}
