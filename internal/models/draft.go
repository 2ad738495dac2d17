package models

// Asset categories a draft keeps entries for. Metals are tracked separately
// because they are weight-based.
const (
	CategoryCash        = "cash"
	CategoryInvestments = "investments"
	CategoryBusiness    = "business"
	CategoryProperty    = "property"
	CategoryReceivables = "receivables"
	CategoryOther       = "other"

	MetalGold   = "gold"
	MetalSilver = "silver"
)

// AssetCategories lists the cash-equivalent categories in display order.
var AssetCategories = []string{
	CategoryCash,
	CategoryInvestments,
	CategoryBusiness,
	CategoryProperty,
	CategoryReceivables,
	CategoryOther,
}

// DraftEntry is one form row as the user typed it. Values stay raw strings
// so blank and partially-typed fields restore verbatim on the next load;
// coercion to numbers happens only at valuation time.
type DraftEntry struct {
	Description string `json:"description"`
	Value       string `json:"value"`
}

// Draft holds the last-entered form state, persisted so the user never has
// to re-enter their holdings. It is a UX convenience, not obligation state.
type Draft struct {
	Currency       string                  `json:"currency"`
	CurrencySymbol string                  `json:"currency_symbol"`
	SilverPrice    string                  `json:"silver_price"`
	GoldRate       string                  `json:"gold_rate"`
	Assets         map[string][]DraftEntry `json:"assets"`
	Metals         map[string][]DraftEntry `json:"metals"`
	Debts          []DraftEntry            `json:"debts"`
}

// NewDraft returns the default draft: one blank entry per category, the
// default silver price pre-filled, and INR selected.
func NewDraft() Draft {
	assets := make(map[string][]DraftEntry, len(AssetCategories))
	for _, category := range AssetCategories {
		assets[category] = []DraftEntry{{}}
	}
	return Draft{
		Currency:       "INR",
		CurrencySymbol: "₹",
		SilverPrice:    "90",
		GoldRate:       "0",
		Assets:         assets,
		Metals: map[string][]DraftEntry{
			MetalGold:   {{}},
			MetalSilver: {{}},
		},
		Debts: []DraftEntry{{}},
	}
}

// Normalize fills in any category missing from a loaded draft with a single
// blank entry, so a partially-written blob still renders a complete form.
func (d *Draft) Normalize() {
	if d.Assets == nil {
		d.Assets = make(map[string][]DraftEntry, len(AssetCategories))
	}
	for _, category := range AssetCategories {
		if len(d.Assets[category]) == 0 {
			d.Assets[category] = []DraftEntry{{}}
		}
	}
	if d.Metals == nil {
		d.Metals = make(map[string][]DraftEntry, 2)
	}
	for _, metal := range []string{MetalGold, MetalSilver} {
		if len(d.Metals[metal]) == 0 {
			d.Metals[metal] = []DraftEntry{{}}
		}
	}
	if len(d.Debts) == 0 {
		d.Debts = []DraftEntry{{}}
	}
	if d.Currency == "" {
		d.Currency = "INR"
		d.CurrencySymbol = "₹"
	}
}
