package models

// MRow is a raw dataset record keyed by column name, exactly as parsed.
type MRow map[string]string

// -----------------------------------------------------------------------------

// MCoin is the normalized, fixed-schema view of a row. Numeric and date
// fields are pointers so that unparseable values serialize as JSON null.
type MCoin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Image  string `json:"image"`

	CurrentPrice              *float64 `json:"current_price"`
	MarketCap                 *float64 `json:"market_cap"`
	MarketCapRank             *float64 `json:"market_cap_rank"`
	FullyDilutedValuation     *float64 `json:"fully_diluted_valuation"`
	TotalVolume               *float64 `json:"total_volume"`
	High24h                   *float64 `json:"high_24h"`
	Low24h                    *float64 `json:"low_24h"`
	PriceChange24h            *float64 `json:"price_change_24h"`
	PriceChangePercent24h     *float64 `json:"price_change_percentage_24h"`
	MarketCapChange24h        *float64 `json:"market_cap_change_24h"`
	MarketCapChangePercent24h *float64 `json:"market_cap_change_percentage_24h"`
	CirculatingSupply         *float64 `json:"circulating_supply"`
	TotalSupply               *float64 `json:"total_supply"`
	MaxSupply                 *float64 `json:"max_supply"`
	ATH                       *float64 `json:"ath"`
	ATHChangePercent          *float64 `json:"ath_change_percentage"`
	ATL                       *float64 `json:"atl"`
	ATLChangePercent          *float64 `json:"atl_change_percentage"`

	ATHDate     *string `json:"ath_date"`
	ATLDate     *string `json:"atl_date"`
	LastUpdated *string `json:"last_updated"`

	ROI *MRoi `json:"roi"`
}

// -----------------------------------------------------------------------------

// MRoi is the optional nested return-on-investment object.
type MRoi struct {
	Times      *float64 `json:"times"`
	Currency   string   `json:"currency"`
	Percentage *float64 `json:"percentage"`
}
