package dataset

import (
	"testing"

	"coinscope/src/models"
)

// -----------------------------------------------------------------------------

func fullRow() models.MRow {
	return models.MRow{
		"id":                               "bitcoin",
		"symbol":                           " BTC ",
		"name":                             " Bitcoin ",
		"image":                            "https://example.com/btc.png",
		"current_price":                    "45000.5",
		"market_cap":                       "880000000000",
		"market_cap_rank":                  "1",
		"fully_diluted_valuation":          "945000000000",
		"total_volume":                     "32000000000",
		"high_24h":                         "46000",
		"low_24h":                          "44000",
		"price_change_24h":                 "-500.25",
		"price_change_percentage_24h":      "-1.1",
		"market_cap_change_24h":            "-9000000000",
		"market_cap_change_percentage_24h": "-1.01",
		"circulating_supply":               "19500000",
		"total_supply":                     "21000000",
		"max_supply":                       "21000000",
		"ath":                              "69045",
		"ath_change_percentage":            "-34.8",
		"ath_date":                         "2021-11-10T14:24:11.849Z",
		"atl":                              "67.81",
		"atl_change_percentage":            "66200.5",
		"atl_date":                         "2013-07-06T00:00:00.000Z",
		"roi":                              "{'times': 2.5, 'currency': 'btc', 'percentage': 250.0}",
		"last_updated":                     "2024-01-15T09:30:00Z",
	}
}

// -----------------------------------------------------------------------------

func TestNormalizeCoinDataFullRow(t *testing.T) {
	coin := NormalizeCoinData(fullRow())

	if coin.ID != "bitcoin" {
		t.Fatalf("expected id bitcoin, got %q", coin.ID)
	}
	if coin.Symbol != "btc" {
		t.Fatalf("expected trimmed lower-cased symbol btc, got %q", coin.Symbol)
	}
	if coin.Name != "Bitcoin" {
		t.Fatalf("expected trimmed name Bitcoin, got %q", coin.Name)
	}
	if coin.CurrentPrice == nil || *coin.CurrentPrice != 45000.5 {
		t.Fatalf("expected current_price 45000.5, got %v", coin.CurrentPrice)
	}
	if coin.MarketCap == nil || *coin.MarketCap != 880000000000 {
		t.Fatalf("expected market_cap 880000000000, got %v", coin.MarketCap)
	}
	if coin.ATHDate == nil || *coin.ATHDate != "2021-11-10T14:24:11Z" {
		t.Fatalf("expected canonical ath_date, got %v", coin.ATHDate)
	}
	if coin.ROI == nil {
		t.Fatalf("expected roi to parse")
	}
	if coin.ROI.Times == nil || *coin.ROI.Times != 2.5 {
		t.Fatalf("expected roi.times 2.5, got %v", coin.ROI.Times)
	}
	if coin.ROI.Currency != "btc" {
		t.Fatalf("expected roi.currency btc, got %q", coin.ROI.Currency)
	}
}

// -----------------------------------------------------------------------------

func TestNormalizeCoinDataNeverFails(t *testing.T) {
	rows := []models.MRow{
		{},
		{"current_price": "not-a-number", "market_cap": "NaN", "ath_date": "yesterday"},
		{"roi": "{'broken json"},
		{"symbol": "", "name": "   "},
		{"max_supply": "Inf", "atl": "-Inf"},
	}

	for i, row := range rows {
		coin := NormalizeCoinData(row)
		if coin.CurrentPrice != nil {
			t.Fatalf("row %d: expected nil current_price, got %v", i, *coin.CurrentPrice)
		}
		if coin.MarketCap != nil {
			t.Fatalf("row %d: expected nil market_cap, got %v", i, *coin.MarketCap)
		}
		if coin.MaxSupply != nil {
			t.Fatalf("row %d: expected nil max_supply for non-finite input", i)
		}
		if coin.ATHDate != nil {
			t.Fatalf("row %d: expected nil ath_date, got %v", i, *coin.ATHDate)
		}
		if coin.ROI != nil {
			t.Fatalf("row %d: expected nil roi", i)
		}
	}
}

// -----------------------------------------------------------------------------

func TestCoerceValueKinds(t *testing.T) {
	cases := []struct {
		raw  string
		kind ValueKind
	}{
		{"42.5", ValueNumber},
		{" -1e3 ", ValueNumber},
		{"", ValueEmpty},
		{"   ", ValueEmpty},
		{"hello", ValueText},
		{"{'times': 1.5}", ValueObject},
		{"{not json}", ValueText},
	}

	for _, tc := range cases {
		v := CoerceValue(tc.raw)
		if v.Kind != tc.kind {
			t.Fatalf("CoerceValue(%q): expected kind %d, got %d", tc.raw, tc.kind, v.Kind)
		}
	}
}

// -----------------------------------------------------------------------------

func TestCoerceValueFloat(t *testing.T) {
	if v, ok := CoerceValue("12.25").Float(); !ok || v != 12.25 {
		t.Fatalf("expected numeric reading 12.25, got %v ok=%v", v, ok)
	}

	// Empty cells read as 0 on the loose path; the listing path emits null
	// for the same cell.
	if v, ok := CoerceValue("").Float(); !ok || v != 0 {
		t.Fatalf("expected empty to read as 0, got %v ok=%v", v, ok)
	}

	if _, ok := CoerceValue("text").Float(); ok {
		t.Fatalf("expected text to carry no numeric reading")
	}
}

// -----------------------------------------------------------------------------

func TestColumnExtraction(t *testing.T) {
	rows := []models.MRow{
		{"market_cap": "100"},
		{"market_cap": ""},
		{"market_cap": "-5"},
		{"market_cap": "abc"},
		{"market_cap": "250"},
	}

	strict := FiniteColumn(rows, "market_cap")
	if len(strict) != 3 {
		t.Fatalf("expected 3 strictly numeric cells, got %d", len(strict))
	}

	positive := PositiveColumn(rows, "market_cap")
	if len(positive) != 2 {
		t.Fatalf("expected 2 positive cells, got %d", len(positive))
	}
	if positive[0] != 100 || positive[1] != 250 {
		t.Fatalf("unexpected positive values: %v", positive)
	}
}
