package dataset

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"coinscope/src/models"
)

// -----------------------------------------------------------------------------
// Row normalization. NormalizeCoinData is total: every field either parses
// to its typed value or falls back to null/empty, never an error.
// -----------------------------------------------------------------------------

// Accepted date layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// -----------------------------------------------------------------------------

// NormalizeCoinData converts a raw row into the fixed coin schema.
func NormalizeCoinData(row models.MRow) models.MCoin {
	return models.MCoin{
		ID:     cleanString(row["id"]),
		Symbol: strings.ToLower(cleanString(row["symbol"])),
		Name:   cleanString(row["name"]),
		Image:  cleanString(row["image"]),

		CurrentPrice:              parseNullableFloat(row["current_price"]),
		MarketCap:                 parseNullableFloat(row["market_cap"]),
		MarketCapRank:             parseNullableFloat(row["market_cap_rank"]),
		FullyDilutedValuation:     parseNullableFloat(row["fully_diluted_valuation"]),
		TotalVolume:               parseNullableFloat(row["total_volume"]),
		High24h:                   parseNullableFloat(row["high_24h"]),
		Low24h:                    parseNullableFloat(row["low_24h"]),
		PriceChange24h:            parseNullableFloat(row["price_change_24h"]),
		PriceChangePercent24h:     parseNullableFloat(row["price_change_percentage_24h"]),
		MarketCapChange24h:        parseNullableFloat(row["market_cap_change_24h"]),
		MarketCapChangePercent24h: parseNullableFloat(row["market_cap_change_percentage_24h"]),
		CirculatingSupply:         parseNullableFloat(row["circulating_supply"]),
		TotalSupply:               parseNullableFloat(row["total_supply"]),
		MaxSupply:                 parseNullableFloat(row["max_supply"]),
		ATH:                       parseNullableFloat(row["ath"]),
		ATHChangePercent:          parseNullableFloat(row["ath_change_percentage"]),
		ATL:                       parseNullableFloat(row["atl"]),
		ATLChangePercent:          parseNullableFloat(row["atl_change_percentage"]),

		ATHDate:     parseNullableDate(row["ath_date"]),
		ATLDate:     parseNullableDate(row["atl_date"]),
		LastUpdated: parseNullableDate(row["last_updated"]),

		ROI: parseRoi(row["roi"]),
	}
}

// -----------------------------------------------------------------------------

func cleanString(s string) string {
	return strings.TrimSpace(s)
}

// -----------------------------------------------------------------------------

// parseNullableFloat maps NaN, Inf, empty and unparseable input to nil.
func parseNullableFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// -----------------------------------------------------------------------------

// parseNullableDate canonicalizes any accepted layout to RFC3339 UTC.
func parseNullableDate(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			iso := t.UTC().Format(time.RFC3339)
			return &iso
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

// parseRoi reinterprets single-quoted pseudo-JSON objects like
// {'times': 2.5, 'currency': 'btc', 'percentage': 250.0}. Any parse
// failure yields nil silently.
func parseRoi(s string) *models.MRoi {
	s = strings.TrimSpace(s)
	if !looksLikeObject(s) {
		return nil
	}

	var roi models.MRoi
	if err := json.Unmarshal([]byte(requote(s)), &roi); err != nil {
		return nil
	}
	return &roi
}

// -----------------------------------------------------------------------------

func looksLikeObject(s string) bool {
	return strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

// requote turns single-quoted pseudo-JSON into standard JSON. Python's
// None is mapped to null so roi dicts with missing members still parse.
func requote(s string) string {
	s = strings.ReplaceAll(s, "'", "\"")
	s = strings.ReplaceAll(s, ": None", ": null")
	return s
}

// -----------------------------------------------------------------------------
// Loose value coercion, used only by the statistics paths. Deliberately NOT
// unified with NormalizeCoinData: here an empty cell coerces to 0 (and is
// later discarded by the positivity filter) while the listing path emits
// null for the same cell.
// -----------------------------------------------------------------------------

type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueNumber
	ValueObject
	ValueText
)

// MValue is the tagged result of coercing one raw cell.
type MValue struct {
	Kind ValueKind
	Num  float64
	Obj  map[string]interface{}
	Text string
}

// -----------------------------------------------------------------------------

// CoerceValue resolves a raw cell into exactly one of the four kinds.
func CoerceValue(raw string) MValue {
	s := strings.TrimSpace(raw)
	if s == "" {
		return MValue{Kind: ValueEmpty}
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return MValue{Kind: ValueNumber, Num: v}
	}

	if looksLikeObject(s) {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(requote(s)), &obj); err == nil {
			return MValue{Kind: ValueObject, Obj: obj}
		}
	}

	return MValue{Kind: ValueText, Text: s}
}

// -----------------------------------------------------------------------------

// Float reports the numeric reading of the value. Empty cells read as 0;
// objects and text carry no numeric reading.
func (v MValue) Float() (float64, bool) {
	switch v.Kind {
	case ValueNumber:
		return v.Num, true
	case ValueEmpty:
		return 0, true
	default:
		return 0, false
	}
}

// -----------------------------------------------------------------------------

// FiniteColumn extracts the strictly numeric finite cells of one column
// across all rows. Empty cells are skipped here, not read as 0; the
// completeness threshold of the correlation matrix depends on that.
func FiniteColumn(rows []models.MRow, column string) []float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		v := CoerceValue(row[column])
		if v.Kind != ValueNumber || math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			continue
		}
		values = append(values, v.Num)
	}
	return values
}

// -----------------------------------------------------------------------------

// PositiveColumn extracts the strictly positive finite readings of one
// column using the loose coercion (empty reads as 0 and is then dropped
// by the positivity filter).
func PositiveColumn(rows []models.MRow, column string) []float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		v, ok := CoerceValue(row[column]).Float()
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			continue
		}
		values = append(values, v)
	}
	return values
}
