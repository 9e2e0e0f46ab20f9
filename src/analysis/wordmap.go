package analysis

import (
	"math"
	"sort"
	"strings"

	"coinscope/src/analysis/core"
	"coinscope/src/dataset"
	"coinscope/src/models"
)

// -----------------------------------------------------------------------------

// Wordmap ranks coins by market cap and annotates each with a display size
// in [10,100] and a hue in [0,120] (largest cap is green, smallest red),
// both linearly interpolated across the selected set.
func (a *Analyzer) Wordmap(rows []models.MRow, limit int, minMarketCap float64) *models.MWordmapResponse {
	type candidate struct {
		name      string
		symbol    string
		marketCap float64
	}

	candidates := make([]candidate, 0, len(rows))
	for _, row := range rows {
		mc, ok := dataset.CoerceValue(row["market_cap"]).Float()
		if !ok || math.IsNaN(mc) || math.IsInf(mc, 0) || mc <= minMarketCap {
			continue
		}

		name := strings.TrimSpace(row["name"])
		symbol := strings.TrimSpace(row["symbol"])
		if name == "" || symbol == "" {
			continue
		}

		candidates = append(candidates, candidate{
			name:      name,
			symbol:    strings.ToLower(symbol),
			marketCap: mc,
		})
	}

	if len(candidates) == 0 {
		return &models.MWordmapResponse{
			Success: false,
			Message: "no coins match the given market cap filter",
			Entries: []models.MWordmapEntry{},
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].marketCap > candidates[j].marketCap
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	minCap := candidates[len(candidates)-1].marketCap
	maxCap := candidates[0].marketCap
	capRange := maxCap - minCap
	if capRange == 0 {
		capRange = 1
	}

	entries := make([]models.MWordmapEntry, len(candidates))
	for i, c := range candidates {
		ratio := (c.marketCap - minCap) / capRange
		entries[i] = models.MWordmapEntry{
			Rank:      i + 1,
			Name:      c.name,
			Symbol:    c.symbol,
			MarketCap: core.Round2(c.marketCap),
			Size:      core.Round2(10 + ratio*90),
			Hue:       core.Round2(ratio * 120),
		}
	}

	return &models.MWordmapResponse{
		Success: true,
		Entries: entries,
		Total:   len(entries),
	}
}
