package server

import (
	"strconv"
	"strings"

	"coinscope/src/dataset"
	"coinscope/src/models"
	"coinscope/src/utils"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// Route Handlers. Every endpoint answers HTTP 200; "no data" conditions are
// success:false payloads, and out-of-range parameters are clamped, never
// rejected.
// -----------------------------------------------------------------------------

func (s *APIServer) getCoins(c *gin.Context) {
	snap := s.Loader.EnsureLoaded()

	page := intQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := utils.ClampInt(intQuery(c, "limit", utils.DefaultPageLimit), 1, utils.MaxPageLimit)
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	filtered := snap.Rows
	if search != "" {
		filtered = make([]models.MRow, 0, len(snap.Rows))
		for _, row := range snap.Rows {
			if rowMatches(row, search) {
				filtered = append(filtered, row)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	coins := make([]models.MCoin, 0, end-start)
	for _, row := range filtered[start:end] {
		coins = append(coins, dataset.NormalizeCoinData(row))
	}

	c.JSON(200, models.MCoinsResponse{
		Success: true,
		Data:    coins,
		Pagination: models.MPagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getHistogram(c *gin.Context) {
	snap := s.Loader.EnsureLoaded()

	bins := utils.ClampInt(intQuery(c, "bins", utils.DefaultHistogramBins),
		utils.MinHistogramBins, utils.MaxHistogramBins)

	c.JSON(200, s.Analyzer.Histogram(snap.Rows, utils.HistogramColumn, bins))
}

// -----------------------------------------------------------------------------

func (s *APIServer) getScatter(c *gin.Context) {
	snap := s.Loader.EnsureLoaded()

	xColumn := strings.TrimSpace(c.Query("x"))
	if xColumn == "" {
		xColumn = utils.DefaultScatterX
	}
	yColumn := strings.TrimSpace(c.Query("y"))
	if yColumn == "" {
		yColumn = utils.DefaultScatterY
	}
	bins := utils.ClampInt(intQuery(c, "bins", utils.DefaultScatterBins),
		utils.MinScatterBins, utils.MaxScatterBins)

	c.JSON(200, s.Analyzer.Scatter(snap.Rows, xColumn, yColumn, bins))
}

// -----------------------------------------------------------------------------

func (s *APIServer) getHeatmap(c *gin.Context) {
	snap := s.Loader.EnsureLoaded()

	var columns []string
	if raw := strings.TrimSpace(c.Query("columns")); raw != "" {
		for _, col := range strings.Split(raw, ",") {
			if col = strings.TrimSpace(col); col != "" {
				columns = append(columns, col)
			}
		}
	}

	c.JSON(200, s.Analyzer.Heatmap(snap.Rows, snap.Header, columns))
}

// -----------------------------------------------------------------------------

func (s *APIServer) getWordmap(c *gin.Context) {
	snap := s.Loader.EnsureLoaded()

	limit := utils.ClampInt(intQuery(c, "limit", utils.DefaultWordmapLimit),
		utils.MinWordmapLimit, utils.MaxWordmapLimit)
	minMarketCap := floatQuery(c, "min_market_cap", 0)
	if minMarketCap < 0 {
		minMarketCap = 0
	}

	c.JSON(200, s.Analyzer.Wordmap(snap.Rows, limit, minMarketCap))
}

// -----------------------------------------------------------------------------

func (s *APIServer) getHealth(c *gin.Context) {
	snap := s.Loader.EnsureLoaded()

	s.clientsMu.RLock()
	connections := len(s.clients)
	s.clientsMu.RUnlock()

	c.JSON(200, gin.H{
		"status":      "ok",
		"total_coins": snap.Count,
		"source":      s.Loader.SourceName(),
		"connections": connections,
	})
}

// -----------------------------------------------------------------------------
// Query Helpers
// -----------------------------------------------------------------------------

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// -----------------------------------------------------------------------------

func floatQuery(c *gin.Context, name string, fallback float64) float64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// -----------------------------------------------------------------------------

// rowMatches reports whether the search term appears in the row's name,
// symbol or id, case-insensitively.
func rowMatches(row models.MRow, search string) bool {
	return strings.Contains(strings.ToLower(row["name"]), search) ||
		strings.Contains(strings.ToLower(row["symbol"]), search) ||
		strings.Contains(strings.ToLower(row["id"]), search)
}
