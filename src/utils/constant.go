package utils

// -----------------------------------------------------------------------------
// Query parameter bounds. Out-of-range values are clamped to the nearest
// bound, never rejected.
// -----------------------------------------------------------------------------

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 250

	DefaultHistogramBins = 20
	MinHistogramBins     = 5
	MaxHistogramBins     = 100

	DefaultScatterBins = 15
	MinScatterBins     = 5
	MaxScatterBins     = 30

	DefaultWordmapLimit = 50
	MinWordmapLimit     = 5
	MaxWordmapLimit     = 200
)

// -----------------------------------------------------------------------------

const (
	// HistogramColumn is the column the histogram endpoint aggregates.
	HistogramColumn = "market_cap"

	DefaultScatterX = "current_price"
	DefaultScatterY = "market_cap"

	// LogScaleThreshold: a scatter axis whose value range exceeds this is
	// binned on a log scale instead of a linear one.
	LogScaleThreshold = 1000.0

	// HeatmapCompleteness: minimum fraction of rows with a finite value for
	// a column to enter the correlation matrix.
	HeatmapCompleteness = 0.80

	// HeatmapSampleRows: rows probed when auto-detecting numeric columns.
	HeatmapSampleRows = 10
)

// -----------------------------------------------------------------------------

// HeatmapExcludedColumns are metadata columns never considered numeric.
var HeatmapExcludedColumns = []string{
	"id", "symbol", "name", "image",
	"ath_date", "atl_date", "last_updated", "roi",
}

// DefaultDatasetPaths is the fallback candidate list when the config does
// not name any CSV locations.
var DefaultDatasetPaths = []string{
	"data/coins.csv",
	"../data/coins.csv",
	"coins.csv",
}

// -----------------------------------------------------------------------------

// ClampInt clamps v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
