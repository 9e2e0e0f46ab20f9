package analysis

import (
	"coinscope/src/analysis/core"
	"coinscope/src/dataset"
	"coinscope/src/logger"
	"coinscope/src/models"
)

// -----------------------------------------------------------------------------

// Analyzer computes the derived analytical views. All methods are pure
// functions over the rows they are handed; nothing is cached between calls.
type Analyzer struct {
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAnalyzer(log *logger.Logger) *Analyzer {
	return &Analyzer{Logger: log}
}

// -----------------------------------------------------------------------------

// MarketCapSummary computes the summary statistics of the strictly positive
// market caps, used by the websocket snapshot. Returns nil when the dataset
// has no usable values.
func (a *Analyzer) MarketCapSummary(rows []models.MRow) *models.MSummaryStats {
	values := dataset.PositiveColumn(rows, "market_cap")
	if len(values) == 0 {
		return nil
	}
	return summarize(values)
}

// -----------------------------------------------------------------------------

// summarize shapes count/min/max/mean/median, rounded at the boundary.
func summarize(values []float64) *models.MSummaryStats {
	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	mean, _ := core.CalculateMeanStd(values)

	return &models.MSummaryStats{
		Count:  len(values),
		Min:    core.Round4(minV),
		Max:    core.Round4(maxV),
		Mean:   core.Round4(mean),
		Median: core.Round4(core.CalculateMedian(values)),
	}
}
