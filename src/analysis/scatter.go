package analysis

import (
	"fmt"
	"math"
	"sort"

	"coinscope/src/analysis/core"
	"coinscope/src/dataset"
	"coinscope/src/models"
	"coinscope/src/utils"
)

// -----------------------------------------------------------------------------

// Scatter computes a sparse 2D binned density over two columns plus the
// Pearson correlation of the raw pairs. An axis whose value range exceeds
// the log-scale threshold is binned logarithmically, otherwise linearly.
func (a *Analyzer) Scatter(rows []models.MRow, xColumn, yColumn string, binCount int) *models.MScatterResponse {
	xs, ys := pairedColumns(rows, xColumn, yColumn)
	if len(xs) == 0 {
		return &models.MScatterResponse{
			Success: false,
			Message: fmt.Sprintf("no valid data points found for columns '%s' and '%s'", xColumn, yColumn),
			XColumn: xColumn,
			YColumn: yColumn,
			Cells:   []models.MScatterCell{},
		}
	}

	xAxis := buildAxis(xs, binCount)
	yAxis := buildAxis(ys, binCount)

	cellCounts := make(map[[2]int]int)
	for i := range xs {
		key := [2]int{binIndex(xs[i], xAxis), binIndex(ys[i], yAxis)}
		cellCounts[key]++
	}

	cells := make([]models.MScatterCell, 0, len(cellCounts))
	for key, count := range cellCounts {
		cells = append(cells, models.MScatterCell{XBin: key[0], YBin: key[1], Count: count})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].XBin != cells[j].XBin {
			return cells[i].XBin < cells[j].XBin
		}
		return cells[i].YBin < cells[j].YBin
	})

	return &models.MScatterResponse{
		Success:     true,
		XColumn:     xColumn,
		YColumn:     yColumn,
		Cells:       cells,
		XAxis:       roundAxis(xAxis),
		YAxis:       roundAxis(yAxis),
		Correlation: core.Round4(core.CalculateCorrelation(xs, ys)),
		TotalPairs:  len(xs),
	}
}

// -----------------------------------------------------------------------------

// pairedColumns extracts the rows where both columns read as finite,
// strictly positive numbers.
func pairedColumns(rows []models.MRow, xColumn, yColumn string) ([]float64, []float64) {
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))

	for _, row := range rows {
		x, okX := dataset.CoerceValue(row[xColumn]).Float()
		y, okY := dataset.CoerceValue(row[yColumn]).Float()
		if !okX || !okY {
			continue
		}
		if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
			continue
		}
		if math.IsNaN(y) || math.IsInf(y, 0) || y <= 0 {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

// -----------------------------------------------------------------------------

type axis struct {
	min      float64
	max      float64
	valRange float64
	log      bool
	binCount int
	binSize  float64
}

// -----------------------------------------------------------------------------

func buildAxis(values []float64, binCount int) axis {
	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	valRange := maxV - minV
	useLog := valRange > utils.LogScaleThreshold

	var span float64
	if useLog {
		span = math.Log10(maxV) - math.Log10(minV)
	} else {
		span = valRange
	}
	if span == 0 {
		span = 1
	}

	return axis{
		min:      minV,
		max:      maxV,
		valRange: valRange,
		log:      useLog,
		binCount: binCount,
		binSize:  span / float64(binCount),
	}
}

// -----------------------------------------------------------------------------

func binIndex(v float64, ax axis) int {
	var offset float64
	if ax.log {
		offset = math.Log10(v) - math.Log10(ax.min)
	} else {
		offset = v - ax.min
	}

	idx := int(math.Floor(offset / ax.binSize))
	if idx < 0 {
		idx = 0
	}
	if idx > ax.binCount-1 {
		idx = ax.binCount - 1
	}
	return idx
}

// -----------------------------------------------------------------------------

func roundAxis(ax axis) *models.MAxisScale {
	scale := "linear"
	if ax.log {
		scale = "log"
	}
	return &models.MAxisScale{
		Min:      core.Round4(ax.min),
		Max:      core.Round4(ax.max),
		Range:    core.Round4(ax.valRange),
		Scale:    scale,
		BinCount: ax.binCount,
	}
}
