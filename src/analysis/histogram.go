package analysis

import (
	"fmt"
	"math"
	"sort"

	"coinscope/src/analysis/core"
	"coinscope/src/dataset"
	"coinscope/src/models"
)

// -----------------------------------------------------------------------------

// Histogram bins the strictly positive finite values of a column into
// equal-width buckets on a base-10 log scale. Zero-count buckets are
// omitted from the payload but still count toward percentage denominators.
func (a *Analyzer) Histogram(rows []models.MRow, column string, binCount int) *models.MHistogramResponse {
	values := dataset.PositiveColumn(rows, column)
	if len(values) == 0 {
		return &models.MHistogramResponse{
			Success: false,
			Message: fmt.Sprintf("no positive values available for column '%s'", column),
			Column:  column,
			Bins:    []models.MHistogramBin{},
		}
	}

	sort.Float64s(values)
	minV := values[0]
	maxV := values[len(values)-1]

	logMin := math.Log10(minV)
	logRange := math.Log10(maxV) - logMin
	if logRange == 0 {
		logRange = 1
	}
	binSize := logRange / float64(binCount)

	counts := make([]int, binCount)
	for _, v := range values {
		idx := int(math.Floor((math.Log10(v) - logMin) / binSize))
		if idx < 0 {
			idx = 0
		}
		if idx > binCount-1 {
			idx = binCount - 1
		}
		counts[idx]++
	}

	total := len(values)
	bins := make([]models.MHistogramBin, 0, binCount)
	for i, count := range counts {
		if count == 0 {
			continue
		}

		start := math.Pow(10, logMin+float64(i)*binSize)
		end := math.Pow(10, logMin+float64(i+1)*binSize)

		bins = append(bins, models.MHistogramBin{
			RangeStart: core.Round4(start),
			RangeEnd:   core.Round4(end),
			Label:      core.ExponentLabel(start),
			RangeLabel: fmt.Sprintf("%s - %s", core.AbbreviateNumber(start), core.AbbreviateNumber(end)),
			Count:      count,
			Percentage: core.Round2(float64(count) / float64(total) * 100),
			Color:      binColor(i, binCount),
		})
	}

	return &models.MHistogramResponse{
		Success:     true,
		Column:      column,
		Bins:        bins,
		Stats:       summarize(values),
		TotalValues: total,
	}
}

// -----------------------------------------------------------------------------

// binColor interpolates the hue from blue toward red across the bin range.
func binColor(index, binCount int) string {
	span := binCount - 1
	if span < 1 {
		span = 1
	}
	hue := 210 - int(240*float64(index)/float64(span))
	if hue < 0 {
		hue += 360
	}
	return fmt.Sprintf("hsl(%d, 70%%, 50%%)", hue)
}
