package analysis

import (
	"fmt"
	"math"

	"coinscope/src/analysis/core"
	"coinscope/src/dataset"
	"coinscope/src/models"
	"coinscope/src/utils"
)

// -----------------------------------------------------------------------------

// Heatmap computes the pairwise Pearson correlation matrix over numeric
// columns. Columns come from the request, or are auto-detected from the
// header minus the metadata exclusion list; a column survives only if a
// sampled value parses as a finite number and at least 80% of all rows
// carry a finite value for it.
func (a *Analyzer) Heatmap(rows []models.MRow, header []string, requested []string) *models.MHeatmapResponse {
	if len(rows) == 0 {
		return heatmapFailure("dataset is empty", 0, 0)
	}

	candidates := requested
	if len(candidates) == 0 {
		candidates = autoDetectColumns(header)
	}

	// Sampling pass: a column with no numeric cell in the first rows is out.
	sampled := make([]string, 0, len(candidates))
	sampleSize := utils.HeatmapSampleRows
	if sampleSize > len(rows) {
		sampleSize = len(rows)
	}
	for _, col := range candidates {
		if anyFiniteNumber(rows[:sampleSize], col) {
			sampled = append(sampled, col)
		}
	}

	// Completeness pass over all rows.
	threshold := int(math.Ceil(utils.HeatmapCompleteness * float64(len(rows))))
	columns := make([]string, 0, len(sampled))
	series := make([][]float64, 0, len(sampled))
	for _, col := range sampled {
		values := dataset.FiniteColumn(rows, col)
		if len(values) < threshold {
			continue
		}
		columns = append(columns, col)
		series = append(series, values)
	}

	if len(columns) < 2 {
		return heatmapFailure(
			fmt.Sprintf("need at least 2 numeric columns with %d%% completeness, found %d",
				int(utils.HeatmapCompleteness*100), len(columns)),
			len(columns), 0)
	}

	// Columns retain different lengths; truncate uniformly so every pair is
	// computed over the same sample size.
	dataPoints := len(series[0])
	for _, values := range series {
		if len(values) < dataPoints {
			dataPoints = len(values)
		}
	}
	if dataPoints < 2 {
		return heatmapFailure(
			fmt.Sprintf("need at least 2 usable data points, found %d", dataPoints),
			len(columns), dataPoints)
	}
	for i := range series {
		series[i] = series[i][:dataPoints]
	}

	matrix := make([][]float64, len(columns))
	for i := range matrix {
		matrix[i] = make([]float64, len(columns))
		matrix[i][i] = 1.0
	}
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r := core.Round4(core.CalculateCorrelation(series[i], series[j]))
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	return &models.MHeatmapResponse{
		Success:      true,
		Columns:      columns,
		Matrix:       matrix,
		FoundColumns: len(columns),
		DataPoints:   dataPoints,
	}
}

// -----------------------------------------------------------------------------

func heatmapFailure(message string, foundColumns, dataPoints int) *models.MHeatmapResponse {
	return &models.MHeatmapResponse{
		Success:      false,
		Message:      message,
		Columns:      []string{},
		Matrix:       [][]float64{},
		FoundColumns: foundColumns,
		DataPoints:   dataPoints,
	}
}

// -----------------------------------------------------------------------------

// autoDetectColumns keeps the header order, minus the metadata exclusions.
func autoDetectColumns(header []string) []string {
	excluded := make(map[string]struct{}, len(utils.HeatmapExcludedColumns))
	for _, col := range utils.HeatmapExcludedColumns {
		excluded[col] = struct{}{}
	}

	columns := make([]string, 0, len(header))
	for _, col := range header {
		if _, skip := excluded[col]; !skip {
			columns = append(columns, col)
		}
	}
	return columns
}

// -----------------------------------------------------------------------------

func anyFiniteNumber(rows []models.MRow, column string) bool {
	for _, row := range rows {
		v := dataset.CoerceValue(row[column])
		if v.Kind == dataset.ValueNumber && !math.IsNaN(v.Num) && !math.IsInf(v.Num, 0) {
			return true
		}
	}
	return false
}
