package analysis

import (
	"fmt"
	"math"
	"testing"

	"coinscope/src/models"
)

// -----------------------------------------------------------------------------

func xyRows(pairs ...[2]string) []models.MRow {
	rows := make([]models.MRow, len(pairs))
	for i, p := range pairs {
		rows[i] = models.MRow{"current_price": p[0], "market_cap": p[1]}
	}
	return rows
}

// -----------------------------------------------------------------------------

func TestScatterPerfectCorrelation(t *testing.T) {
	var rows []models.MRow
	for i := 1; i <= 20; i++ {
		rows = append(rows, models.MRow{
			"current_price": fmt.Sprintf("%d", i),
			"market_cap":    fmt.Sprintf("%d", 2*i),
		})
	}

	resp := testAnalyzer().Scatter(rows, "current_price", "market_cap", 10)
	if !resp.Success {
		t.Fatalf("expected success, got message %q", resp.Message)
	}
	if math.Abs(resp.Correlation-1) > 1e-9 {
		t.Fatalf("expected correlation ~1 for y=2x, got %f", resp.Correlation)
	}
	if resp.TotalPairs != 20 {
		t.Fatalf("expected 20 pairs, got %d", resp.TotalPairs)
	}

	cellSum := 0
	for _, cell := range resp.Cells {
		if cell.XBin < 0 || cell.XBin > 9 || cell.YBin < 0 || cell.YBin > 9 {
			t.Fatalf("bin index out of range: %+v", cell)
		}
		if cell.Count == 0 {
			t.Fatalf("sparse cells must be non-empty")
		}
		cellSum += cell.Count
	}
	if cellSum != 20 {
		t.Fatalf("expected cell counts to sum to 20, got %d", cellSum)
	}
}

// -----------------------------------------------------------------------------

func TestScatterAxisScaleSelection(t *testing.T) {
	// x spans 1..10 (linear), y spans 1..1e9 (log)
	rows := xyRows(
		[2]string{"1", "1"},
		[2]string{"5", "100000"},
		[2]string{"10", "1000000000"},
	)

	resp := testAnalyzer().Scatter(rows, "current_price", "market_cap", 5)
	if !resp.Success {
		t.Fatalf("expected success, got message %q", resp.Message)
	}
	if resp.XAxis.Scale != "linear" {
		t.Fatalf("expected linear x axis, got %q", resp.XAxis.Scale)
	}
	if resp.YAxis.Scale != "log" {
		t.Fatalf("expected log y axis, got %q", resp.YAxis.Scale)
	}
	if resp.YAxis.Min != 1 || resp.YAxis.Max != 1000000000 {
		t.Fatalf("unexpected y bounds: %+v", resp.YAxis)
	}
}

// -----------------------------------------------------------------------------

func TestScatterSkipsInvalidPairs(t *testing.T) {
	rows := xyRows(
		[2]string{"1", "2"},
		[2]string{"", "5"},     // empty x reads as 0, dropped by positivity
		[2]string{"3", "junk"}, // non-numeric y
		[2]string{"-1", "4"},   // non-positive x
		[2]string{"2", "4"},
	)

	resp := testAnalyzer().Scatter(rows, "current_price", "market_cap", 5)
	if !resp.Success {
		t.Fatalf("expected success, got message %q", resp.Message)
	}
	if resp.TotalPairs != 2 {
		t.Fatalf("expected 2 valid pairs, got %d", resp.TotalPairs)
	}
}

// -----------------------------------------------------------------------------

func TestScatterNoValidPairs(t *testing.T) {
	rows := xyRows([2]string{"", ""}, [2]string{"junk", "-1"})

	resp := testAnalyzer().Scatter(rows, "current_price", "market_cap", 15)
	if resp.Success {
		t.Fatalf("expected success false for zero valid pairs")
	}
	if resp.Message == "" {
		t.Fatalf("expected a message naming the columns")
	}
	if resp.XColumn != "current_price" || resp.YColumn != "market_cap" {
		t.Fatalf("expected offending columns echoed, got %q %q", resp.XColumn, resp.YColumn)
	}
}
