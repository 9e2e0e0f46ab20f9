package core

import (
	"math"
	"testing"
)

// -----------------------------------------------------------------------------

func TestCalculateMeanStd(t *testing.T) {
	mean, std := CalculateMeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 {
		t.Fatalf("expected mean 5, got %f", mean)
	}
	if std != 2 {
		t.Fatalf("expected population std 2, got %f", std)
	}

	mean, std = CalculateMeanStd(nil)
	if mean != 0 || std != 0 {
		t.Fatalf("expected zeros for empty input, got %f %f", mean, std)
	}

	_, std = CalculateMeanStd([]float64{42})
	if std != 0 {
		t.Fatalf("expected std 0 for single element, got %f", std)
	}
}

// -----------------------------------------------------------------------------

func TestCalculateCorrelationPerfect(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	r := CalculateCorrelation(x, y)
	if math.Abs(r-1) > 1e-12 {
		t.Fatalf("expected correlation 1 for y=2x, got %f", r)
	}

	for i := range y {
		y[i] = -y[i]
	}
	r = CalculateCorrelation(x, y)
	if math.Abs(r+1) > 1e-12 {
		t.Fatalf("expected correlation -1 for y=-2x, got %f", r)
	}
}

// -----------------------------------------------------------------------------

func TestCalculateCorrelationDegenerate(t *testing.T) {
	if r := CalculateCorrelation([]float64{1}, []float64{2}); r != 0 {
		t.Fatalf("expected 0 for too-short input, got %f", r)
	}
	if r := CalculateCorrelation([]float64{1, 2}, []float64{3}); r != 0 {
		t.Fatalf("expected 0 for mismatched lengths, got %f", r)
	}
	if r := CalculateCorrelation([]float64{5, 5, 5}, []float64{1, 2, 3}); r != 0 {
		t.Fatalf("expected 0 for zero variance, got %f", r)
	}
}

// -----------------------------------------------------------------------------

func TestCalculateMedian(t *testing.T) {
	if m := CalculateMedian([]float64{3, 1, 2}); m != 2 {
		t.Fatalf("expected median 2, got %f", m)
	}
	if m := CalculateMedian([]float64{4, 1, 3, 2}); m != 2.5 {
		t.Fatalf("expected median 2.5, got %f", m)
	}
	if m := CalculateMedian(nil); m != 0 {
		t.Fatalf("expected median 0 for empty input, got %f", m)
	}

	// Input must stay untouched
	data := []float64{3, 1, 2}
	CalculateMedian(data)
	if data[0] != 3 {
		t.Fatalf("expected input order preserved, got %v", data)
	}
}

// -----------------------------------------------------------------------------

func TestCalculatePercentile(t *testing.T) {
	data := []float64{10, 20, 30, 40, 50}

	if p := CalculatePercentile(data, 0); p != 10 {
		t.Fatalf("expected p0 = 10, got %f", p)
	}
	if p := CalculatePercentile(data, 100); p != 50 {
		t.Fatalf("expected p100 = 50, got %f", p)
	}
	if p := CalculatePercentile(data, 50); p != 30 {
		t.Fatalf("expected p50 = 30, got %f", p)
	}
	if p := CalculatePercentile(data, 25); p != 20 {
		t.Fatalf("expected p25 = 20, got %f", p)
	}
	if p := CalculatePercentile(data, 90); math.Abs(p-46) > 1e-12 {
		t.Fatalf("expected p90 = 46, got %f", p)
	}
}

// -----------------------------------------------------------------------------

func TestRounding(t *testing.T) {
	if v := Round2(1.005); v != 1.01 {
		t.Fatalf("expected 1.01, got %v", v)
	}
	if v := Round4(0.123456); v != 0.1235 {
		t.Fatalf("expected 0.1235, got %v", v)
	}
}

// -----------------------------------------------------------------------------

func TestAbbreviateNumber(t *testing.T) {
	cases := map[float64]string{
		950:     "950.00",
		1500:    "1.50K",
		2500000: "2.50M",
		3.2e9:   "3.20B",
		1.5e12:  "1.50T",
	}
	for in, want := range cases {
		if got := AbbreviateNumber(in); got != want {
			t.Fatalf("AbbreviateNumber(%v): expected %q, got %q", in, want, got)
		}
	}
}
