package regression

import (
	"math"
	"testing"
)

func TestCompare_Identical(t *testing.T) {
	values := []float64{1, 3, 2, 5, 4}
	c := Compare(values, values)

	if c.N != 5 {
		t.Errorf("Expected 5 pairs, got %d", c.N)
	}
	if c.MeanDiff != 0 || c.PValue != 1 {
		t.Errorf("Expected no difference, got mean=%f p=%f", c.MeanDiff, c.PValue)
	}
	if c.CI95Low != 0 || c.CI95High != 0 {
		t.Errorf("Expected a degenerate interval at 0, got [%f, %f]", c.CI95Low, c.CI95High)
	}
}

func TestCompare_Shift(t *testing.T) {
	baseline := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	candidate := []float64{2, 3, 5, 5, 6, 8, 8, 9}
	c := Compare(baseline, candidate)

	if math.Abs(c.MeanDiff-1.25) > 1e-9 {
		t.Errorf("Expected mean difference 1.25, got %f", c.MeanDiff)
	}
	// Differences are six 1s and two 2s: sample variance 1.5/7.
	if math.Abs(c.StdDev-math.Sqrt(1.5/7)) > 1e-9 {
		t.Errorf("Expected std dev %f, got %f", math.Sqrt(1.5/7), c.StdDev)
	}
	if c.PValue >= 0.001 {
		t.Errorf("Expected a highly significant p-value, got %f", c.PValue)
	}
	if c.CI95Low <= 0 || c.CI95High <= c.CI95Low {
		t.Errorf("Expected a positive interval, got [%f, %f]", c.CI95Low, c.CI95High)
	}
	if InterpretEffectSize(c.EffectSize) != "large" {
		t.Errorf("Expected a large effect, got %f", c.EffectSize)
	}
}

func TestCompare_ConstantShift(t *testing.T) {
	c := Compare([]float64{1, 2, 3}, []float64{0, 1, 2})

	if c.MeanDiff != -1 {
		t.Errorf("Expected mean difference -1, got %f", c.MeanDiff)
	}
	if c.PValue != 0 {
		t.Errorf("Expected p-value 0 for a constant shift, got %f", c.PValue)
	}
	if !math.IsInf(c.TStatistic, -1) {
		t.Errorf("Expected -Inf t statistic, got %f", c.TStatistic)
	}
}

func TestCompare_TooFewPairs(t *testing.T) {
	tests := []struct {
		name      string
		baseline  []float64
		candidate []float64
		n         int
	}{
		{"empty", nil, nil, 0},
		{"single", []float64{2}, []float64{4}, 1},
		{"uneven", []float64{2}, []float64{4, 5, 6}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compare(tt.baseline, tt.candidate)
			if c.N != tt.n {
				t.Errorf("Expected %d pairs, got %d", tt.n, c.N)
			}
			if c.PValue != 1 {
				t.Errorf("Expected p-value 1, got %f", c.PValue)
			}
		})
	}
}

func TestCalculatePValue(t *testing.T) {
	if p := calculatePValue(0, 10); math.Abs(p-1) > 1e-9 {
		t.Errorf("Expected p=1 at t=0, got %f", p)
	}
	// Two-tailed critical value of Student's t with 10 df at 5%.
	if p := calculatePValue(2.228, 10); math.Abs(p-0.05) > 1e-3 {
		t.Errorf("Expected p≈0.05 at t=2.228, got %f", p)
	}
	if p := calculatePValue(3, 0); p != 1 {
		t.Errorf("Expected p=1 without degrees of freedom, got %f", p)
	}
}

func TestInterpretEffectSize(t *testing.T) {
	tests := []struct {
		d    float64
		want string
	}{
		{0.1, "negligible"},
		{-0.3, "small"},
		{0.6, "medium"},
		{-1.2, "large"},
	}

	for _, tt := range tests {
		if got := InterpretEffectSize(tt.d); got != tt.want {
			t.Errorf("InterpretEffectSize(%f) = %s, want %s", tt.d, got, tt.want)
		}
	}
}

func TestInterpretPValue(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0.0005, "highly significant"},
		{0.005, "very significant"},
		{0.03, "significant"},
		{0.07, "marginally significant"},
		{0.5, "not significant"},
	}

	for _, tt := range tests {
		if got := InterpretPValue(tt.p, 0.05); got != tt.want {
			t.Errorf("InterpretPValue(%f) = %s, want %s", tt.p, got, tt.want)
		}
	}
}
