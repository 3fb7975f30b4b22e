package regression

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Comparison is a paired comparison of two samples taken over the same
// seeds. Differences are candidate minus baseline.
type Comparison struct {
	N          int
	MeanDiff   float64
	StdDev     float64 // Of the per-seed differences
	StdError   float64
	TStatistic float64
	PValue     float64 // Two-tailed
	EffectSize float64 // Cohen's d of the differences
	CI95Low    float64
	CI95High   float64
}

// Compare runs a paired t-test of candidate against baseline. Both slices
// hold one value per seed in the same order; extra values in the longer
// slice are ignored.
func Compare(baseline, candidate []float64) Comparison {
	n := min(len(baseline), len(candidate))
	if n == 0 {
		return Comparison{PValue: 1}
	}

	diffs := make([]float64, n)
	for i := range diffs {
		diffs[i] = candidate[i] - baseline[i]
	}
	if n == 1 {
		return Comparison{N: 1, MeanDiff: diffs[0], PValue: 1, CI95Low: diffs[0], CI95High: diffs[0]}
	}

	mean, sd := stat.MeanStdDev(diffs, nil)
	c := Comparison{
		N:        n,
		MeanDiff: mean,
		StdDev:   sd,
		StdError: sd / math.Sqrt(float64(n)),
		CI95Low:  mean,
		CI95High: mean,
	}

	// Every seed moved by the same amount.
	if c.StdError == 0 {
		c.PValue = 1
		if mean != 0 {
			c.PValue = 0
			c.TStatistic = math.Inf(int(math.Copysign(1, mean)))
		}
		return c
	}

	c.TStatistic = mean / c.StdError
	c.EffectSize = mean / sd
	c.PValue = calculatePValue(c.TStatistic, n-1)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	margin := tDist.Quantile(0.975) * c.StdError
	c.CI95Low, c.CI95High = mean-margin, mean+margin
	return c
}

// calculatePValue returns the two-tailed p-value of tStat with df degrees
// of freedom.
func calculatePValue(tStat float64, df int) float64 {
	if df <= 0 {
		return 1
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	p := 2 * (1 - tDist.CDF(math.Abs(tStat)))
	return math.Max(0, math.Min(1, p))
}

// InterpretEffectSize returns a human-readable interpretation of Cohen's d
func InterpretEffectSize(d float64) string {
	absd := math.Abs(d)
	switch {
	case absd < 0.2:
		return "negligible"
	case absd < 0.5:
		return "small"
	case absd < 0.8:
		return "medium"
	default:
		return "large"
	}
}

// InterpretPValue returns a human-readable interpretation of p-value
func InterpretPValue(p float64, alpha float64) string {
	switch {
	case p < 0.001:
		return "highly significant"
	case p < 0.01:
		return "very significant"
	case p < alpha:
		return "significant"
	case p < 0.10:
		return "marginally significant"
	default:
		return "not significant"
	}
}
