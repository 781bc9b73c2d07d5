// Package stats summarizes self-play results.
package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Summary describes a sample. StdDev is the sample (n-1) standard deviation.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	P90    float64
	Max    float64
}

// Summarize does not modify xs. An empty sample gives a zero Summary.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	s := Summary{
		N:      len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
	if s.N > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// StandardError is the standard error of the mean.
func (s Summary) StandardError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev / math.Sqrt(float64(s.N))
}

// ConfidenceInterval returns the two-sided interval around the mean for a
// confidence level given in percent.
func (s Summary) ConfidenceInterval(pct float64) (float64, float64) {
	d := ZVal(pct) * s.StandardError()
	return s.Mean - d, s.Mean + d
}

func (s Summary) String() string {
	lo, hi := s.ConfidenceInterval(95)
	return fmt.Sprintf("n=%d mean=%.3f (95%% CI %.3f-%.3f) stdev=%.3f min=%g median=%g p90=%g max=%g",
		s.N, s.Mean, lo, hi, s.StdDev, s.Min, s.Median, s.P90, s.Max)
}

// ZVal returns the two-tailed Z-value for a confidence level from 0 to 100
// percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.UnitNormal
	return dist.Quantile((1 + confidenceInterval/100) / 2)
}
