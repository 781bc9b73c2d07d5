package stats

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"
)

func TestSummarize(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := Summarize(lo.Map(c.scores, func(x int, _ int) float64 { return float64(x) }))
		is.Equal(s.N, len(c.scores))
		is.True(FuzzyEqual(s.Mean, c.mean))
		is.True(FuzzyEqual(s.StdDev, c.stdev))
	}
}

func TestSummarizeOrderStats(t *testing.T) {
	is := is.New(t)
	xs := []float64{23, 10, 16, 23, 12, 21, 16, 23}
	s := Summarize(xs)
	is.Equal(s.Min, 10.0)
	is.Equal(s.Max, 23.0)
	is.Equal(s.Median, 16.0)
	is.Equal(s.P90, 23.0)
	is.Equal(xs[0], 23.0) // input untouched
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(FuzzyEqual(ZVal(99), 2.5758293035489004))
}

func TestConfidenceInterval(t *testing.T) {
	is := is.New(t)
	s := Summary{N: 100, Mean: 10, StdDev: 5}
	low, high := s.ConfidenceInterval(95)
	is.True(FuzzyEqual(low, 10-1.959963984540054*0.5))
	is.True(FuzzyEqual(high, 10+1.959963984540054*0.5))
}

func TestFprintHistogram(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(FprintHistogram(&buf, []float64{1, 2, 2, 3, 3, 3, 4}, 4, 10))
	is.True(buf.Len() > 0)

	buf.Reset()
	is.NoErr(FprintHistogram(&buf, nil, 4, 10))
	is.Equal(buf.Len(), 0)
}
