package stats

import (
	"io"

	"github.com/aybabtme/uniplot/histogram"
)

// FprintHistogram draws xs as a text histogram with the given number of
// bins, scaling the longest bar to width characters. Nothing is written for
// an empty sample.
func FprintHistogram(w io.Writer, xs []float64, bins, width int) error {
	if len(xs) == 0 {
		return nil
	}
	h := histogram.Hist(bins, xs)
	return histogram.Fprint(w, h, histogram.Linear(width))
}
