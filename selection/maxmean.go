package selection

import (
	"math"
	"sort"

	"github.com/grailbio/binsel/rolling"
	"v.io/x/lib/vlog"
)

// MaxMeanSelector implements the MaxMean method.  windowSpan is the half
// width of the centered window.
//
// Bins are ranked by the maximum score in their window, then by the mean
// score in their window, then by position.  Walking that ranking, a bin is
// skipped if its own score is zero or NaN or if its window runs off either
// end of its chromosome; otherwise it is accepted when its window is free of
// marks, and the window is then marked.  Accepted bins are emitted with their
// window maximum as score.
type MaxMeanSelector struct {
	// Parallelism bounds the number of goroutines used for the rolling
	// statistics.  0 means runtime.NumCPU().
	Parallelism int
}

// Select implements Selector.
func (s MaxMeanSelector) Select(bins []Bin, windowSpan int) ([]Bin, error) {
	raw := scores(bins)
	estMax, estMean, err := rolling.Centered(raw, chromBounds(bins), windowSpan, s.Parallelism)
	if err != nil {
		return nil, err
	}
	order := rankByWindow(estMax, estMean)

	rejected := newRejectionVector(len(bins))
	var accepted []int
	for _, i := range order {
		if raw[i] == 0 || math.IsNaN(raw[i]) || math.IsNaN(estMax[i]) || math.IsNaN(estMean[i]) {
			continue
		}
		if !rejected.tryAccept(i, windowSpan) {
			continue
		}
		accepted = append(accepted, i)
		if vlog.V(2) {
			lo, hi := rejected.window(i, windowSpan)
			vlog.VI(2).Infof("maxmean: accepted %s:%d-%d, window max %v at offset %d",
				bins[i].Chrom, bins[i].Start, bins[i].End, estMax[i], argmax(raw, lo, hi)-i)
		}
	}
	sort.Ints(accepted)
	out := pick(bins, accepted)
	for k, i := range accepted {
		out[k].Score = estMax[i]
	}
	return out, nil
}

// rankByWindow returns all indices sorted by (estMax, estMean) descending,
// then by index.  Positions with NaN statistics come last.
func rankByWindow(estMax, estMean []float64) []int {
	order := make([]int, len(estMax))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool {
		a, b := order[x], order[y]
		nanA, nanB := math.IsNaN(estMax[a]), math.IsNaN(estMax[b])
		if nanA != nanB {
			return nanB
		}
		if !nanA && estMax[a] != estMax[b] {
			return estMax[a] > estMax[b]
		}
		if !nanA && estMean[a] != estMean[b] {
			return estMean[a] > estMean[b]
		}
		return a < b
	})
	return order
}

// argmax returns the index of the first maximal non-NaN score in s[lo:hi], or
// lo if there is none.
func argmax(s []float64, lo, hi int) int {
	best := lo
	for i := lo; i < hi; i++ {
		if !math.IsNaN(s[i]) && (math.IsNaN(s[best]) || s[i] > s[best]) {
			best = i
		}
	}
	return best
}
