// Package rolling computes centered sliding-window statistics over a score
// track that may be split into independent segments (one per chromosome).
package rolling

import (
	"fmt"
	"math"
	"runtime"

	"github.com/grailbio/base/traverse"
)

// Centered returns, for every position k, the maximum and the arithmetic mean
// of the non-NaN scores in the window [k-halfWidth, k+halfWidth].
//
// bounds lists the start index of each segment in increasing order; the last
// segment ends at len(scores).  A nil bounds is treated as a single segment.
// A window never crosses a segment boundary: positions closer than halfWidth
// to either end of their segment get NaN, as do positions whose window holds
// fewer than halfWidth+1 non-NaN scores.
//
// Each mean is summed from its own window in index order, so two windows with
// identical contents always get identical means.  Every output position
// depends only on the input, so the work is split into up to parallelism
// contiguous jobs (0 means runtime.NumCPU()).
func Centered(scores []float64, bounds []int, halfWidth, parallelism int) (maxs, means []float64, err error) {
	if halfWidth < 0 {
		return nil, nil, fmt.Errorf("rolling.Centered: negative half-width %d", halfWidth)
	}
	n := len(scores)
	if bounds == nil {
		bounds = []int{0}
	}
	for i, b := range bounds {
		if b < 0 || b > n || (i == 0 && b != 0) || (i > 0 && b < bounds[i-1]) {
			return nil, nil, fmt.Errorf("rolling.Centered: invalid segment bounds %v for %d scores", bounds, n)
		}
	}
	maxs = make([]float64, n)
	means = make([]float64, n)
	if n == 0 {
		return
	}

	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > n {
		parallelism = n
	}
	err = traverse.Each(parallelism, func(jobIdx int) error {
		jobStart := (jobIdx * n) / parallelism
		jobEnd := ((jobIdx + 1) * n) / parallelism
		for seg := range bounds {
			segStart := bounds[seg]
			segEnd := n
			if seg+1 < len(bounds) {
				segEnd = bounds[seg+1]
			}
			if segEnd <= jobStart || segStart >= jobEnd {
				continue
			}
			lo := maxInt(jobStart, segStart)
			hi := minInt(jobEnd, segEnd)
			computeRange(scores, lo, hi, segStart, segEnd, halfWidth, maxs, means)
		}
		return nil
	})
	return
}

// computeRange fills maxs[lo:hi] and means[lo:hi], where [lo, hi) lies inside
// the segment [segStart, segEnd).
func computeRange(scores []float64, lo, hi, segStart, segEnd, halfWidth int, maxs, means []float64) {
	nan := math.NaN()
	validLo := maxInt(lo, segStart+halfWidth)
	validHi := minInt(hi, segEnd-halfWidth)
	for k := lo; k < hi; k++ {
		if k < validLo || k >= validHi {
			maxs[k] = nan
			means[k] = nan
		}
	}
	if validLo >= validHi {
		return
	}
	minCount := halfWidth + 1
	// deque holds indices of candidate maxima, scores strictly decreasing.
	deque := make([]int, 0, 2*halfWidth+1)
	next := validLo - halfWidth
	for k := validLo; k < validHi; k++ {
		for ; next <= k+halfWidth; next++ {
			v := scores[next]
			if math.IsNaN(v) {
				continue
			}
			for len(deque) > 0 && scores[deque[len(deque)-1]] <= v {
				deque = deque[:len(deque)-1]
			}
			deque = append(deque, next)
		}
		for len(deque) > 0 && deque[0] < k-halfWidth {
			deque = deque[1:]
		}
		sum, count := windowSum(scores[k-halfWidth : k+halfWidth+1])
		if count < minCount || len(deque) == 0 {
			maxs[k] = nan
			means[k] = nan
			continue
		}
		maxs[k] = scores[deque[0]]
		means[k] = sum / float64(count)
	}
}

// windowSum returns the sum and the number of the non-NaN values in w.
func windowSum(w []float64) (sum float64, count int) {
	for _, v := range w {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
	}
	return
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
