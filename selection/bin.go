package selection

import (
	"github.com/grailbio/binsel/interval"
)

// Bin is one genomic interval with a score.  Start is 0-based and End is
// exclusive.  For the PQ and MaxMean methods every bin of a chromosome has the
// same width, except possibly the last one; WIS rows may have any width.
type Bin struct {
	Chrom string
	Start interval.PosType
	End   interval.PosType
	Score float64
}

// chromBounds returns the index of the first bin of each chromosome run.
func chromBounds(bins []Bin) []int {
	var bounds []int
	for i := range bins {
		if i == 0 || bins[i].Chrom != bins[i-1].Chrom {
			bounds = append(bounds, i)
		}
	}
	if bounds == nil {
		bounds = []int{0}
	}
	return bounds
}

func scores(bins []Bin) []float64 {
	s := make([]float64, len(bins))
	for i := range bins {
		s[i] = bins[i].Score
	}
	return s
}

// pick returns bins[idx[0]], bins[idx[1]], ...
func pick(bins []Bin, idx []int) []Bin {
	out := make([]Bin, len(idx))
	for i, j := range idx {
		out[i] = bins[j]
	}
	return out
}
