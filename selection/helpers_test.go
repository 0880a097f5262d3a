package selection

import (
	"math"
	"math/rand"

	"github.com/grailbio/binsel/interval"
)

// makeBins lays scores out as contiguous 200-nt bins on one chromosome.
func makeBins(chrom string, s []float64) []Bin {
	bins := make([]Bin, len(s))
	for i, score := range s {
		bins[i] = Bin{
			Chrom: chrom,
			Start: interval.PosType(i * 200),
			End:   interval.PosType((i + 1) * 200),
			Score: score,
		}
	}
	return bins
}

// randomBins returns 1-3 chromosomes of contiguous bins with small integer
// scores, including zeros.
func randomBins(r *rand.Rand, maxPerChrom int) []Bin {
	var bins []Bin
	nChrom := r.Intn(3) + 1
	for c := 0; c < nChrom; c++ {
		s := make([]float64, r.Intn(maxPerChrom))
		for i := range s {
			s[i] = float64(r.Intn(10))
		}
		bins = append(bins, makeBins(string(rune('a'+c)), s)...)
	}
	return bins
}

// indexOf maps selected bins back to their input indices.
func indexOf(bins, selected []Bin) []int {
	pos := map[Bin]int{}
	for i, b := range bins {
		b.Score = 0
		pos[b] = i
	}
	idx := make([]int, len(selected))
	for k, b := range selected {
		b.Score = 0
		idx[k] = pos[b]
	}
	return idx
}

func windowMax(s []float64, lo, hi int) float64 {
	best := math.Inf(-1)
	for i := lo; i < hi; i++ {
		best = math.Max(best, s[i])
	}
	return best
}
