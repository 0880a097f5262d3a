package selection

import (
	"math"
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestMaxMeanWorkedExample(t *testing.T) {
	bins := makeBins("chr1", []float64{1, 5, 2, 9, 3, 1, 8, 2, 4, 1})
	selected, err := MaxMeanSelector{Parallelism: 2}.Select(bins, 1)
	assert.NoError(t, err)
	// Index 2 ranks first: its window holds the 9 and has the highest mean.
	// Index 7 is the best window holding the 8 that is still free.
	expect.EQ(t, indexOf(bins, selected), []int{2, 7})
	expect.EQ(t, selected[0].Score, 9.0)
	expect.EQ(t, selected[1].Score, 8.0)
	expect.EQ(t, selected[0].Start, bins[2].Start)
}

func TestMaxMeanSkipsZeroScores(t *testing.T) {
	bins := makeBins("chr1", []float64{0, 0, 7, 0, 0, 0, 0})
	selected, err := MaxMeanSelector{}.Select(bins, 1)
	assert.NoError(t, err)
	// Indices 1 and 3 see the 7 but score 0 themselves.
	expect.EQ(t, indexOf(bins, selected), []int{2})
	expect.EQ(t, selected[0].Score, 7.0)
}

func TestMaxMeanTies(t *testing.T) {
	bins := makeBins("chr1", []float64{3, 3, 3, 3, 3, 3, 3, 3})
	first, err := MaxMeanSelector{}.Select(bins, 1)
	assert.NoError(t, err)
	second, err := MaxMeanSelector{Parallelism: 3}.Select(bins, 1)
	assert.NoError(t, err)
	expect.EQ(t, first, second)
	expect.EQ(t, indexOf(bins, first), []int{1, 4})
}

func TestMaxMeanFractionalTies(t *testing.T) {
	s := make([]float64, 30)
	for i := range s {
		s[i] = 0.1
	}
	bins := makeBins("chr1", s)
	selected, err := MaxMeanSelector{Parallelism: 3}.Select(bins, 1)
	assert.NoError(t, err)
	expect.EQ(t, indexOf(bins, selected), []int{1, 4, 7, 10, 13, 16, 19, 22, 25, 28})
}

func TestMaxMeanEmpty(t *testing.T) {
	selected, err := MaxMeanSelector{}.Select(nil, 3)
	assert.NoError(t, err)
	expect.EQ(t, len(selected), 0)
}

func TestMaxMeanProperties(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 200; iter++ {
		bins := randomBins(r, 50)
		raw := scores(bins)
		bounds := chromBounds(bins)
		w := r.Intn(4)
		selected, err := MaxMeanSelector{Parallelism: r.Intn(4)}.Select(bins, w)
		assert.NoError(t, err)
		idx := indexOf(bins, selected)
		for a := range idx {
			for b := a + 1; b < len(idx); b++ {
				expect.True(t, idx[b]-idx[a] > w, "w=%d idx=%v", w, idx)
			}
		}
		for k, i := range idx {
			// The window must lie inside the chromosome.
			segStart, segEnd := 0, len(bins)
			for s, b := range bounds {
				if b <= i {
					segStart = b
					if s+1 < len(bounds) {
						segEnd = bounds[s+1]
					} else {
						segEnd = len(bins)
					}
				}
			}
			expect.True(t, i-w >= segStart && i+w < segEnd, "bin %d, w=%d, chromosome [%d, %d)", i, w, segStart, segEnd)
			expect.True(t, raw[i] != 0)
			expect.EQ(t, selected[k].Score, windowMax(raw, i-w, i+w+1))
		}
	}
}

func TestRankByWindow(t *testing.T) {
	nan := math.NaN()
	estMax := []float64{nan, 4, 9, 9, 4, nan}
	estMean := []float64{nan, 2, 3, 5, 2, nan}
	expect.EQ(t, rankByWindow(estMax, estMean), []int{3, 2, 1, 4, 0, 5})
}
