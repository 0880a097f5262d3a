package selection

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/grailbio/binsel/interval"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func overlaps(a, b Bin) bool {
	return a.Chrom == b.Chrom && a.Start < b.End && b.Start < a.End
}

func totalScore(bins []Bin) float64 {
	total := 0.0
	for _, b := range bins {
		total += b.Score
	}
	return total
}

// bruteForceWIS returns the best total score over all pairwise disjoint
// subsets.
func bruteForceWIS(bins []Bin) float64 {
	best := 0.0
	n := len(bins)
	for mask := 0; mask < 1<<uint(n); mask++ {
		total := 0.0
		ok := true
		for i := 0; i < n && ok; i++ {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			for j := i + 1; j < n; j++ {
				if mask&(1<<uint(j)) != 0 && overlaps(bins[i], bins[j]) {
					ok = false
					break
				}
			}
			total += bins[i].Score
		}
		if ok && total > best {
			best = total
		}
	}
	return best
}

// randomIntervals returns up to n rows of varying width over 1-2
// chromosomes, sorted by end within each chromosome.
func randomIntervals(r *rand.Rand, n int) []Bin {
	var rows []Bin
	for c, chrom := range []string{"chr1", "chr2"}[:r.Intn(2)+1] {
		m := r.Intn(n/2 + 1)
		if c == 0 {
			m = n - m
		}
		var chromRows []Bin
		for i := 0; i < m; i++ {
			start := interval.PosType(r.Intn(100))
			chromRows = append(chromRows, Bin{
				Chrom: chrom,
				Start: start,
				End:   start + interval.PosType(r.Intn(30)+1),
				Score: float64(r.Intn(20)),
			})
		}
		sort.SliceStable(chromRows, func(i, j int) bool { return chromRows[i].End < chromRows[j].End })
		rows = append(rows, chromRows...)
	}
	return rows
}

func TestWISMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 300; iter++ {
		rows := randomIntervals(r, r.Intn(15))
		selected, err := WISSelector{}.Select(rows, 0)
		assert.NoError(t, err)
		for a := range selected {
			for b := a + 1; b < len(selected); b++ {
				expect.False(t, overlaps(selected[a], selected[b]), "%v overlaps %v", selected[a], selected[b])
			}
		}
		expect.True(t, math.Abs(totalScore(selected)-bruteForceWIS(rows)) < 1e-9,
			"rows %v: got %v (%v), want %v", rows, selected, totalScore(selected), bruteForceWIS(rows))
	}
}

func TestWISSmall(t *testing.T) {
	rows := []Bin{
		{"chr1", 0, 100, 5},
		{"chr1", 50, 150, 7},
		{"chr1", 100, 200, 5},
		{"chr2", 0, 10, 1},
		{"chr2", 5, 20, 0},
	}
	selected, err := WISSelector{}.Select(rows, 0)
	assert.NoError(t, err)
	// Touching intervals are compatible; 5+5 beats 7.
	expect.EQ(t, selected, []Bin{rows[0], rows[2], rows[3]})
}

func TestWISFirstRow(t *testing.T) {
	rows := []Bin{
		{"chr1", 0, 10, 3},
		{"chr1", 5, 20, 2},
	}
	selected, err := WISSelector{}.Select(rows, 0)
	assert.NoError(t, err)
	expect.EQ(t, selected, []Bin{rows[0]})
}

func TestWISEmpty(t *testing.T) {
	selected, err := WISSelector{}.Select(nil, 0)
	assert.NoError(t, err)
	expect.EQ(t, len(selected), 0)
}

func TestWISUnsorted(t *testing.T) {
	tests := [][]Bin{
		{{"chr1", 0, 100, 1}, {"chr1", 10, 50, 1}},
		{{"chr1", 0, 100, 1}, {"chr2", 0, 10, 1}, {"chr1", 100, 200, 1}},
	}
	for _, rows := range tests {
		_, err := WISSelector{}.Select(rows, 0)
		expect.NotNil(t, err, "rows %v", rows)
	}
}

func TestWISPredecessors(t *testing.T) {
	lin := []linearInterval{
		{0, 10, 1},
		{10, 20, 1},
		{5, 25, 1},
		{20, 30, 1},
		{30, 30, 1},
	}
	expect.EQ(t, predecessors(lin), []int{-1, 0, -1, 1, 3})
}
