package selection

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
)

// GreedySelector implements the PQ method.  Bins are visited in order of
// decreasing score, ties in order of increasing index; a bin is accepted if
// none of the bins within windowSpan of it has been marked, and accepting it
// marks that whole window.  Scores are not filtered: a zero or negative score
// can still be accepted.
type GreedySelector struct{}

// scoreHeap is a max-heap on score, breaking ties by the smaller index.  NaN
// scores sort after every number.
type scoreHeap struct {
	idx    []int
	scores []float64
}

func (h *scoreHeap) Len() int { return len(h.idx) }
func (h *scoreHeap) Less(i, j int) bool {
	a, b := h.idx[i], h.idx[j]
	sa, sb := h.scores[a], h.scores[b]
	if nanA, nanB := math.IsNaN(sa), math.IsNaN(sb); nanA || nanB {
		if nanA != nanB {
			return nanB
		}
		return a < b
	}
	if sa != sb {
		return sa > sb
	}
	return a < b
}
func (h *scoreHeap) Swap(i, j int)      { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *scoreHeap) Push(x interface{}) { h.idx = append(h.idx, x.(int)) }
func (h *scoreHeap) Pop() interface{} {
	n := len(h.idx)
	x := h.idx[n-1]
	h.idx = h.idx[:n-1]
	return x
}

// Select implements Selector.
func (GreedySelector) Select(bins []Bin, windowSpan int) ([]Bin, error) {
	if windowSpan < 0 {
		return nil, fmt.Errorf("selection.PQ: negative window span %d", windowSpan)
	}
	accepted := greedyAccept(scores(bins), windowSpan)
	sort.Ints(accepted)
	return pick(bins, accepted), nil
}

// greedyAccept returns the accepted indices in acceptance order.
func greedyAccept(s []float64, windowSpan int) []int {
	n := len(s)
	h := &scoreHeap{idx: make([]int, n), scores: s}
	for i := range h.idx {
		h.idx[i] = i
	}
	heap.Init(h)
	rejected := newRejectionVector(n)
	var accepted []int
	for h.Len() > 0 {
		i := heap.Pop(h).(int)
		if rejected.tryAccept(i, windowSpan) {
			accepted = append(accepted, i)
		}
	}
	return accepted
}
