package selection

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/log"
	"github.com/grailbio/binsel/interval"
)

// WISSelector implements the WIS method: it returns the maximum-total-score
// subset of pairwise non-overlapping bins.  Touching bins do not overlap.
// The exclusion window is not used.
//
// Rows are placed on one linear axis (see interval.Translator), so the
// classic single-axis recurrence applies to the whole genome at once.  The
// rows must be sorted by end coordinate on that axis, i.e. chromosomes must
// not be split and rows within a chromosome must be sorted by end.  Select
// returns an error otherwise.
type WISSelector struct{}

// linearInterval is a row translated to absolute coordinates.
type linearInterval struct {
	start, end interval.AbsPos
	score      float64
}

// Select implements Selector.
func (WISSelector) Select(bins []Bin, _ int) ([]Bin, error) {
	lin, err := linearize(bins)
	if err != nil {
		return nil, err
	}
	p := predecessors(lin)
	opt := scheduleForward(lin, p)
	return pick(bins, scheduleTrace(lin, p, opt)), nil
}

// linearize merges the rows per chromosome, builds the offset table from the
// merged extents and translates every row.
func linearize(bins []Bin) ([]linearInterval, error) {
	// The union wants rows sorted by start within each chromosome, which
	// end-sorted rows of varying width need not be.
	rank := map[string]int{}
	entries := make([]interval.Entry, len(bins))
	for i, b := range bins {
		if _, ok := rank[b.Chrom]; !ok {
			rank[b.Chrom] = len(rank)
		}
		entries[i] = interval.Entry{ChrName: b.Chrom, Start0: b.Start, End: b.End}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := rank[entries[i].ChrName], rank[entries[j].ChrName]
		if ri != rj {
			return ri < rj
		}
		return entries[i].Start0 < entries[j].Start0
	})
	u, err := interval.NewBEDUnionFromEntries(entries)
	if err != nil {
		return nil, err
	}
	tr := interval.NewTranslator(&u)
	log.Debug.Printf("selection.WIS: %d row(s) merge into %d interval(s), linear length %d", len(bins), u.NIntervals(), tr.Len())

	lin := make([]linearInterval, len(bins))
	for i, b := range bins {
		start, err := tr.Abs(b.Chrom, b.Start)
		if err != nil {
			return nil, err
		}
		end, err := tr.Abs(b.Chrom, b.End)
		if err != nil {
			return nil, err
		}
		lin[i] = linearInterval{start: start, end: end, score: b.Score}
		if i > 0 && lin[i].end < lin[i-1].end {
			return nil, fmt.Errorf("selection.WIS: rows not sorted by end: %s:%d-%d follows %s:%d-%d",
				b.Chrom, b.Start, b.End, bins[i-1].Chrom, bins[i-1].Start, bins[i-1].End)
		}
	}
	return lin, nil
}

// predecessors returns p, where p[j] is the largest i < j whose interval ends
// at or before lin[j] starts, or -1.
func predecessors(lin []linearInterval) []int {
	ends := make([]interval.AbsPos, len(lin))
	for i := range lin {
		ends[i] = lin[i].end
	}
	p := make([]int, len(lin))
	for j := range lin {
		p[j] = interval.SearchAbsEnds(ends[:j], lin[j].start)
	}
	return p
}

// optAt returns opt[j], with opt[-1] = 0.
func optAt(opt []float64, j int) float64 {
	if j < 0 {
		return 0
	}
	return opt[j]
}

// scheduleForward fills opt, where opt[j] is the best total score using only
// lin[0..j].  A NaN score is never taken.
func scheduleForward(lin []linearInterval, p []int) []float64 {
	opt := make([]float64, len(lin))
	for j := range lin {
		take := lin[j].score + optAt(opt, p[j])
		skip := optAt(opt, j-1)
		if take > skip {
			opt[j] = take
		} else {
			opt[j] = skip
		}
	}
	return opt
}

// scheduleTrace walks opt backwards and returns the chosen indices in
// increasing order.
func scheduleTrace(lin []linearInterval, p []int, opt []float64) []int {
	var chosen []int
	for j := len(lin) - 1; j >= 0; {
		if lin[j].score+optAt(opt, p[j]) > optAt(opt, j-1) {
			chosen = append(chosen, j)
			j = p[j]
		} else {
			j--
		}
	}
	for l, r := 0, len(chosen)-1; l < r; l, r = l+1, r-1 {
		chosen[l], chosen[r] = chosen[r], chosen[l]
	}
	return chosen
}
