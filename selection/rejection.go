package selection

import (
	"github.com/grailbio/base/bitset"
)

// rejectionVector marks bins that lie within the exclusion radius of an
// accepted bin.  Bits are only ever set.
type rejectionVector struct {
	bits []uintptr
	n    int
}

func newRejectionVector(n int) rejectionVector {
	return rejectionVector{
		bits: make([]uintptr, (n+bitset.BitsPerWord-1)/bitset.BitsPerWord),
		n:    n,
	}
}

// window returns the exclusion window [lo, hi) of bin i.
func (r *rejectionVector) window(i, windowSpan int) (lo, hi int) {
	lo = i - windowSpan
	if lo < 0 {
		lo = 0
	}
	hi = i + windowSpan + 1
	if hi > r.n {
		hi = r.n
	}
	return
}

// wordMask returns the bits of word w that fall in [lo, hi).  [lo, hi) must
// intersect word w.
func wordMask(w, lo, hi int) uintptr {
	first, limit := lo-w*bitset.BitsPerWord, hi-w*bitset.BitsPerWord
	mask := ^uintptr(0)
	if first > 0 {
		mask <<= uint(first)
	}
	if limit < bitset.BitsPerWord {
		mask &= (uintptr(1) << uint(limit)) - 1
	}
	return mask
}

// free returns true iff no bin in [lo, hi) is marked.
func (r *rejectionVector) free(lo, hi int) bool {
	if lo >= hi {
		return true
	}
	for w := lo / bitset.BitsPerWord; w <= (hi-1)/bitset.BitsPerWord; w++ {
		if r.bits[w]&wordMask(w, lo, hi) != 0 {
			return false
		}
	}
	return true
}

// mark marks every bin in [lo, hi).
func (r *rejectionVector) mark(lo, hi int) {
	if lo >= hi {
		return
	}
	for w := lo / bitset.BitsPerWord; w <= (hi-1)/bitset.BitsPerWord; w++ {
		r.bits[w] |= wordMask(w, lo, hi)
	}
}

// tryAccept marks the window of bin i and returns true if it was free.
func (r *rejectionVector) tryAccept(i, windowSpan int) bool {
	lo, hi := r.window(i, windowSpan)
	if !r.free(lo, hi) {
		return false
	}
	r.mark(lo, hi)
	return true
}
