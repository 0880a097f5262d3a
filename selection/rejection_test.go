package selection

import (
	"math/rand"
	"testing"

	"github.com/grailbio/base/bitset"
	"github.com/grailbio/testutil/expect"
)

func TestRejectionVectorWordBoundaries(t *testing.T) {
	n := 3*bitset.BitsPerWord + 5
	r := newRejectionVector(n)
	r.mark(bitset.BitsPerWord-2, 2*bitset.BitsPerWord+1)
	for i := 0; i < n; i++ {
		want := i >= bitset.BitsPerWord-2 && i < 2*bitset.BitsPerWord+1
		expect.EQ(t, bitset.Test(r.bits, i), want, "bit %d", i)
	}
	expect.True(t, r.free(0, bitset.BitsPerWord-2))
	expect.False(t, r.free(0, bitset.BitsPerWord-1))
	expect.True(t, r.free(2*bitset.BitsPerWord+1, n))
	expect.False(t, r.free(2*bitset.BitsPerWord, n))
	expect.True(t, r.free(5, 5))
}

func TestRejectionVectorMatchesBitwise(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for iter := 0; iter < 100; iter++ {
		n := rnd.Intn(4*bitset.BitsPerWord) + 1
		r := newRejectionVector(n)
		ref := make([]bool, n)
		for op := 0; op < 20; op++ {
			lo := rnd.Intn(n)
			hi := lo + rnd.Intn(n-lo+1)
			want := true
			for i := lo; i < hi; i++ {
				if ref[i] {
					want = false
				}
			}
			expect.EQ(t, r.free(lo, hi), want, "free(%d, %d)", lo, hi)
			if rnd.Intn(3) == 0 {
				r.mark(lo, hi)
				for i := lo; i < hi; i++ {
					ref[i] = true
				}
			}
		}
		for i := 0; i < n; i++ {
			expect.EQ(t, bitset.Test(r.bits, i), ref[i], "bit %d", i)
		}
	}
}
