package selection

import (
	"context"
	"time"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// Select runs method m over bins and returns the selected bins in input
// order.  windowSpan is passed to the Selector unchanged; see Opts.WindowSpan
// for how it is derived.
func Select(bins []Bin, m Method, windowSpan, parallelism int) ([]Bin, error) {
	sel, err := NewSelector(m, parallelism)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	selected, err := sel.Select(bins, windowSpan)
	if err != nil {
		return nil, err
	}
	log.Printf("%v: selected %d of %d bin(s), window span %d, in %v", m, len(selected), len(bins), windowSpan, time.Since(start))
	return selected, nil
}

// Run validates opts, reads the input, selects and writes the result.
// Nothing is written unless the selection succeeds.
func Run(ctx context.Context, opts Opts) error {
	if err := validate(ctx, &opts); err != nil {
		return err
	}
	method := ParseMethod(opts.Method)
	bins, err := ReadBins(ctx, opts.InputPath, ReadOpts{
		Region:    opts.Region,
		Intervals: method == WIS,
	})
	if err != nil {
		return errors.E(err, "couldn't read input file:", opts.InputPath)
	}
	log.Debug.Printf("read %d row(s) from %s", len(bins), opts.InputPath)
	selected, err := Select(bins, method, opts.WindowSpan(), opts.Parallelism)
	if err != nil {
		return errors.E(err, "selection failed:", opts.InputPath)
	}
	if err := WriteBinsToPath(ctx, opts.OutputPath, selected); err != nil {
		return errors.E(err, "error writing output:", opts.OutputPath)
	}
	return nil
}
