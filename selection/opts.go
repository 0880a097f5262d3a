package selection

import (
	"context"
	"fmt"

	"github.com/grailbio/base/file"
	"github.com/grailbio/binsel/interval"
)

// Opts configures Run.
type Opts struct {
	// Method is one of "pq", "wis" or "maxmean".
	Method string
	// InputPath names the input rows: chrom, start, end, score (pq and
	// maxmean) or chrom, start, end, name with name parsed as a score (wis).
	// Gzipped input is detected by extension.
	InputPath string
	// OutputPath names the output TSV.  Empty or "-" means stdout.
	OutputPath string
	// BinSize is the width of a bin, in bases.
	BinSize int
	// ExclusionSpan is the minimum distance between two selected bins, in
	// bases.
	ExclusionSpan int
	// Region, if set, restricts the input to rows starting inside it; see
	// interval.ParseRegionString for the syntax.
	Region string
	// Parallelism bounds the goroutines used by MaxMean.  0 means
	// runtime.NumCPU().
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	BinSize:       200,
	ExclusionSpan: 24800,
}

// WindowSpan returns the exclusion window in bins.  MaxMean centers its
// window on the candidate, so it gets half of it as a radius.
func (opts *Opts) WindowSpan() int {
	span := opts.ExclusionSpan / opts.BinSize
	if ParseMethod(opts.Method) == MaxMean {
		span /= 2
	}
	return span
}

func validate(ctx context.Context, opts *Opts) error {
	if ParseMethod(opts.Method) == Unknown {
		return fmt.Errorf("unknown method %q, must be one of pq, wis, maxmean", opts.Method)
	}
	if opts.InputPath == "" {
		return fmt.Errorf("you must specify an input file with --input-fn")
	}
	if _, err := file.Stat(ctx, opts.InputPath); err != nil {
		return fmt.Errorf("input-fn %s: %v", opts.InputPath, err)
	}
	if opts.BinSize <= 0 {
		return fmt.Errorf("bin-size must be positive")
	}
	if opts.ExclusionSpan <= 0 {
		return fmt.Errorf("exclusion-span must be positive")
	}
	if opts.Parallelism < 0 {
		return fmt.Errorf("parallelism must be non-negative")
	}
	if opts.Region != "" {
		if _, err := interval.ParseRegionString(opts.Region); err != nil {
			return err
		}
	}
	return nil
}
