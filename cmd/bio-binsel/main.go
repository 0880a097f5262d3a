package main

/*
bio-binsel selects the peaks of a binned genome-wide signal so that no two
selected bins are closer than --exclusion-span bases.  The selected rows are
written as chrom, start, end, score TSV.  For more information, see
github.com/grailbio/binsel/selection/doc.go
*/

import (
	"flag"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/binsel/selection"
)

var (
	method        = flag.String("method", "", "Selection method: 'pq', 'wis' or 'maxmean' (required)")
	inputFn       = flag.String("input-fn", "", "Input path; chrom, start, end, score rows (pq, maxmean) or chrom, start, end, name rows (wis). .gz input is decompressed (required)")
	binSize       = flag.Int("bin-size", selection.DefaultOpts.BinSize, "Bin size in nt")
	exclusionSpan = flag.Int("exclusion-span", selection.DefaultOpts.ExclusionSpan, "Minimum distance between selected bins in nt")
	output        = flag.String("output", "", "Output path; default stdout")
	region        = flag.String("region", "", "Restrict selection to the specified region. Format as <contig ID>:<1-based first pos>-<last pos>, <contig ID>:<1-based pos>, or just <contig ID>")
	parallelism   = flag.Int("parallelism", 0, "Maximum number of goroutines for the maxmean rolling statistics; 0 = runtime.NumCPU()")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 0 {
		a := flag.Args()
		log.Fatalf("unparsed flags, please check flag syntax: '%s'", strings.Join(a[len(a)-flag.NArg():], " "))
	}

	opts := selection.Opts{
		Method:        *method,
		InputPath:     *inputFn,
		OutputPath:    *output,
		BinSize:       *binSize,
		ExclusionSpan: *exclusionSpan,
		Region:        *region,
		Parallelism:   *parallelism,
	}
	ctx := vcontext.Background()
	if err := selection.Run(ctx, opts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
