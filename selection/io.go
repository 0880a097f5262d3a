package selection

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/binsel/interval"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// ReadOpts defines the behavior of ReadBins.
type ReadOpts struct {
	// Region, if nonempty, keeps only the rows whose start lies inside it.
	Region string
	// Intervals accepts overlapping rows of any width, as WIS input.
	// Otherwise rows must be ascending and non-overlapping within each
	// chromosome.
	Intervals bool
}

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

// isHeaderLine reports whether a line is a comment or a BED track/browser
// line.
func isHeaderLine(tok []byte) bool {
	s := gunsafe.BytesToString(tok)
	return s[0] == '#' || s == "track" || s == "browser"
}

// ScanBins parses four-column rows (chrom, start, end, score) from r.  Extra
// columns are ignored.
func ScanBins(r io.Reader, opts ReadOpts) (bins []Bin, err error) {
	var region *interval.BEDUnion
	if opts.Region != "" {
		var entry interval.Entry
		if entry, err = interval.ParseRegionString(opts.Region); err != nil {
			return
		}
		var u interval.BEDUnion
		if u, err = interval.NewBEDUnionFromEntries([]interval.Entry{entry}); err != nil {
			return
		}
		region = &u
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), 1<<20)
	var tokens [4][]byte
	seen := map[string]bool{}
	lineIdx := 0
	prevChr := ""
	var prevEnd interval.PosType
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 || isHeaderLine(tokens[0]) {
			continue
		}
		if nToken != 4 {
			err = fmt.Errorf("selection.ScanBins: line %d has %d token(s), expected 4", lineIdx, nToken)
			return
		}
		var start, end int
		if start, err = strconv.Atoi(gunsafe.BytesToString(tokens[1])); err != nil {
			err = errors.Wrapf(err, "selection.ScanBins: line %d start", lineIdx)
			return
		}
		if end, err = strconv.Atoi(gunsafe.BytesToString(tokens[2])); err != nil {
			err = errors.Wrapf(err, "selection.ScanBins: line %d end", lineIdx)
			return
		}
		if start < 0 || end < start || end >= interval.PosTypeMax {
			err = fmt.Errorf("selection.ScanBins: invalid coordinate pair [%d, %d) on line %d", start, end, lineIdx)
			return
		}
		var score float64
		if score, err = strconv.ParseFloat(gunsafe.BytesToString(tokens[3]), 64); err != nil {
			err = errors.Wrapf(err, "selection.ScanBins: line %d score", lineIdx)
			return
		}
		if prevChr != gunsafe.BytesToString(tokens[0]) {
			// Copy: tokens[0] refers to the scanner's buffer.
			prevChr = string(tokens[0])
			if seen[prevChr] {
				err = fmt.Errorf("selection.ScanBins: unsorted input (split chromosome %v) on line %d", prevChr, lineIdx)
				return
			}
			seen[prevChr] = true
		} else if !opts.Intervals && interval.PosType(start) < prevEnd {
			err = fmt.Errorf("selection.ScanBins: bin on line %d starts at %d, before the previous bin ends at %d", lineIdx, start, prevEnd)
			return
		}
		prevEnd = interval.PosType(end)
		if region != nil && !region.ContainsByName(prevChr, interval.PosType(start)) {
			continue
		}
		bins = append(bins, Bin{
			Chrom: prevChr,
			Start: interval.PosType(start),
			End:   interval.PosType(end),
			Score: score,
		})
	}
	err = scanner.Err()
	return
}

// ReadBins is a wrapper for ScanBins that takes a path instead of an
// io.Reader.  Paths ending in .gz are decompressed.
func ReadBins(ctx context.Context, path string, opts ReadOpts) (bins []Bin, err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return ScanBins(reader, opts)
}

// WriteBins writes bins as chrom, start, end, score rows with no header.
func WriteBins(w io.Writer, bins []Bin) (err error) {
	out := tsv.NewWriter(w)
	for _, b := range bins {
		out.WriteString(b.Chrom)
		out.WriteInt64(int64(b.Start))
		out.WriteInt64(int64(b.End))
		out.WriteFloat64(b.Score, 'g', -1)
		if err = out.EndLine(); err != nil {
			return
		}
	}
	return out.Flush()
}

// WriteBinsToPath writes bins to path, or to stdout if path is empty or "-".
func WriteBinsToPath(ctx context.Context, path string, bins []Bin) (err error) {
	if path == "" || path == "-" {
		return WriteBins(os.Stdout, bins)
	}
	var outfile file.File
	if outfile, err = file.Create(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := outfile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteBins(outfile.Writer(ctx), bins)
}
