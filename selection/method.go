package selection

import "fmt"

// Method identifies a selection strategy.
type Method int

const (
	// Unknown is a sentinel.
	Unknown Method = iota
	// PQ is the greedy priority-queue sweep.
	PQ
	// WIS is exact weighted interval scheduling.
	WIS
	// MaxMean is the rolling max/mean sweep.
	MaxMean
)

// ParseMethod parses the method name. "pq" returns selection.PQ, for example.
// On error, it returns Unknown.
func ParseMethod(name string) Method {
	switch name {
	case "pq":
		return PQ
	case "wis":
		return WIS
	case "maxmean":
		return MaxMean
	default:
		return Unknown
	}
}

// String returns the command-line name of the method.
func (m Method) String() string {
	switch m {
	case PQ:
		return "pq"
	case WIS:
		return "wis"
	case MaxMean:
		return "maxmean"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Selector chooses a subsequence of bins.  windowSpan is the exclusion radius
// in bin units; Selectors that do not use an exclusion window ignore it.  The
// returned bins are in input order.  Each call owns all of its intermediate
// state, so one Selector may be used from several goroutines.
type Selector interface {
	Select(bins []Bin, windowSpan int) ([]Bin, error)
}

// NewSelector returns the Selector implementing m.  parallelism only affects
// MaxMean.
func NewSelector(m Method, parallelism int) (Selector, error) {
	switch m {
	case PQ:
		return GreedySelector{}, nil
	case WIS:
		return WISSelector{}, nil
	case MaxMean:
		return MaxMeanSelector{Parallelism: parallelism}, nil
	default:
		return nil, fmt.Errorf("selection.NewSelector: unknown method %v", m)
	}
}
