package runfit

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the runfit package.
var (
	// ErrMalformedRecord indicates a line that is not "<pattern> <r1,r2,…>".
	ErrMalformedRecord = errors.New("runfit: malformed record")

	// ErrBadRun indicates a run length that is not strictly positive.
	ErrBadRun = errors.New("runfit: run lengths must be positive")

	// ErrBadSymbol indicates a pattern value outside Free, Set and Unknown.
	ErrBadSymbol = errors.New("runfit: invalid pattern symbol")

	// ErrBadUnfold indicates an unfold factor below one.
	ErrBadUnfold = errors.New("runfit: unfold factor must be at least 1")

	// ErrTooManyUnknowns indicates the brute-force enumerator was handed a
	// record with more than MaxEnumerateUnknowns unknown cells.
	ErrTooManyUnknowns = errors.New("runfit: too many unknown cells to enumerate")
)

const (
	// UnfoldFactor is the number of copies used by the unfolded puzzle variant.
	UnfoldFactor = 5

	// MaxEnumerateUnknowns caps CountEnumerated at 2^24 candidate assignments.
	MaxEnumerateUnknowns = 24
)

// Symbol is a single pattern cell.
type Symbol uint8

const (
	// Free marks a cell known to be empty ('.').
	Free Symbol = iota
	// Set marks a cell known to be filled ('#').
	Set
	// Unknown marks a cell that may be either ('?').
	Unknown
)

// String renders the symbol in its input notation.
func (s Symbol) String() string {
	switch s {
	case Free:
		return "."
	case Set:
		return "#"
	case Unknown:
		return "?"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// SymbolOf maps an input character to its Symbol.
func SymbolOf(r rune) (Symbol, bool) {
	switch r {
	case '.':
		return Free, true
	case '#':
		return Set, true
	case '?':
		return Unknown, true
	}

	return 0, false
}

// Record pairs a pattern with the run lengths that must fit into it.
type Record struct {
	Pattern []Symbol
	Runs    []int
}

// String renders the record in its input notation.
func (rec Record) String() string {
	buf := make([]byte, 0, len(rec.Pattern)+1+3*len(rec.Runs))
	for _, s := range rec.Pattern {
		buf = append(buf, s.String()...)
	}
	buf = append(buf, ' ')
	for i, r := range rec.Runs {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = fmt.Appendf(buf, "%d", r)
	}

	return string(buf)
}

// Validate reports whether every symbol and run length is usable by Count.
// A run sum larger than the number of non-Free cells is a valid record with
// zero arrangements, not an error.
func (rec Record) Validate() error {
	for i, s := range rec.Pattern {
		if s > Unknown {
			return fmt.Errorf("%w: position %d holds %d", ErrBadSymbol, i, uint8(s))
		}
	}
	for i, r := range rec.Runs {
		if r <= 0 {
			return fmt.Errorf("%w: run %d has length %d", ErrBadRun, i, r)
		}
	}

	return nil
}

// Unfold returns a record whose pattern is times copies of rec.Pattern joined
// by Unknown and whose runs are times copies of rec.Runs.
func (rec Record) Unfold(times int) (Record, error) {
	if times < 1 {
		return Record{}, fmt.Errorf("%w: got %d", ErrBadUnfold, times)
	}
	pattern := make([]Symbol, 0, times*(len(rec.Pattern)+1)-1)
	runs := make([]int, 0, times*len(rec.Runs))
	for c := 0; c < times; c++ {
		if c > 0 {
			pattern = append(pattern, Unknown)
		}
		pattern = append(pattern, rec.Pattern...)
		runs = append(runs, rec.Runs...)
	}

	return Record{Pattern: pattern, Runs: runs}, nil
}

// MemoryMode selects how Count memoises its (i, g, r) states.
type MemoryMode int

const (
	// DenseTable stores states in a flat (n+1)×(k+1)×(max(R)+1) slice.
	DenseTable MemoryMode = iota

	// HashMemo stores only visited states in a map keyed by the tuple.
	HashMemo
)

// Options configures Count.
type Options struct {
	MemoryMode MemoryMode // memo storage strategy
}

// Option is a functional option for Count.
type Option func(*Options)

// WithMemoryMode selects the memo storage strategy.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// DefaultOptions returns Options with the dense table selected.
func DefaultOptions() Options {
	return Options{MemoryMode: DenseTable}
}
