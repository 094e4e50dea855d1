package align

import (
	"fmt"
	"sync"
)

// Aligner holds two sequences, a scoring configuration, and the lazily
// computed score matrices. It is immutable after construction: the only
// mutation is the one-shot memoization of the matrices and the alignment,
// both guarded by sync.Once, so a configured instance may be shared
// across goroutines.
//
// Construct with NewAligner; query with Score and Align in any order,
// any number of times.
type Aligner struct {
	s1, s2 string
	opts   Options

	fillOnce sync.Once
	cells    []cell // row-major (m+1)×(n+1); nil in TwoRows mode
	score    int

	alignOnce sync.Once
	a1, a2    string
	alignErr  error
	aligned   bool
}

// NewAligner constructs an Aligner over s1 and s2 with the given scoring
// options. Symbols are compared byte-for-byte, case-sensitive, no
// normalization. Either sequence may be empty: aligning against an empty
// sequence degenerates to a single all-gap run.
//
// Returns an error wrapping ErrInvalidConfig for out-of-range penalties.
// No computation happens until the first Score or Align call.
// Complexity: O(1) time and memory.
func NewAligner(s1, s2 string, opts Options) (*Aligner, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Aligner{s1: s1, s2: s2, opts: opts}, nil
}

// validateOptions checks each scoring parameter against its contract.
// Only sentinel-wrapped errors, no panics on user input.
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.GapOpen <= 0 {
		return fmt.Errorf("align: gap-open penalty must be positive, got %d: %w", opts.GapOpen, ErrInvalidConfig)
	}
	if opts.GapExtend < 0 {
		return fmt.Errorf("align: gap-extend penalty must be non-negative, got %d: %w", opts.GapExtend, ErrInvalidConfig)
	}
	if opts.Mismatch <= 0 {
		return fmt.Errorf("align: mismatch penalty must be positive, got %d: %w", opts.Mismatch, ErrInvalidConfig)
	}
	if opts.Match > 0 {
		return fmt.Errorf("align: match cost must be non-positive, got %d: %w", opts.Match, ErrInvalidConfig)
	}
	switch opts.MemoryMode {
	case FullMatrix, TwoRows:
		// ok
	default:
		return fmt.Errorf("align: unknown memory mode %d: %w", opts.MemoryMode, ErrInvalidConfig)
	}

	return nil
}

// Score returns the optimal global alignment cost (lower is better):
// min(M[m][n], G1[m][n], G2[m][n]). The first call fills the matrices;
// subsequent calls return the cached value.
// Complexity: O(m·n) first call, O(1) after.
func (a *Aligner) Score() int {
	a.fillOnce.Do(a.fill)

	return a.score
}

// Align returns the optimal aligned pair (s1Aligned, s2Aligned): two
// equal-length strings over the input alphabet plus the Gap marker, such
// that dropping gaps from s1Aligned reproduces s1 and likewise for s2.
// The result is memoized; repeated calls return identical strings.
//
// Returns ErrAlignNeedsFullMatrix in TwoRows mode and
// ErrInconsistentState if the traceback diverges from the forward fill
// (defensive — indicates an engine bug).
// Complexity: O(m·n) first call (shared with Score), O(1) after.
func (a *Aligner) Align() (s1Aligned, s2Aligned string, err error) {
	if a.opts.MemoryMode != FullMatrix {
		return "", "", ErrAlignNeedsFullMatrix
	}
	a.fillOnce.Do(a.fill)
	a.alignOnce.Do(func() {
		a.a1, a.a2, a.alignErr = a.traceback()
		a.aligned = a.alignErr == nil
	})

	return a.a1, a.a2, a.alignErr
}

// Identity reports the fraction of alignment columns whose symbols match
// exactly, in [0,1]. Triggers Align on first use.
// Returns ErrNoAlignment when both sequences are empty.
func (a *Aligner) Identity() (float64, error) {
	a1, a2, err := a.Align()
	if err != nil {
		return 0, err
	}
	if len(a1) == 0 {
		return 0, ErrNoAlignment
	}
	matched := 0
	for i := 0; i < len(a1); i++ {
		if a1[i] == a2[i] {
			matched++
		}
	}

	return float64(matched) / float64(len(a1)), nil
}

// String renders the memoized alignment as two labeled lines, or the
// empty string if Align has not completed. It never triggers computation,
// so it is safe inside logging paths.
func (a *Aligner) String() string {
	if !a.aligned {
		return ""
	}

	return fmt.Sprintf("s1: %s\ns2: %s", a.a1, a.a2)
}

// Align is a convenience wrapper: it aligns s1 and s2 under
// DefaultOptions and returns the aligned pair.
//
// Example:
//
//	a1, a2, err := align.Align("AGT", "ACT")
func Align(s1, s2 string) (string, string, error) {
	a, err := NewAligner(s1, s2, DefaultOptions())
	if err != nil {
		return "", "", err
	}

	return a.Align()
}
