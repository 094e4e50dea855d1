// Package align defines options, modes, and sentinel errors for
// affine-gap global sequence alignment.
package align

import "errors"

// Gap is the placeholder symbol emitted in an aligned sequence wherever
// the other sequence advances alone.
const Gap = '-'

// Sentinel errors for align operations.
var (
	// ErrInvalidConfig indicates an out-of-range scoring parameter at construction.
	ErrInvalidConfig = errors.New("align: invalid scoring configuration")
	// ErrInconsistentState indicates the traceback minimum matched none of the
	// three score matrices. Signals an engine bug, never bad input.
	ErrInconsistentState = errors.New("align: traceback state does not match any score matrix")
	// ErrAlignNeedsFullMatrix indicates Align was called on a TwoRows aligner.
	ErrAlignNeedsFullMatrix = errors.New("align: alignment reconstruction requires MemoryMode=FullMatrix")
	// ErrNoAlignment indicates a column statistic was requested for an empty alignment.
	ErrNoAlignment = errors.New("align: alignment has no columns")
)

// MemoryMode controls how the aligner stores its DP matrices.
//
//   - FullMatrix — keep all three (m+1)×(n+1) matrices in memory.
//     Allows score + full traceback of the optimal alignment.
//     Memory: O(m·n).
//
//   - TwoRows — only keep two rows (current and previous).
//     Reduces memory to O(n), but cannot recover the alignment.
//     Use when you only need the score.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support alignment recovery, uses O(M·N) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no alignment recovery, uses O(N) memory.
	TwoRows
)

// Options configures the affine gap-penalty scoring scheme.
//
// Fields:
//   - GapOpen    — one-time cost of starting a new gap run. Must be > 0.
//   - GapExtend  — additional cost per gap position beyond the first.
//     Must be ≥ 0; 0 makes every run cost GapOpen regardless of length.
//   - Mismatch   — cost of aligning two unequal symbols. Must be > 0.
//     Keep it strictly between GapOpen and 2×GapOpen, or the optimum may
//     prefer two single-symbol gaps over one mismatch.
//   - Match      — cost of aligning two equal symbols. Must be ≤ 0
//     (negative values reward matches).
//   - MemoryMode — FullMatrix or TwoRows storage.
//
// All costs are exact integers: the traceback re-derives the forward
// minimum at every step, which only works with drift-free arithmetic.
//
// Example:
//
//	opts := align.DefaultOptions()
//	a, err := align.NewAligner("AGT", "ACT", opts)
//	if err != nil {
//	  // handle ErrInvalidConfig
//	}
//	fmt.Println("score:", a.Score())
type Options struct {
	GapOpen    int
	GapExtend  int
	Mismatch   int
	Match      int
	MemoryMode MemoryMode
}

// DefaultOptions returns the affine-gap defaults:
// GapOpen=2, GapExtend=1, Mismatch=1, Match=-2, MemoryMode=FullMatrix.
func DefaultOptions() Options {
	return Options{
		GapOpen:    2,
		GapExtend:  1,
		Mismatch:   1,
		Match:      -2,
		MemoryMode: FullMatrix,
	}
}

// LinearOptions returns a linear-gap preset: GapOpen equals GapExtend, so
// every gap position costs the same and long runs earn no affine discount.
// Mismatch=3, Match=0.
func LinearOptions() Options {
	return Options{
		GapOpen:    1,
		GapExtend:  1,
		Mismatch:   3,
		Match:      0,
		MemoryMode: FullMatrix,
	}
}
