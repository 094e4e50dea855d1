// Package align computes optimal global alignments between two symbol
// sequences under an affine gap-penalty scoring scheme
// (Needleman–Wunsch with separate gap-open and gap-extend costs).
//
// 🚀 What is affine-gap alignment?
//
//	Global alignment matches two sequences end to end, inserting gaps
//	where one sequence advances alone.  The affine model charges a
//	larger one-time cost to open a gap and a smaller cost per extra
//	position, so one long gap beats many short ones.  It's widely used in:
//	  • DNA / protein sequence comparison
//	  • Fuzzy string matching & spelling correction
//	  • Token-stream and log diffing
//
// ✨ Key features:
//   - three coupled score matrices (match, gap-in-s1, gap-in-s2)
//   - exact integer scoring — traceback reproduces the forward minimum
//   - lazy, memoized computation: score and alignment cached per instance
//   - TwoRows mode: O(n) memory when only the score is needed
//   - linear-gap preset (LinearOptions) for callers without affine needs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	a, err := align.NewAligner("CACATATTATTCACT", "CAGATTATTTCAT", align.DefaultOptions())
//	if err != nil {
//	  // handle ErrInvalidConfig
//	}
//	score := a.Score()            // fills matrices on first call
//	a1, a2, err := a.Align()      // traceback, memoized
//
// Scoring (lower is better):
//
//	match    : Match    (≤ 0, negative rewards)
//	mismatch : Mismatch (> 0)
//	gap run  : GapOpen + GapExtend×(k−1) for k consecutive positions
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) (FullMatrix) or O(n) (TwoRows)
//
// Errors:
//
//   - ErrInvalidConfig: out-of-range penalty at construction.
//   - ErrAlignNeedsFullMatrix: Align on a TwoRows aligner.
//   - ErrInconsistentState: forward/backward mismatch (engine bug, defensive).
//
// See examples in example_test.go for detailed walkthroughs.
package align
