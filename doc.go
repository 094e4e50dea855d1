// Package seqalign is your in-memory toolkit for comparing ordered
// symbol sequences — from exact global alignment to gap-cost modeling.
//
// 🚀 What is seqalign?
//
//	A small, focused library built around one engine:
//		• Global alignment: Needleman–Wunsch with affine gap penalties
//		• Three coupled score matrices (match, gap-in-s1, gap-in-s2)
//		• Deterministic traceback into an aligned pair of sequences
//		• Exact integer scoring — no floating-point drift
//
// ✨ Why choose seqalign?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact results – integer arithmetic, reproducible tracebacks
//   - Pure Go – no cgo, no hidden deps
//   - Lazy & memoized – matrices computed once per aligner instance
//
// Everything lives in one subpackage:
//
//	align/ — the affine-gap alignment engine (Aligner, Options, traceback)
//
// Quick ASCII example:
//
//	    s1: CACATATTA-TTCACT
//	    s2: --CAGATTATTTCA-T
//
//	a global alignment of two DNA fragments; '-' marks a gap where the
//	other sequence advances alone.
//
// Dive into align/doc.go and examples/ for full scenarios and the
// scoring model walkthrough.
//
//	go get github.com/katalvlaran/seqalign/align
package seqalign
