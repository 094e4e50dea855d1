package align

import "math"

// posInf stands in for +∞ in the integer recurrence. MaxInt/4 leaves
// headroom for the penalty additions a boundary cell feeds into without
// overflowing.
const posInf = math.MaxInt / 4

// cell packs the three coupled scores for one matrix position, so the
// forward fill and the traceback touch one cache line per cell.
//
//	m  — best score of an alignment ending in a match/mismatch column
//	g1 — best score ending with a gap in s1 (only s2 advances)
//	g2 — best score ending with a gap in s2 (only s1 advances)
type cell struct {
	m, g1, g2 int
}

// fill computes the score matrices and records the final score. Runs
// exactly once per Aligner, via fillOnce. Every cell is written once and
// never revisited.
func (a *Aligner) fill() {
	if a.opts.MemoryMode == FullMatrix {
		a.fillFull()
	} else {
		a.fillTwoRows()
	}
}

// boundaryCell returns the anchor value for a cell on row 0 or column 0.
// A match/mismatch column cannot face an empty prefix, so m is infinite
// everywhere on the boundary except the corner, which is the zero-cost
// alignment of nothing against nothing. Aligning the first k symbols of
// one sequence against nothing is a single gap run: GapOpen + GapExtend×(k−1).
func (a *Aligner) boundaryCell(i, j int) cell {
	switch {
	case i == 0 && j == 0:
		return cell{m: 0, g1: posInf, g2: posInf}
	case i == 0:
		return cell{m: posInf, g1: a.opts.GapOpen + a.opts.GapExtend*(j-1), g2: posInf}
	default:
		return cell{m: posInf, g1: posInf, g2: a.opts.GapOpen + a.opts.GapExtend*(i-1)}
	}
}

// next computes one interior cell from its three filled neighbors:
// diag = [i-1][j-1], up = [i-1][j], left = [i][j-1].
//
// Entering a gap run from any other state costs GapOpen+GapExtend
// (opening includes the first extension unit); continuing a run of the
// same orientation costs GapExtend alone. A run cannot switch
// orientation without re-paying the opening cost.
func (a *Aligner) next(diag, up, left cell, c1, c2 byte) cell {
	cost := a.opts.Mismatch
	if c1 == c2 {
		cost = a.opts.Match
	}
	open := a.opts.GapOpen + a.opts.GapExtend
	ext := a.opts.GapExtend

	return cell{
		m:  cost + min3(diag.m, diag.g1, diag.g2),
		g1: min3(open+left.m, ext+left.g1, open+left.g2),
		g2: min3(open+up.m, open+up.g1, ext+up.g2),
	}
}

// fillFull fills all (m+1)×(n+1) cells row-major and keeps them for the
// traceback.
// Complexity: O(m·n) time and memory.
func (a *Aligner) fillFull() {
	m, n := len(a.s1), len(a.s2)
	w := n + 1
	cells := make([]cell, (m+1)*w)

	for j := 0; j <= n; j++ {
		cells[j] = a.boundaryCell(0, j)
	}
	for i := 1; i <= m; i++ {
		cells[i*w] = a.boundaryCell(i, 0)
	}

	for i := 1; i <= m; i++ {
		prev, row := cells[(i-1)*w:i*w], cells[i*w:(i+1)*w]
		for j := 1; j <= n; j++ {
			row[j] = a.next(prev[j-1], prev[j], row[j-1], a.s1[i-1], a.s2[j-1])
		}
	}

	last := cells[m*w+n]
	a.cells = cells
	a.score = min3(last.m, last.g1, last.g2)
}

// fillTwoRows keeps only the current and previous rows, trading the
// traceback away for O(n) memory. Only the final score survives.
// Complexity: O(m·n) time, O(n) memory.
func (a *Aligner) fillTwoRows() {
	m, n := len(a.s1), len(a.s2)
	rows := [2][]cell{make([]cell, n+1), make([]cell, n+1)}

	for j := 0; j <= n; j++ {
		rows[0][j] = a.boundaryCell(0, j)
	}

	last := rows[0]
	for i := 1; i <= m; i++ {
		curr, prev := rows[i%2], rows[(i-1)%2]
		curr[0] = a.boundaryCell(i, 0)
		for j := 1; j <= n; j++ {
			curr[j] = a.next(prev[j-1], prev[j], curr[j-1], a.s1[i-1], a.s2[j-1])
		}
		last = curr
	}

	fin := last[n]
	a.score = min3(fin.m, fin.g1, fin.g2)
}

// min3 returns the minimum of three int values.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
