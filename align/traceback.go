package align

import "strings"

// matrixState identifies which of the three score matrices produced the
// minimum at the current traceback position.
type matrixState int

const (
	matchState matrixState = iota // match/mismatch column: both sequences advance
	gap1State                     // gap in s1: only s2 advances
	gap2State                     // gap in s2: only s1 advances
)

// stateAt picks the matrix holding the minimum of the three scores in c.
// Ties break match > gap1 > gap2, so reconstruction prefers substance
// columns over gaps. With exact integer scores the minimum always equals
// one of the three values; the error branch guards against a
// forward/backward divergence.
func stateAt(c cell) (matrixState, error) {
	switch min3(c.m, c.g1, c.g2) {
	case c.m:
		return matchState, nil
	case c.g1:
		return gap1State, nil
	case c.g2:
		return gap2State, nil
	}

	return 0, ErrInconsistentState
}

// traceback walks the filled matrices from (m,n) back to (0,0), emitting
// one aligned column per step, and returns the pair reversed into
// left-to-right order. The state re-derivation mirrors the forward
// recurrence exactly, which is why the fill uses integer arithmetic.
// Complexity: O(m+n) time and memory.
func (a *Aligner) traceback() (string, string, error) {
	m, n := len(a.s1), len(a.s2)
	w := n + 1
	i, j := m, n

	st, err := stateAt(a.cells[i*w+j])
	if err != nil {
		return "", "", err
	}

	var b1, b2 strings.Builder
	b1.Grow(m + n)
	b2.Grow(m + n)
	for i > 0 || j > 0 {
		switch st {
		case matchState:
			b1.WriteByte(a.s1[i-1])
			b2.WriteByte(a.s2[j-1])
			i--
			j--
		case gap1State:
			b1.WriteByte(Gap)
			b2.WriteByte(a.s2[j-1])
			j--
		case gap2State:
			b1.WriteByte(a.s1[i-1])
			b2.WriteByte(Gap)
			i--
		}
		if st, err = stateAt(a.cells[i*w+j]); err != nil {
			return "", "", err
		}
	}

	return reverse(b1.String()), reverse(b2.String()), nil
}

// reverse returns s with its bytes in reverse order.
func reverse(s string) string {
	b := []byte(s)
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}

	return string(b)
}
