// core/motif/match.go
package motif

import "bytes"

// MatchAt reports whether the window of seq starting at off (0-based)
// matches r. Sequence case is ignored.
func (r *Rule) MatchAt(seq []byte, off int) bool {
	if off < 0 || off+len(r.masks) > len(seq) {
		return false
	}
	for j, m := range r.masks {
		if seqMask(seq[off+j])&m == 0 {
			return false
		}
	}
	return true
}

/* ------------------------------- FindAll -------------------------------- */

// FindAll returns the 1-based start of every match of r in seq, ascending.
// Overlapping matches are all reported: FindAll(MustCompile("AA"), "AAA")
// is [1 2]. A sequence shorter than the motif yields nil.
func FindAll(r *Rule, seq []byte) []int {
	ml := r.Len()
	if ml == 0 || len(seq) < ml {
		return nil
	}

	// Exact-match fast path: bytes.Index jump scanning over a folded copy.
	if r.exact {
		up := upperASCII(seq)
		lit := r.literal()
		var out []int
		for i := 0; ; {
			j := bytes.Index(up[i:], lit)
			if j < 0 {
				break
			}
			pos := i + j
			out = append(out, pos+1)
			i = pos + 1
		}
		return out
	}

	end := len(seq) - ml
	var out []int
window:
	for pos := 0; pos <= end; pos++ {
		for j, m := range r.masks {
			if seqMask(seq[pos+j])&m == 0 {
				continue window
			}
		}
		out = append(out, pos+1)
	}
	return out
}

// upperASCII folds a-z only; other bytes (including U, N, gaps and non-ASCII)
// are copied unchanged so offsets stay aligned with the input.
func upperASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
