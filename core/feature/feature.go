// Package feature derives exon regions from sequence case: every maximal run
// of uppercase letters is one feature, lowercase is intron/flank.
package feature

// Feature is a 1-based, length-delimited region of a sequence.
type Feature struct {
	Start  int
	Length int
}

// End is the 1-based inclusive last position.
func (f Feature) End() int { return f.Start + f.Length - 1 }

// Extract returns the uppercase runs of seq in ascending order.
// Example: Extract([]byte("aaGGGaa")) == []Feature{{Start: 3, Length: 3}}
func Extract(seq []byte) []Feature {
	var (
		out []Feature
		run = -1 // 0-based start of the open run, -1 if none
	)
	for i, c := range seq {
		upper := c >= 'A' && c <= 'Z'
		switch {
		case upper && run < 0:
			run = i
		case !upper && run >= 0:
			out = append(out, Feature{Start: run + 1, Length: i - run})
			run = -1
		}
	}
	if run >= 0 {
		out = append(out, Feature{Start: run + 1, Length: len(seq) - run})
	}
	return out
}

// Covered is the total number of positions inside features.
func Covered(fs []Feature) int {
	n := 0
	for _, f := range fs {
		n += f.Length
	}
	return n
}
