// core/motif/iupac.go
package motif

import (
	"errors"
	"fmt"
	"strings"
)

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c+'a'-'A'] = bits
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA: U reads as T (motif side only)
	set('M', 1|2)     // A/C
	set('R', 1|4)     // A/G
	set('W', 1|8)     // A/T
	set('S', 2|4)     // C/G
	set('Y', 2|8)     // C/T
	set('K', 4|8)     // G/T
	set('V', 1|2|4)   // A/C/G
	set('H', 1|2|8)   // A/C/T
	set('D', 1|4|8)   // A/G/T
	set('B', 2|4|8)   // C/G/T
	set('N', 1|2|4|8) // any
}

// seqMask is the sequence-side view: only literal A/C/G/T (any case) carry a
// base. Ambiguity codes, U and gaps in the sequence never match.
func seqMask(b byte) byte {
	switch b {
	case 'A', 'a':
		return 1
	case 'C', 'c':
		return 2
	case 'G', 'g':
		return 4
	case 'T', 't':
		return 8
	}
	return 0
}

/* ------------------------------- errors --------------------------------- */

var (
	ErrInvalidMotifSymbol = errors.New("invalid motif symbol")
	ErrEmptyMotif         = errors.New("empty motif")
)

// SymbolError reports the first unrecognized symbol in a motif.
type SymbolError struct {
	Motif  string
	Pos    int // 1-based
	Symbol byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("motif %q: invalid symbol %q at %d; allowed: A C G T U M R W S Y K V H D B N",
		e.Motif, e.Symbol, e.Pos)
}

func (e *SymbolError) Unwrap() error { return ErrInvalidMotifSymbol }

/* -------------------------------- Rule ---------------------------------- */

// Rule is a compiled motif: one non-empty base set per motif position.
type Rule struct {
	spec  string
	masks []byte
	exact bool // every position is a single base
}

// Compile translates an IUPAC motif into a Rule. The motif is uppercased;
// U compiles to {T}.
func Compile(spec string) (*Rule, error) {
	if spec == "" {
		return nil, ErrEmptyMotif
	}
	up := string(upperASCII([]byte(spec)))
	r := &Rule{spec: up, masks: make([]byte, len(up)), exact: true}
	for i := 0; i < len(up); i++ {
		m := iupacMask[up[i]]
		if m == 0 {
			return nil, &SymbolError{Motif: spec, Pos: i + 1, Symbol: spec[i]}
		}
		if m != 1 && m != 2 && m != 4 && m != 8 {
			r.exact = false
		}
		r.masks[i] = m
	}
	return r, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(spec string) *Rule {
	r, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the normalized (uppercase) motif text.
func (r *Rule) String() string { return r.spec }

// Len is the motif's literal length.
func (r *Rule) Len() int { return len(r.masks) }

// Bases returns the allowed bases at position i (0-based) in ACGT order.
// Example: MustCompile("R").Bases(0) == "AG"
func (r *Rule) Bases(i int) string {
	var b strings.Builder
	for bit, c := range "ACGT" {
		if r.masks[i]&(1<<bit) != 0 {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// literal returns the DNA text of an exact rule (U already folded to T).
func (r *Rule) literal() []byte {
	out := make([]byte, len(r.masks))
	for i, m := range r.masks {
		switch m {
		case 1:
			out[i] = 'A'
		case 2:
			out[i] = 'C'
		case 4:
			out[i] = 'G'
		case 8:
			out[i] = 'T'
		}
	}
	return out
}
