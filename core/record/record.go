// Package record holds one named sequence together with the features derived
// from it. Motif occurrences are computed per call from a caller-supplied
// motif set; a Record has no motifs of its own.
package record

import (
	"strings"

	"motifmark/core/feature"
	"motifmark/core/motif"
)

type Record struct {
	ID    string // FASTA header without '>'
	Seq   []byte // mixed case; uppercase marks exons
	Exons []feature.Feature
}

// New builds a Record and extracts its exons. Seq is retained, not copied.
func New(id string, seq []byte) *Record {
	return &Record{ID: id, Seq: seq, Exons: feature.Extract(seq)}
}

func (r *Record) Len() int { return len(r.Seq) }

// Name is the first whitespace-separated token of ID.
func (r *Record) Name() string {
	if f := strings.Fields(r.ID); len(f) > 0 {
		return f[0]
	}
	return ""
}

// Title is ID with any chr<name>:<range> coordinate elided, for display.
// "INSR chr19:7150261-7150808 (reverse complement)" -> "INSR (reverse complement)"
// A header made only of coordinates keeps its Name.
func (r *Record) Title() string {
	f := strings.Fields(r.ID)
	keep := make([]string, 0, len(f))
	for _, tok := range f {
		if isCoord(tok) {
			continue
		}
		keep = append(keep, tok)
	}
	if len(keep) == 0 {
		return r.Name()
	}
	return strings.Join(keep, " ")
}

func isCoord(tok string) bool {
	rest, ok := strings.CutPrefix(tok, "chr")
	if !ok {
		return false
	}
	i := strings.IndexByte(rest, ':')
	return i > 0 && i < len(rest)-1
}

// Occurrences compiles each spec and scans the sequence. Every distinct spec
// (keyed by its uppercase form) is present in the result, with an empty list
// when it does not occur.
func (r *Record) Occurrences(specs []string) (map[string][]int, error) {
	rules := make([]*motif.Rule, 0, len(specs))
	for _, s := range specs {
		rule, err := motif.Compile(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return r.Scan(rules), nil
}

// Scan is Occurrences for already compiled rules.
func (r *Record) Scan(rules []*motif.Rule) map[string][]int {
	out := make(map[string][]int, len(rules))
	for _, rule := range rules {
		if _, done := out[rule.String()]; done {
			continue
		}
		pos := motif.FindAll(rule, r.Seq)
		if pos == nil {
			pos = []int{}
		}
		out[rule.String()] = pos
	}
	return out
}
