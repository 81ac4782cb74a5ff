package gffout

import (
	"bytes"
	"strings"
	"testing"

	"motifmark/core/layout"
	"motifmark/core/record"
)

func TestWrite(t *testing.T) {
	rec := record.New("gene1 chr1:1-77", []byte("aaaAAAAAAAAAAAAAAAAAAAAAAGCATGaaaaaaaaaaaaaaaaaaaacatagaa"))
	occ, err := rec.Occurrences([]string{"CATAG", "TTTT"})
	if err != nil {
		t.Fatalf("Occurrences: %v", err)
	}

	var buf bytes.Buffer
	pal := layout.NewPalette([]string{"CATAG", "TTTT"})
	if err := Write(&buf, []*record.Record{rec}, []map[string][]int{occ}, pal); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var exons, hits []string
	for _, ln := range strings.Split(buf.String(), "\n") {
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		f := strings.Split(ln, "\t")
		if len(f) < 8 {
			t.Fatalf("short GFF line %q", ln)
		}
		if f[0] != "gene1" || f[1] != "motifmark" {
			t.Errorf("seqid/source = %q/%q", f[0], f[1])
		}
		switch f[2] {
		case "exon":
			exons = append(exons, ln)
			if f[4] != "30" {
				t.Errorf("exon end = %q, want 30", f[4])
			}
		case "motif_occurrence":
			hits = append(hits, ln)
			if f[4] != "55" || !strings.Contains(ln, "CATAG") || !strings.Contains(ln, pal.Hex("CATAG")) {
				t.Errorf("motif line %q", ln)
			}
		}
	}
	if len(exons) != 1 || len(hits) != 1 {
		t.Fatalf("exons=%d hits=%d\n%s", len(exons), len(hits), buf.String())
	}
}

func TestWrite_MismatchedInputs(t *testing.T) {
	if err := Write(&bytes.Buffer{}, []*record.Record{record.New("x", nil)}, nil, layout.NewPalette(nil)); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}
