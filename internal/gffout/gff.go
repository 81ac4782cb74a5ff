// Package gffout writes exon features and motif occurrences as GFF.
package gffout

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"motifmark/core/layout"
	"motifmark/core/record"
)

const source = "motifmark"

// Write emits one "exon" line per feature and one "motif_occurrence" line per
// hit, record by record. occs[i] holds the occurrences of recs[i]. Motifs are
// written in palette order and tagged with their legend color.
func Write(w io.Writer, recs []*record.Record, occs []map[string][]int, pal *layout.Palette) error {
	if len(occs) != len(recs) {
		return fmt.Errorf("gff: %d records but %d occurrence sets", len(recs), len(occs))
	}
	bw := bufio.NewWriter(w)
	gw := gff.NewWriter(bw, 60, true)

	for i, rec := range recs {
		name := rec.Name()
		for j, ex := range rec.Exons {
			// gff.Feature is zero-based half-open.
			f := &gff.Feature{
				SeqName:        name,
				Source:         source,
				Feature:        "exon",
				FeatStart:      ex.Start - 1,
				FeatEnd:        ex.End(),
				FeatStrand:     seq.Plus,
				FeatFrame:      gff.NoFrame,
				FeatAttributes: gff.Attributes{{Tag: "ID", Value: fmt.Sprintf("%s_exon%d", name, j+1)}},
			}
			if _, err := gw.Write(f); err != nil {
				return err
			}
		}
		for _, m := range pal.Motifs() {
			for _, pos := range occs[i][m] {
				f := &gff.Feature{
					SeqName:        name,
					Source:         source,
					Feature:        "motif_occurrence",
					FeatStart:      pos - 1,
					FeatEnd:        pos - 1 + len(m),
					FeatStrand:     seq.Plus,
					FeatFrame:      gff.NoFrame,
					FeatAttributes: gff.Attributes{
						{Tag: "Motif", Value: m},
						{Tag: "color", Value: pal.Hex(m)},
					},
				}
				if _, err := gw.Write(f); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}
