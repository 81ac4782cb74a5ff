// internal/clibase/examples.go
package clibase

import (
	"fmt"
	"io"
)

// PrintExamples prints a small quickstart followed by a one-line tip to
// discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintln(out, "  # One image per FASTA, written next to it (Figure_1.png)")
	_, _ = fmt.Fprintf(out, "  %s -m motifs.txt -f Figure_1.fasta\n\n", name)
	_, _ = fmt.Fprintln(out, "  # Several files in parallel into one directory, with GFF sidecars")
	_, _ = fmt.Fprintf(out, "  %s -m motifs.txt -o figures --gff 'data/*.fa'\n\n", name)
	_, _ = fmt.Fprintln(out, "  # Gzipped input from a pipe")
	_, _ = fmt.Fprintf(out, "  zcat genes.fa.gz | %s -m motifs.txt -f -\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
