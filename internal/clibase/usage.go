// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"

	"motifmark/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
func UsageCommon(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – motif diagrams for FASTA sequences\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s -m motifs.txt [-f seqs.fa ...] [seqs.fa ...]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -m, --motifs file           Motif list, one IUPAC motif per line [*]")
		fmt.Fprintln(out, "  -f, --fasta file            FASTA file(s) (repeatable, globs as positionals) or '-' for STDIN")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --out-dir dir           Directory for <base>.png (default: next to each FASTA)")
		fmt.Fprintf(out, "      --width int             Canvas width in nt, legend excluded [%s]\n", def("width"))
		fmt.Fprintf(out, "      --gff                   Also write exons and motif hits as <base>.gff [%s]\n", def("gff"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           FASTA files rendered in parallel (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintln(out, "      --profile string        Write a pprof profile: cpu | mem")
		fmt.Fprintln(out, "      --profile-dir dir       Directory for --profile output")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
