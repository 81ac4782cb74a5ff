package clibase

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestUsageCommon_ShowsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("motifmark", flag.ContinueOnError)
	fs.Int("width", 1000, "")
	fs.Int("threads", 0, "")
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	UsageCommon(fs, "motifmark")
	fs.Usage()
	out := buf.String()
	for _, want := range []string{"--motifs", "--fasta", "[1000]", "Version:"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestPrintExamples(t *testing.T) {
	var buf bytes.Buffer
	PrintExamples(&buf, "motifmark")
	if !strings.Contains(buf.String(), "motifmark -m motifs.txt") || !strings.Contains(buf.String(), "--help") {
		t.Fatalf("examples: %q", buf.String())
	}
	PrintExamples(nil, "x") // must not panic
}
