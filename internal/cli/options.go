// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"motifmark/internal/clibase"
	"motifmark/internal/cliutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	MotifFile  string
	FastaFiles []string

	// Output
	OutDir string
	Width  int
	GFF    bool

	// Performance
	Threads    int
	Profile    string
	ProfileDir string

	// Misc
	Quiet    bool
	Verbose  bool
	Version  bool
	Examples bool
}

// sliceValue appends each value to a *[]string (for --fasta/-f).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires every flag onto fs.
func Register(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.MotifFile, "motifs", "", "motif list, one per line [*]")
	fs.StringVar(&o.MotifFile, "m", "", "alias of --motifs")
	fv := &sliceValue{dst: &o.FastaFiles}
	fs.Var(fv, "fasta", "FASTA file(s) (repeatable) or '-'")
	fs.Var(fv, "f", "alias of --fasta")

	fs.StringVar(&o.OutDir, "out-dir", "", "directory for images (default: next to each FASTA)")
	fs.StringVar(&o.OutDir, "o", "", "alias of --out-dir")
	fs.IntVar(&o.Width, "width", 1000, "canvas width in nt, legend excluded [1000]")
	fs.BoolVar(&o.GFF, "gff", false, "also write exons and motif hits as <base>.gff [false]")

	fs.IntVar(&o.Threads, "threads", 0, "FASTA files rendered in parallel (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")
	fs.StringVar(&o.Profile, "profile", "", "write a pprof profile: cpu | mem")
	fs.StringVar(&o.ProfileDir, "profile-dir", "", "directory for --profile output (default: temp dir)")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Examples, "examples", false, "print usage examples and exit [false]")
}

// ParseArgs registers and parses all flags. Positional arguments are FASTA
// paths and may be globs.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	Register(fs, &opt)
	clibase.UsageCommon(fs, fs.Name())

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version || opt.Examples {
		return opt, nil
	}
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.FastaFiles = append(opt.FastaFiles, exp...)
	}
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.MotifFile == "" {
		return errors.New("--motifs is required")
	}
	if len(o.FastaFiles) == 0 {
		return errors.New("at least one FASTA file is required")
	}
	stdin := 0
	for _, f := range o.FastaFiles {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' (stdin) may be given only once")
	}
	if o.MotifFile == "-" && stdin > 0 {
		return errors.New("motifs and FASTA cannot both come from stdin")
	}
	if o.Width < 1 {
		return errors.New("--width must be ≥ 1")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("invalid --profile %q", o.Profile)
	}
	return nil
}
