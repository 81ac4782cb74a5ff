// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"motifmark/core/layout"
	"motifmark/core/motif"
	"motifmark/internal/cli"
	"motifmark/internal/clibase"
	"motifmark/internal/cmdutil"
	"motifmark/internal/pipeline"
	"motifmark/internal/version"
	"motifmark/internal/writers"
)

const name = "motifmark"

// Exit codes.
const (
	exitOK       = 0
	exitInput    = 2 // usage, unreadable or invalid input
	exitOutput   = 3 // writing images or reports failed
	exitCanceled = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	flagSet := cli.NewFlagSet(name)
	flagSet.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(flagSet, argv)
	if err != nil {
		code := exitInput
		if errors.Is(err, flag.ErrHelp) {
			code = exitOK
		} else {
			_, _ = fmt.Fprintln(stderr, err)
		}
		flagSet.SetOutput(outw)
		flagSet.Usage()
		return flush(outw, stderr, code)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, exitOK)
	}
	if opts.Examples {
		clibase.PrintExamples(outw, name)
		return flush(outw, stderr, exitOK)
	}

	logger := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	stop, err := cmdutil.StartProfile(opts.Profile, opts.ProfileDir)
	if err != nil {
		logger.Error(err.Error())
		return exitInput
	}
	defer stop()

	// Every motif is validated before any sequence is read or image written.
	rules, err := loadMotifs(opts.MotifFile)
	if err != nil {
		logger.Error("cannot load motifs", "err", err)
		return exitInput
	}
	logger.Debug("motifs loaded", "path", opts.MotifFile, "count", len(rules))

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	lay := layout.DefaultConfig()
	lay.CanvasWidth = opts.Width

	start := time.Now()
	passes, err := pipeline.Run(parent, pipeline.Config{
		Threads: thr,
		OutDir:  opts.OutDir,
		GFF:     opts.GFF,
		Layout:  lay,
	}, opts.FastaFiles, rules)
	if err != nil {
		logger.Error("run failed", "err", err)
		return exitCode(err)
	}
	logger.Debug("done", "files", len(passes), "elapsed", time.Since(start))

	for _, p := range passes {
		for _, w := range p.Oversized {
			logger.Warn(w.Error(), "input", p.Input, "record", w.Index+1)
		}
		logger.Info("rendered", "input", p.Input, "records", p.Records, "hits", p.Hits)
		logger.Debug("exons", "input", p.Input, "bases", p.ExonBases)
		_, _ = fmt.Fprintf(outw, "wrote %s (%d records)\n", p.Output, p.Records)
		if p.GFFOutput != "" {
			_, _ = fmt.Fprintf(outw, "wrote %s\n", p.GFFOutput)
		}
	}
	return flush(outw, stderr, exitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func loadMotifs(path string) ([]*motif.Rule, error) {
	if path == "-" {
		return motif.Load(os.Stdin)
	}
	return motif.LoadFile(path)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return exitCanceled
	case errors.Is(err, pipeline.ErrOutput):
		return exitOutput
	}
	// Output failures all carry ErrOutput; anything else came from reading.
	return exitInput
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitOutput
	}
	return code
}
