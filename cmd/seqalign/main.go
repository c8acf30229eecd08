// Command seqalign runs pairwise alignments described in a YAML job file and
// prints their scores and aligned text. Without -jobs it runs the README demo:
// CHOCOLATEISTHEANSWER against LATETHAW, Waterman-Smith-Beyer with gap cost 1.25^n.
//
//	seqalign -jobs jobs.yaml -log-level=debug
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cloudeng.io/logging/ctxlog"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/scenario"
)

var (
	jobsFlag     = flag.String("jobs", "", "YAML job file; empty runs the built-in demo")
	logLevelFlag = flag.String("log-level", "warn", "log level: debug, info, warn or error")
	identityFlag = flag.Bool("identity-only", false, "mark only identical pairs on the connector line")
)

func demoJobs() []scenario.Job {
	return []scenario.Job{{
		Name:       "readme",
		Variant:    "waterman-smith-beyer",
		S:          "CHOCOLATEISTHEANSWER",
		T:          "LATETHAW",
		Similarity: scenario.Similarity{Kind: scenario.SimilarityBinary, Match: 1, Mismatch: -1},
		Gap:        scenario.Gap{Kind: scenario.GapExponential, Base: 1.25},
	}}
}

func main() {
	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return fmt.Errorf("-log-level: %w", err)
	}
	ctx = ctxlog.NewJSONLogger(ctx, stderr, &slog.HandlerOptions{Level: level})

	jobs := demoJobs()
	if *jobsFlag != "" {
		f, err := os.Open(*jobsFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		file, err := scenario.Load(f)
		if err != nil {
			return err
		}
		jobs = file.Jobs
	}

	runner := &scenario.Runner{Out: stdout}
	if *identityFlag {
		runner.Render = append(runner.Render, align.WithIdentityOnly())
	}
	_, err := runner.Run(ctx, jobs)

	return err
}
