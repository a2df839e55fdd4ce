// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"mutsim-core/fasta"
	"mutsim-core/kmer"
	"mutsim-core/mutate"
	"mutsim/internal/cli"
	"mutsim/internal/counttable"
	"mutsim/internal/output"
	"mutsim/internal/version"
)

// RunContext wires the CLI: parse flags, obtain a count table, scan every
// input sequence through one DeletionScanner, and write the report.
// Exit codes: 0 ok (including broken pipe), 1 scan/runtime error, 2 usage or
// input error, 3 output write error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("mutsim")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.Usage(fs, outw)
			return flushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.Usage(fs, outw)
		return flushExit(outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "mutsim version %s\n", version.Version)
		return flushExit(outw, stderr, 0)
	}

	// Count table: load prebuilt, or count the reference FASTA(s).
	var table *kmer.MapTable
	if opts.TableFile != "" {
		table, err = counttable.Load(opts.TableFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if fs.Changed("kmer-size") && table.K() != opts.KmerSize {
			_, _ = fmt.Fprintf(stderr, "--kmer-size %d does not match table k=%d\n", opts.KmerSize, table.K())
			return 2
		}
		opts.KmerSize = table.K()
	} else {
		table, err = counttable.Build(parent, opts.KmerSize, opts.RefFiles)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	if opts.SaveTable != "" {
		if err := counttable.Save(table, opts.SaveTable); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if len(opts.SeqFiles) == 0 {
			return 0
		}
	}

	cfg := mutate.Config{K: opts.KmerSize, DelSize: opts.DelSize, Limit: opts.Limit, MaxAbund: opts.MaxAbund}
	var scanOpts []mutate.Option
	if opts.SkipAmbiguous {
		scanOpts = append(scanOpts, mutate.WithSkip(mutate.SkipAmbiguous(cfg)))
	}
	if !opts.Quiet && opts.ProgressInterval > 0 {
		scanOpts = append(scanOpts, mutate.WithProgress(mutate.NewProgress(opts.ProgressInterval, stderr)))
	}
	scanner, err := mutate.NewDeletionScanner(cfg, table, scanOpts...)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// One scanner across all files: histograms and the processed count
	// accumulate for the lifetime of the run.
	var kmers uint64
	for _, path := range opts.SeqFiles {
		err := fasta.StreamPathCtx(parent, path, func(rec fasta.Record) error {
			n, perr := scanner.Process(rec.Seq)
			kmers += n
			return perr
		})
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
	}

	rep := output.Report{
		K:          cfg.K,
		DelSize:    cfg.DelSize,
		Limit:      cfg.Limit,
		Positions:  scanner.Processed(),
		Kmers:      kmers,
		SeqFiles:   opts.SeqFiles,
		AbundHist:  scanner.AbundHist,
		UniqueHist: scanner.UniqueHist,
	}
	if err := output.Write(outw, opts.Output, rep, opts.Header); err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushExit(outw, stderr, 0)
}

// Run is the background-context convenience wrapper.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
