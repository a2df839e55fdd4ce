// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"mutsim/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Count-table input
	TableFile string
	RefFiles  []string
	SaveTable string

	// Scan input
	SeqFiles []string

	// Mutation parameters
	KmerSize int
	DelSize  int
	Limit    uint64
	MaxAbund int

	// Behavior
	SkipAmbiguous    bool
	ProgressInterval uint64
	Quiet            bool

	// Output
	Output string
	Header bool // true unless --no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { Usage(fs, os.Stderr) }
	return fs
}

// Usage writes the full help text to w.
func Usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w,
		`%s: simulate fixed-length deletions and profile k-mer abundance

Version: %s

Usage of %s:
%s`, fs.Name(), version.Version, fs.Name(), fs.FlagUsages())
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var noHeader bool

	// Count-table input
	fs.StringVar(&opt.TableFile, "table", "", "prebuilt k-mer count table (see --save-table)")
	fs.StringArrayVar(&opt.RefFiles, "reference", nil, "reference FASTA file(s) to count (repeatable)")
	fs.StringVar(&opt.SaveTable, "save-table", "", "write the counted table to this path")

	// Scan input
	fs.StringArrayVar(&opt.SeqFiles, "sequences", nil, "FASTA file(s) to scan (repeatable or '-')")

	// Mutation parameters
	fs.IntVar(&opt.KmerSize, "kmer-size", 31, "k-mer length")
	fs.IntVar(&opt.DelSize, "del-size", 1, "deletion length in bases")
	fs.Uint64Var(&opt.Limit, "limit", 0, "max deletion positions to process (0 = unlimited)")
	fs.IntVar(&opt.MaxAbund, "max-abundance", 255, "abundance histogram cap (0 = uncapped)")

	// Behavior
	fs.BoolVar(&opt.SkipAmbiguous, "skip-ambiguous", true, "skip positions whose flanks contain non-ACGT bases")
	fs.Uint64Var(&opt.ProgressInterval, "progress-interval", 1000000, "emit a progress block every N positions (0 = never)")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress output")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "report format: text | tsv | json")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV")

	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	usingTable := opt.TableFile != ""
	usingRefs := len(opt.RefFiles) > 0
	switch {
	case usingTable && usingRefs:
		return opt, errors.New("--table conflicts with --reference")
	case !usingTable && !usingRefs:
		return opt, errors.New("provide --table or --reference")
	case usingTable && opt.SaveTable != "":
		return opt, errors.New("--save-table requires --reference")
	}
	if len(opt.SeqFiles) == 0 && opt.SaveTable == "" {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.KmerSize < 1 {
		return opt, errors.New("--kmer-size must be ≥ 1")
	}
	if opt.DelSize < 1 {
		return opt, errors.New("--del-size must be ≥ 1")
	}
	if opt.MaxAbund < 0 {
		return opt, errors.New("--max-abundance must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "tsv" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
