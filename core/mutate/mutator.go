// core/mutate/mutator.go
package mutate

import (
	"fmt"

	"mutsim-core/kmer"
)

// Config fixes the parameters of a scan. It is set at construction and never
// mutated afterwards.
type Config struct {
	K        int    // k-mer length, >= 1
	DelSize  int    // deletion length in bases, >= 1
	Limit    uint64 // lifetime cap on accepted positions; 0 = unlimited
	MaxAbund int    // abundance histogram cap; 0 = uncapped
}

func (c Config) validate() error {
	if c.K < 1 {
		return fmt.Errorf("mutate: k-mer size %d, must be >= 1", c.K)
	}
	if c.DelSize < 1 {
		return fmt.Errorf("mutate: deletion size %d, must be >= 1", c.DelSize)
	}
	return nil
}

// SkipFunc rejects candidate mutation positions. It is consulted once per
// candidate; returning true skips the position without touching the
// histograms or the processed count.
type SkipFunc func(seq []byte, pos int) bool

// Mutator carries the state shared by mutation scanners: the configuration,
// the reference count table, the optional skip predicate and progress
// reporter, the two lifetime histograms, and the processed-position counter.
// Histograms and the counter accumulate across every Process call on the
// owning scanner and are never reset.
type Mutator struct {
	cfg      Config
	counts   kmer.Table
	skip     SkipFunc
	progress *Progress

	// AbundHist records one increment per k-mer examined, keyed by abundance.
	AbundHist *Histogram
	// UniqueHist records one increment per accepted position, keyed by the
	// number of zero-abundance k-mers in that position's profile.
	UniqueHist *Histogram

	processed uint64
}

func newMutator(cfg Config, counts kmer.Table) (Mutator, error) {
	if err := cfg.validate(); err != nil {
		return Mutator{}, err
	}
	if counts == nil {
		return Mutator{}, fmt.Errorf("mutate: nil count table")
	}
	if counts.K() != cfg.K {
		return Mutator{}, fmt.Errorf("mutate: count table k=%d does not match scanner k=%d", counts.K(), cfg.K)
	}
	return Mutator{
		cfg:        cfg,
		counts:     counts,
		AbundHist:  NewCappedHistogram(cfg.MaxAbund),
		UniqueHist: NewHistogram(),
	}, nil
}

// Processed returns the lifetime number of positions accepted across all
// Process calls on this scanner. It never decreases.
func (m *Mutator) Processed() uint64 { return m.processed }

// SkipAmbiguous returns a SkipFunc rejecting positions whose flanking windows
// contain a base other than A/C/G/T.
func SkipAmbiguous(cfg Config) SkipFunc {
	return func(seq []byte, pos int) bool {
		left := seq[pos-cfg.K+1 : pos]
		right := seq[pos+cfg.DelSize : pos+cfg.DelSize+cfg.K]
		return !kmer.Clean(left) || !kmer.Clean(right)
	}
}
