// core/mutate/deletion.go
package mutate

import (
	"fmt"
	"io"

	"mutsim-core/kmer"
)

// DeletionScanner simulates a fixed-length deletion at every eligible
// position of a sequence and folds the abundance profile of each synthetic
// mutant into the shared histograms. It is not safe for concurrent use.
type DeletionScanner struct {
	Mutator
}

// Option adjusts a scanner at construction time.
type Option func(*DeletionScanner)

// WithSkip installs a position-eligibility predicate.
func WithSkip(fn SkipFunc) Option {
	return func(s *DeletionScanner) { s.skip = fn }
}

// WithProgress installs a periodic progress reporter. One unit is recorded
// per accepted position.
func WithProgress(p *Progress) Option {
	return func(s *DeletionScanner) { s.progress = p }
}

// NewDeletionScanner builds a scanner over counts. The table's k must match
// cfg.K; a mismatch would silently corrupt the statistics, so it is rejected
// here.
func NewDeletionScanner(cfg Config, counts kmer.Table, opts ...Option) (*DeletionScanner, error) {
	m, err := newMutator(cfg, counts)
	if err != nil {
		return nil, err
	}
	s := &DeletionScanner{Mutator: m}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Process scans seq left to right, simulating one deletion per eligible
// position i (k-1 <= i, i+k+delsize <= len(seq)). It returns the number of
// k-mers examined in this call: k per accepted position.
//
// A sequence shorter than the minimum window yields zero work and no error.
// Once the lifetime limit is reached, this and all future calls stop
// silently. A wrong synthetic-sequence length or decomposition size is a
// broken collaborator contract and aborts the call with an error rather than
// recording corrupt statistics.
func (s *DeletionScanner) Process(seq []byte) (uint64, error) {
	k := s.cfg.K
	del := s.cfg.DelSize
	var kmercount uint64

	for i := k - 1; i+k+del <= len(seq); i++ {
		if s.cfg.Limit > 0 && s.processed >= s.cfg.Limit {
			break
		}
		if s.skip != nil && s.skip(seq, i) {
			continue
		}
		s.processed++

		// Left flank: k-1 bases ending at i-1. Right flank: k bases from
		// i+del. Their concatenation is the post-deletion neighborhood.
		synth := make([]byte, 0, 2*k-1)
		synth = append(synth, seq[i-k+1:i]...)
		synth = append(synth, seq[i+del:i+del+k]...)
		if len(synth) != 2*k-1 {
			return kmercount, fmt.Errorf("mutate: synthetic sequence length %d, want %d", len(synth), 2*k-1)
		}

		rec, err := newDeletionRecord(synth, &s.Mutator)
		if err != nil {
			return kmercount, err
		}
		if s.progress != nil && s.progress.Tick() {
			mb := float64(s.progress.Units()) / 1e6
			fmt.Fprintf(s.progress.W, "# ...processed %.1f Mb of sequence\n", mb)
			rec.render(s.progress.W)
			fmt.Fprintf(s.progress.W, "# %s\n# %s\n", s.AbundHist, s.UniqueHist)
		}
		kmercount += uint64(k)
	}
	return kmercount, nil
}

// deletionRecord is the abundance profile of one synthetic deletion. Its
// construction is where all histogram updates happen.
type deletionRecord struct {
	seq    []byte
	abunds []int
	k      int
}

func newDeletionRecord(seq []byte, m *Mutator) (*deletionRecord, error) {
	kmers := kmer.Decompose(seq, m.cfg.K)
	if len(kmers) != m.cfg.K {
		return nil, fmt.Errorf("mutate: decomposition produced %d k-mers, want %d", len(kmers), m.cfg.K)
	}
	r := &deletionRecord{seq: seq, k: m.cfg.K, abunds: make([]int, 0, m.cfg.K)}
	unique := 0
	for _, km := range kmers {
		n := m.counts.Count(km)
		m.AbundHist.Increment(n)
		r.abunds = append(r.abunds, n)
		if n == 0 {
			unique++
		}
	}
	m.UniqueHist.Increment(unique)
	return r, nil
}

// render writes the record block: the synthetic sequence, a marker aligned
// under the first base of the right flank, and the k abundances in order.
func (r *deletionRecord) render(w io.Writer) {
	fmt.Fprintf(w, ">%s\n", r.seq)
	fmt.Fprintf(w, "%*s\n", r.k+1, "|")
	for i, n := range r.abunds {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, n)
	}
	fmt.Fprintln(w)
}
