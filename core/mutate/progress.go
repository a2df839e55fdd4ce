// core/mutate/progress.go
package mutate

import "io"

// Progress gates periodic reporting during a scan. Tick records one unit of
// work and reports whether a progress block is due (every Interval units;
// Interval <= 0 never fires).
type Progress struct {
	Interval uint64
	W        io.Writer

	n uint64
}

// NewProgress returns a reporter that fires every interval units, writing to w.
func NewProgress(interval uint64, w io.Writer) *Progress {
	return &Progress{Interval: interval, W: w}
}

// Tick records one unit and reports whether output is due.
func (p *Progress) Tick() bool {
	p.n++
	return p.Interval > 0 && p.n%p.Interval == 0
}

// Units returns the number of ticks recorded so far.
func (p *Progress) Units() uint64 { return p.n }
