// core/mutate/histogram.go
package mutate

import (
	"sort"
	"strconv"
	"strings"
)

// Histogram counts occurrences of non-negative integer values. It is never
// reset for the lifetime of the owning scanner; callers needing isolation
// construct fresh instances.
type Histogram struct {
	cap    int // values above cap collapse into the cap bucket; 0 = uncapped
	counts map[int]uint64
}

// NewHistogram returns an empty, uncapped histogram.
func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[int]uint64)}
}

// NewCappedHistogram returns a histogram that clamps values above max into
// the max bucket. max <= 0 means uncapped.
func NewCappedHistogram(max int) *Histogram {
	h := NewHistogram()
	if max > 0 {
		h.cap = max
	}
	return h
}

// Increment adds one occurrence of v.
func (h *Histogram) Increment(v int) {
	if h.cap > 0 && v > h.cap {
		v = h.cap
	}
	h.counts[v]++
}

// Count returns the occurrences recorded at value v.
func (h *Histogram) Count(v int) uint64 { return h.counts[v] }

// Total is the sum over all bucket counts.
func (h *Histogram) Total() uint64 {
	var n uint64
	for _, c := range h.counts {
		n += c
	}
	return n
}

// Buckets returns the populated values in ascending order.
func (h *Histogram) Buckets() []int {
	out := make([]int, 0, len(h.counts))
	for v := range h.counts {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// String renders the histogram as a single line of value:count pairs in
// ascending value order.
func (h *Histogram) String() string {
	var sb strings.Builder
	for i, v := range h.Buckets() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(h.counts[v], 10))
	}
	return sb.String()
}
