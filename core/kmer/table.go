// core/kmer/table.go
package kmer

import "bytes"

// Table reports observed k-mer frequencies from a reference.
type Table interface {
	// K is the k-mer length the table was counted at.
	K() int
	// Count returns the observed frequency of kmer; 0 means never observed.
	Count(kmer []byte) int
}

// MapTable is an in-memory counting table backed by a map. K-mers are
// uppercased before hashing, so lookups are case-insensitive. Only clean
// (A/C/G/T) k-mers are ever counted; ambiguous ones report 0.
type MapTable struct {
	k      int
	counts map[string]uint32
}

// NewMapTable returns an empty counting table for k-length substrings.
func NewMapTable(k int) *MapTable {
	return &MapTable{k: k, counts: make(map[string]uint32)}
}

// K returns the configured k-mer length.
func (t *MapTable) K() int { return t.k }

// Len returns the number of distinct k-mers counted.
func (t *MapTable) Len() int { return len(t.counts) }

// Add counts one occurrence of kmer. Wrong-length or ambiguous k-mers are
// ignored.
func (t *MapTable) Add(kmer []byte) {
	if len(kmer) != t.k || !Clean(kmer) {
		return
	}
	t.counts[string(bytes.ToUpper(kmer))]++
}

// AddSequence counts every clean k-mer of seq and returns how many were
// counted.
func (t *MapTable) AddSequence(seq []byte) int {
	n := 0
	for i := 0; i+t.k <= len(seq); i++ {
		km := seq[i : i+t.k]
		if !Clean(km) {
			continue
		}
		t.counts[string(bytes.ToUpper(km))]++
		n++
	}
	return n
}

// SetCount overwrites the stored count for kmer. Used by table loaders.
func (t *MapTable) SetCount(kmer string, count uint32) {
	t.counts[kmer] = count
}

// Count returns the observed frequency of kmer, 0 if never observed.
func (t *MapTable) Count(kmer []byte) int {
	return int(t.counts[string(bytes.ToUpper(kmer))])
}

// Range calls fn for every (k-mer, count) pair until fn returns false.
// Iteration order is unspecified.
func (t *MapTable) Range(fn func(kmer string, count uint32) bool) {
	for km, n := range t.counts {
		if !fn(km, n) {
			return
		}
	}
}
