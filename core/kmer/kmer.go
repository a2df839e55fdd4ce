// core/kmer/kmer.go
package kmer

// Decompose splits seq into its overlapping k-length substrings, in order,
// sliding by one base. A sequence shorter than k yields nil. The returned
// slices alias seq.
func Decompose(seq []byte, k int) [][]byte {
	if k < 1 || len(seq) < k {
		return nil
	}
	out := make([][]byte, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		out = append(out, seq[i:i+k])
	}
	return out
}

// Clean reports whether every base in seq is unambiguous (A/C/G/T, either case).
func Clean(seq []byte) bool {
	for _, b := range seq {
		switch b {
		case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		default:
			return false
		}
	}
	return true
}
