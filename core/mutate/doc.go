// core/mutate/doc.go

// Package mutate simulates point mutations against a reference k-mer count
// table, accumulating abundance and uniqueness statistics for the k-mers
// overlapping each synthetic mutation.
package mutate
