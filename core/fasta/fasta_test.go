// core/fasta/fasta_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 description text
ACGT
acgt
>seq2
NNnn
`

func collect(t *testing.T, r *strings.Reader) []Record {
	t.Helper()
	var recs []Record
	if err := StreamCtx(context.Background(), r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	}); err != nil {
		t.Fatalf("stream: %v", err)
	}
	return recs
}

// Multi-record input: IDs are the first header token, sequence lines are joined.
func TestStreamMultiRecord(t *testing.T) {
	recs := collect(t, strings.NewReader(plain))
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "seq1" || string(recs[0].Seq) != "ACGTacgt" {
		t.Errorf("record 0 = %q %q", recs[0].ID, recs[0].Seq)
	}
	if recs[1].ID != "seq2" || string(recs[1].Seq) != "NNnn" {
		t.Errorf("record 1 = %q %q", recs[1].ID, recs[1].Seq)
	}
}

func TestStreamEmptyInput(t *testing.T) {
	recs := collect(t, strings.NewReader(""))
	if len(recs) != 0 {
		t.Fatalf("got %d records from empty input, want 0", len(recs))
	}
}

// A canceled context stops the scan promptly with ctx.Err().
func TestStreamCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := StreamCtx(ctx, strings.NewReader(plain), func(Record) error { return nil })
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
}

// Gzipped files are detected and decompressed transparently.
func TestStreamPathGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(plain)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	var ids []string
	if err := StreamPathCtx(context.Background(), path, func(rec Record) error {
		ids = append(ids, rec.ID)
		return nil
	}); err != nil {
		t.Fatalf("stream gz: %v", err)
	}
	if len(ids) != 2 || ids[0] != "seq1" || ids[1] != "seq2" {
		t.Fatalf("unexpected record IDs: %v", ids)
	}
}

func TestStreamPathMissingFile(t *testing.T) {
	err := StreamPathCtx(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), func(Record) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
