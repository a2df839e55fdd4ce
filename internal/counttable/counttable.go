// internal/counttable/counttable.go
package counttable

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/natefinch/atomic"
	"github.com/pierrec/lz4/v4"

	"mutsim-core/fasta"
	"mutsim-core/kmer"
)

// Binary table format constants.
//
// Layout: magic, u8 format version, u32 k, u64 entry count, u64 raw payload
// size, u64 stored payload size, payload. The payload is one (k-byte k-mer,
// u32 little-endian count) record per entry, LZ4 block-compressed. When the
// stored size equals the raw size the payload is uncompressed (LZ4 gained
// nothing).
const (
	tableMagic   = "MSK1"
	tableVersion = 1
	headerSize   = 4 + 1 + 4 + 8 + 8 + 8
)

var (
	ErrInvalidMagic    = errors.New("counttable: invalid table magic")
	ErrVersionMismatch = errors.New("counttable: table format version mismatch")
	ErrTruncated       = errors.New("counttable: table file truncated")
)

// Build streams every FASTA record in refFiles into a fresh counting table.
func Build(ctx context.Context, k int, refFiles []string) (*kmer.MapTable, error) {
	t := kmer.NewMapTable(k)
	for _, path := range refFiles {
		err := fasta.StreamPathCtx(ctx, path, func(rec fasta.Record) error {
			t.AddSequence(rec.Seq)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("counttable: count %s: %w", path, err)
		}
	}
	return t, nil
}

// Save writes t to path atomically in the MSK1 binary format. Entries are
// sorted so identical tables produce identical files.
func Save(t *kmer.MapTable, path string) error {
	type entry struct {
		km string
		n  uint32
	}
	entries := make([]entry, 0, t.Len())
	t.Range(func(km string, n uint32) bool {
		entries = append(entries, entry{km, n})
		return true
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].km < entries[j].km })

	raw := make([]byte, 0, len(entries)*(t.K()+4))
	var cnt [4]byte
	for _, e := range entries {
		raw = append(raw, e.km...)
		binary.LittleEndian.PutUint32(cnt[:], e.n)
		raw = append(raw, cnt[:]...)
	}

	payload := raw
	if len(raw) > 0 {
		compressed := make([]byte, lz4.CompressBlockBound(len(raw)))
		written, err := lz4.CompressBlock(raw, compressed, nil)
		if err != nil {
			return fmt.Errorf("counttable: compress: %w", err)
		}
		// written == 0 means incompressible; store raw.
		if written > 0 && written < len(raw) {
			payload = compressed[:written]
		}
	}

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(payload)))
	buf.WriteString(tableMagic)
	buf.WriteByte(tableVersion)
	var hdr [4 + 8 + 8 + 8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(t.K()))
	binary.LittleEndian.PutUint64(hdr[4:12], uint64(len(entries)))
	binary.LittleEndian.PutUint64(hdr[12:20], uint64(len(raw)))
	binary.LittleEndian.PutUint64(hdr[20:28], uint64(len(payload)))
	buf.Write(hdr[:])
	buf.Write(payload)

	if err := atomic.WriteFile(path, buf); err != nil {
		return fmt.Errorf("counttable: write %s: %w", path, err)
	}
	return nil
}

// Load reads a table previously written by Save.
func Load(path string) (*kmer.MapTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("counttable: read %s: %w", path, err)
	}
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if string(data[:4]) != tableMagic {
		return nil, ErrInvalidMagic
	}
	if data[4] != tableVersion {
		return nil, ErrVersionMismatch
	}
	k := int(binary.LittleEndian.Uint32(data[5:9]))
	entries := binary.LittleEndian.Uint64(data[9:17])
	rawSize := binary.LittleEndian.Uint64(data[17:25])
	storedSize := binary.LittleEndian.Uint64(data[25:33])
	if uint64(len(data)-headerSize) < storedSize {
		return nil, ErrTruncated
	}
	if entries*uint64(k+4) != rawSize {
		return nil, ErrTruncated
	}

	payload := data[headerSize : headerSize+int(storedSize)]
	raw := payload
	if storedSize != rawSize {
		raw = make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("counttable: decompress %s: %w", path, err)
		}
		if uint64(n) != rawSize {
			return nil, ErrTruncated
		}
	}

	t := kmer.NewMapTable(k)
	for off := 0; off < len(raw); off += k + 4 {
		km := string(raw[off : off+k])
		count := binary.LittleEndian.Uint32(raw[off+k : off+k+4])
		t.SetCount(km, count)
	}
	return t, nil
}
