// internal/output/report.go
package output

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"mutsim-core/mutate"
	"mutsim/pkg/api"
)

// Report is the aggregate outcome of one deletion-scan run.
type Report struct {
	K          int
	DelSize    int
	Limit      uint64
	Positions  uint64
	Kmers      uint64
	SeqFiles   []string
	AbundHist  *mutate.Histogram
	UniqueHist *mutate.Histogram
}

// Formats accepted by Write.
const (
	FormatText = "text"
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// ValidFormat reports whether format names a known report writer.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatTSV, FormatJSON:
		return true
	}
	return false
}

// Write renders r to w in the requested format.
func Write(w io.Writer, format string, r Report, header bool) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatTSV:
		return WriteTSV(w, r, header)
	default:
		return WriteText(w, r, header)
	}
}

// WriteText renders the human-readable summary: run parameters, work totals,
// and one line per histogram.
func WriteText(w io.Writer, r Report, header bool) error {
	if header {
		if _, err := fmt.Fprintf(w, "# mutsim deletion scan (k=%d, delsize=%d)\n", r.K, r.DelSize); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		"positions processed\t%s\nk-mers examined\t%s\nabundance histogram\t%s\nuniqueness histogram\t%s\n",
		humanize.Comma(int64(r.Positions)),
		humanize.Comma(int64(r.Kmers)),
		r.AbundHist,
		r.UniqueHist,
	)
	return err
}

// WriteTSV renders one row per histogram bucket: histogram, value, count.
func WriteTSV(w io.Writer, r Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "histogram\tvalue\tcount"); err != nil {
			return err
		}
	}
	for _, row := range []struct {
		name string
		h    *mutate.Histogram
	}{
		{"abundance", r.AbundHist},
		{"uniqueness", r.UniqueHist},
	} {
		for _, v := range row.h.Buckets() {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", row.name, v, row.h.Count(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ToAPIReport converts a run report to the stable wire schema (v1).
func ToAPIReport(r Report) api.ReportV1 {
	v := api.ReportV1{
		K:          r.K,
		DelSize:    r.DelSize,
		Limit:      r.Limit,
		Positions:  r.Positions,
		Kmers:      r.Kmers,
		SeqFiles:   append([]string(nil), r.SeqFiles...),
		AbundHist:  histMap(r.AbundHist),
		UniqueHist: histMap(r.UniqueHist),
	}
	return v
}

func histMap(h *mutate.Histogram) map[string]uint64 {
	out := make(map[string]uint64, len(h.Buckets()))
	for _, v := range h.Buckets() {
		out[fmt.Sprintf("%d", v)] = h.Count(v)
	}
	return out
}
