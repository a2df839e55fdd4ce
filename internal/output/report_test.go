// internal/output/report_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"mutsim-core/mutate"
	"mutsim/pkg/api"
)

func sampleReport() Report {
	abund := mutate.NewHistogram()
	abund.Increment(0)
	abund.Increment(0)
	abund.Increment(4)
	unique := mutate.NewHistogram()
	unique.Increment(2)
	return Report{
		K:          3,
		DelSize:    2,
		Positions:  1,
		Kmers:      3,
		SeqFiles:   []string{"reads.fa"},
		AbundHist:  abund,
		UniqueHist: unique,
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(), true))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "# mutsim deletion scan (k=3, delsize=2)\n"), out)
	require.Contains(t, out, "positions processed\t1\n")
	require.Contains(t, out, "k-mers examined\t3\n")
	require.Contains(t, out, "abundance histogram\t0:2 4:1\n")
	require.Contains(t, out, "uniqueness histogram\t2:1\n")
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(), false))
	require.NotContains(t, buf.String(), "#")
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, sampleReport(), true))

	want := "histogram\tvalue\tcount\n" +
		"abundance\t0\t2\n" +
		"abundance\t4\t1\n" +
		"uniqueness\t2\t1\n"
	require.Equal(t, want, buf.String())
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var got api.ReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	want := api.ReportV1{
		K:          3,
		DelSize:    2,
		Positions:  1,
		Kmers:      3,
		SeqFiles:   []string{"reads.fa"},
		AbundHist:  map[string]uint64{"0": 2, "4": 1},
		UniqueHist: map[string]uint64{"2": 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatTSV, FormatJSON} {
		require.True(t, ValidFormat(f))
	}
	require.False(t, ValidFormat("xml"))
}
