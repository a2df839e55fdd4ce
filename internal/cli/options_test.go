// internal/cli/options_test.go
package cli

import (
	"io"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("mutsim")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseDefaults(t *testing.T) {
	opt, err := parse(t, "--reference", "ref.fa", "--sequences", "reads.fa")
	require.NoError(t, err)
	require.Equal(t, 31, opt.KmerSize)
	require.Equal(t, 1, opt.DelSize)
	require.Equal(t, uint64(0), opt.Limit)
	require.Equal(t, 255, opt.MaxAbund)
	require.Equal(t, "text", opt.Output)
	require.True(t, opt.Header)
	require.True(t, opt.SkipAmbiguous)
	require.Equal(t, []string{"ref.fa"}, opt.RefFiles)
	require.Equal(t, []string{"reads.fa"}, opt.SeqFiles)
}

func TestParseRepeatableInputs(t *testing.T) {
	opt, err := parse(t,
		"--reference", "a.fa", "--reference", "b.fa",
		"--sequences", "x.fa", "--sequences", "-")
	require.NoError(t, err)
	require.Equal(t, []string{"a.fa", "b.fa"}, opt.RefFiles)
	require.Equal(t, []string{"x.fa", "-"}, opt.SeqFiles)
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		argv []string
	}{
		{"no table source", []string{"--sequences", "x.fa"}},
		{"table and reference", []string{"--table", "t.msk", "--reference", "r.fa", "--sequences", "x.fa"}},
		{"save-table with table", []string{"--table", "t.msk", "--save-table", "o.msk", "--sequences", "x.fa"}},
		{"no sequences", []string{"--reference", "r.fa"}},
		{"bad k", []string{"--reference", "r.fa", "--sequences", "x.fa", "--kmer-size", "0"}},
		{"bad delsize", []string{"--reference", "r.fa", "--sequences", "x.fa", "--del-size", "0"}},
		{"bad output", []string{"--reference", "r.fa", "--sequences", "x.fa", "--output", "xml"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.argv...)
			require.Error(t, err)
		})
	}
}

// Build-only mode: --reference + --save-table needs no --sequences.
func TestParseBuildOnly(t *testing.T) {
	opt, err := parse(t, "--reference", "r.fa", "--save-table", "r.msk")
	require.NoError(t, err)
	require.Empty(t, opt.SeqFiles)
	require.Equal(t, "r.msk", opt.SaveTable)
}

func TestParseHelp(t *testing.T) {
	_, err := parse(t, "-h")
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "-v")
	require.NoError(t, err)
	require.True(t, opt.Version)
}
