package assembly

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_breakReport(t *testing.T) {
	text := strings.Join([]string{
		">ctgA:::fragment_2 1 201",
		">ctgA:::fragment_1 2 301",
		">ctgA:::fragment_3:::debris 3 101",
		">ctgB 4 401",
		"1 2 3 4",
	}, "\n") + "\n"
	seqs := storeWith("ctgA", testSeq(600), "ctgB", testSeq(400))
	m := modelFor(t, text, seqs, false, false)

	report, err := m.BreakReport()
	require.NoError(t, err)

	want := strings.Join([]string{
		"#1 total breaks in 1 contigs",
		"#orig_contig\tfragment\tbreak_start\tbreak_end\tfragment_len",
		"ctgA\tctgA:::fragment_1\t0\t300\t300",
		"ctgA\tctgA:::fragment_2\t300\t500\t200",
		"ctgA\tctgA:::fragment_3:::debris\t500\t600\t100",
		"",
	}, "\n")

	assert.Equal(t, want, report)
}

func Test_breakReport_noBreaks(t *testing.T) {
	m := modelFor(t, ">ctgA 1 501\n1\n", storeWith("ctgA", testSeq(500)), false, false)

	report, err := m.BreakReport()
	require.NoError(t, err)

	assert.Equal(t, "#0 total breaks in 0 contigs\n#orig_contig\tfragment\tbreak_start\tbreak_end\tfragment_len\n", report)
}

// fragments of two contigs keep independent running offsets
func Test_breakReport_twoContigs(t *testing.T) {
	text := strings.Join([]string{
		">ctgB:::fragment_1 1 101",
		">ctgA:::fragment_1 2 201",
		">ctgB:::fragment_2:::debris 3 51",
		">ctgA:::fragment_2:::debris 4 301",
		"1 2 3 4",
	}, "\n") + "\n"
	seqs := storeWith("ctgA", testSeq(500), "ctgB", testSeq(150))
	m := modelFor(t, text, seqs, false, false)

	report, err := m.BreakReport()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "#2 total breaks in 2 contigs", lines[0])

	// rows come out grouped by original contig in name order
	assert.True(t, strings.HasPrefix(lines[2], "ctgA\tctgA:::fragment_1\t0\t200\t200"))
	assert.True(t, strings.HasPrefix(lines[3], "ctgA\tctgA:::fragment_2:::debris\t200\t500\t300"))
	assert.True(t, strings.HasPrefix(lines[4], "ctgB\tctgB:::fragment_1\t0\t100\t100"))
	assert.True(t, strings.HasPrefix(lines[5], "ctgB\tctgB:::fragment_2:::debris\t100\t150\t50"))
}
