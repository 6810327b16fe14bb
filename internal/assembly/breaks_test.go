package assembly

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/altingia/juicebox-scripts/internal/fastaio"
)

// testSeq builds a deterministic n-base sequence so slices can be told apart.
func testSeq(n int) string {
	bases := []byte("ACGT")
	out := make([]byte, n)
	for i := range out {
		out[i] = bases[i%4]
	}
	return string(out)
}

func storeWith(pairs ...string) *fastaio.SequenceStore {
	store := fastaio.NewSequenceStore()
	for i := 0; i < len(pairs); i += 2 {
		store.Set(pairs[i], pairs[i+1])
	}
	return store
}

func record(name string, length int) ContigRecord {
	return ContigRecord{Name: ParseContigName(name), Length: length}
}

// fragments declared out of order must still be sliced in index order
func Test_reconstructBreaks_outOfOrder(t *testing.T) {
	orig := testSeq(500)
	contigs := []ContigRecord{
		record("ctgA:::fragment_2", 200),
		record("ctgA:::fragment_1", 300),
	}

	rebuilt, err := ReconstructBreaks(contigs, storeWith("ctgA", orig), zap.NewNop())
	require.NoError(t, err)

	frag1, ok := rebuilt.Get("ctgA:::fragment_1")
	require.True(t, ok)
	assert.Equal(t, orig[:300], frag1)

	frag2, ok := rebuilt.Get("ctgA:::fragment_2")
	require.True(t, ok)
	assert.Equal(t, orig[300:500], frag2)
}

// concatenating fragments in index order reassembles the original contig
func Test_reconstructBreaks_roundTrip(t *testing.T) {
	orig := testSeq(1000)
	contigs := []ContigRecord{
		record("ctgB", 50),
		record("ctgA:::fragment_3:::debris", 100),
		record("ctgA:::fragment_1", 400),
		record("ctgA:::fragment_2", 500),
	}
	seqs := storeWith("ctgA", orig, "ctgB", testSeq(50))

	rebuilt, err := ReconstructBreaks(contigs, seqs, zap.NewNop())
	require.NoError(t, err)

	var joined strings.Builder
	for _, name := range []string{"ctgA:::fragment_1", "ctgA:::fragment_2", "ctgA:::fragment_3:::debris"} {
		seq, ok := rebuilt.Get(name)
		require.True(t, ok)
		joined.WriteString(seq)
	}
	assert.Equal(t, orig, joined.String())

	// unsplit contigs are copied through untouched
	ctgB, _ := rebuilt.Get("ctgB")
	assert.Equal(t, testSeq(50), ctgB)
}

// fragments of different contigs interleaved in declaration order
func Test_reconstructBreaks_interleaved(t *testing.T) {
	seqA := testSeq(300)
	seqB := strings.Repeat("G", 200)
	contigs := []ContigRecord{
		record("ctgB:::fragment_2", 120),
		record("ctgA:::fragment_1", 100),
		record("ctgB:::fragment_1", 80),
		record("ctgA:::fragment_2", 200),
	}

	rebuilt, err := ReconstructBreaks(contigs, storeWith("ctgA", seqA, "ctgB", seqB), zap.NewNop())
	require.NoError(t, err)

	b1, _ := rebuilt.Get("ctgB:::fragment_1")
	b2, _ := rebuilt.Get("ctgB:::fragment_2")
	assert.Equal(t, seqB[:80], b1)
	assert.Equal(t, seqB[80:200], b2)

	a2, _ := rebuilt.Get("ctgA:::fragment_2")
	assert.Equal(t, seqA[100:300], a2)
}

// an original contig whose FASTA record uses the underscore separator
func Test_reconstructBreaks_separatorFallback(t *testing.T) {
	seq := testSeq(100)
	contigs := []ContigRecord{record("ctgA:::fragment_1", 100)}
	seqs := storeWith("ctgA___fragment_1", seq)

	rebuilt, err := ReconstructBreaks(contigs, seqs, zap.NewNop())
	require.NoError(t, err)

	got, ok := rebuilt.Get("ctgA:::fragment_1")
	require.True(t, ok)
	assert.Equal(t, seq, got)
}

// a fragment-looking name with its own FASTA record was never broken
func Test_reconstructBreaks_fragmentNameInFasta(t *testing.T) {
	contigs := []ContigRecord{record("ctgA:::fragment_1", 40)}
	seqs := storeWith("ctgA:::fragment_1", testSeq(40))

	rebuilt, err := ReconstructBreaks(contigs, seqs, zap.NewNop())
	require.NoError(t, err)

	got, _ := rebuilt.Get("ctgA:::fragment_1")
	assert.Equal(t, testSeq(40), got)
}

func Test_reconstructBreaks_contigNotFound(t *testing.T) {
	contigs := []ContigRecord{record("ctgX:::fragment_1", 10)}

	_, err := ReconstructBreaks(contigs, storeWith("ctgA", testSeq(10)), zap.NewNop())

	var notFound *ContigNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func Test_reconstructBreaks_unsplitContigNotFound(t *testing.T) {
	contigs := []ContigRecord{record("ctgZ", 10)}

	_, err := ReconstructBreaks(contigs, storeWith("ctgA", testSeq(10)), zap.NewNop())

	var notFound *ContigNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ctgZ", notFound.Contig)
}

func Test_reconstructBreaks_missingIndexInGroup(t *testing.T) {
	contigs := []ContigRecord{
		record("ctgA:::fragment_1", 100),
		record("ctgA:::fragment_x", 100), // parses as a fragment, index missing
	}

	_, err := ReconstructBreaks(contigs, storeWith("ctgA", testSeq(200)), zap.NewNop())

	var badName *BadContigNameError
	require.ErrorAs(t, err, &badName)
}

func Test_reconstructBreaks_duplicateIndex(t *testing.T) {
	contigs := []ContigRecord{
		record("ctgA:::fragment_1", 100),
		record("ctgA:::fragment_1:::debris", 100),
	}

	_, err := ReconstructBreaks(contigs, storeWith("ctgA", testSeq(200)), zap.NewNop())

	var badName *BadContigNameError
	require.ErrorAs(t, err, &badName)
}

// a declared length longer than the remaining sequence is a warning, not a failure
func Test_reconstructBreaks_lengthMismatchWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	contigs := []ContigRecord{
		record("ctgA:::fragment_1", 80),
		record("ctgA:::fragment_2", 100), // only 20 bases remain
	}

	rebuilt, err := ReconstructBreaks(contigs, storeWith("ctgA", testSeq(100)), log)
	require.NoError(t, err)

	frag2, _ := rebuilt.Get("ctgA:::fragment_2")
	assert.Len(t, frag2, 20)
	assert.Equal(t, 1, logs.FilterMessage("fragment length does not match sliced sequence").Len())
}
