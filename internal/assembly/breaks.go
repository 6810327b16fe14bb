package assembly

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/altingia/juicebox-scripts/internal/fastaio"
)

// orderForSlicing returns the contig records sorted so fragments of one
// original contig sit together in ascending fragment-index order, with
// original contigs in lexicographic name order. Declarations can list
// fragments of a broken contig in any order, interleaved with other
// contigs, so slicing must not trust file order.
//
// Naming-convention violations are caught here, once, during key
// extraction: a fragment missing its index while siblings claim the same
// original contig, and two fragments of one contig with the same index.
func orderForSlicing(contigs []ContigRecord) ([]ContigRecord, error) {
	byOriginal := map[string][]ContigRecord{}
	for _, record := range contigs {
		key := record.Name.Original
		byOriginal[key] = append(byOriginal[key], record)
	}

	for _, group := range byOriginal {
		if len(group) < 2 {
			continue
		}
		seen := map[int]string{}
		for _, record := range group {
			if !record.Name.HasIndex {
				return nil, &BadContigNameError{
					Name:   record.Name.Raw,
					Reason: "formatted as if broken but no fragment index detected",
				}
			}
			if other, dup := seen[record.Name.Index]; dup {
				return nil, &BadContigNameError{
					Name:   record.Name.Raw,
					Reason: "fragment index repeated with " + other,
				}
			}
			seen[record.Name.Index] = record.Name.Raw
		}
	}

	ordered := make([]ContigRecord, len(contigs))
	copy(ordered, contigs)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Name, ordered[j].Name
		if a.Original != b.Original {
			return a.Original < b.Original
		}
		return a.Index < b.Index
	})

	return ordered, nil
}

// ReconstructBreaks materializes the sequence of every fragment produced by
// breaking a contig in Juicebox, slicing the original contig's sequence at
// the running offset implied by the fragment lengths. Unsplit contigs are
// copied through unchanged. The returned store fully replaces seqs for all
// downstream output.
func ReconstructBreaks(contigs []ContigRecord, seqs *fastaio.SequenceStore, log *zap.Logger) (*fastaio.SequenceStore, error) {
	ordered, err := orderForSlicing(contigs)
	if err != nil {
		return nil, err
	}

	rebuilt := fastaio.NewSequenceStore()
	offsets := map[string]int{}

	for _, record := range ordered {
		name := record.Name

		// A name that looks like a fragment but already has its own
		// FASTA record was never broken; treat it as unsplit.
		if !name.IsFragment || seqs.Has(name.Raw) {
			seq, ok := seqs.Get(name.Raw)
			if !ok {
				return nil, &ContigNotFoundError{Contig: name.Raw}
			}
			rebuilt.Set(name.Raw, seq)
			continue
		}

		orig := name.Original
		if !seqs.Has(orig) {
			// older exports rewrote the separator in the FASTA only
			orig = strings.ReplaceAll(name.Raw, sepColons, sepUnderscores)
		}
		original, ok := seqs.Get(orig)
		if !ok {
			return nil, &ContigNotFoundError{Contig: name.Raw}
		}

		start := offsets[orig]
		end := start + record.Length
		if start > len(original) {
			start = len(original)
		}
		if end > len(original) {
			end = len(original)
		}

		slice := original[start:end]
		rebuilt.Set(name.Raw, slice)
		offsets[orig] += record.Length

		if len(slice) != record.Length {
			log.Warn("fragment length does not match sliced sequence",
				zap.String("originalContig", orig),
				zap.String("fragment", name.Raw),
				zap.Int("declaredLength", record.Length),
				zap.Int("slicedLength", len(slice)),
			)
		}
	}

	return rebuilt, nil
}
