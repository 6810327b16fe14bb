package assembly

import (
	"fmt"
	"strings"
)

// complements maps each base to its complement, case-preserving, with N
// mapping to itself. A zero entry means the base cannot be complemented.
var complements = func() [256]byte {
	var table [256]byte
	for from, to := range map[byte]byte{
		'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
		'a': 't', 'c': 'g', 'g': 'c', 't': 'a',
		'N': 'N', 'n': 'n',
	} {
		table[from] = to
	}
	return table
}()

// ReverseComplement returns the reverse complement of sequence, failing on
// any character outside {A,C,G,T,N} (either case).
func ReverseComplement(sequence string) (string, error) {
	out := make([]byte, len(sequence))
	for i := 0; i < len(sequence); i++ {
		complement := complements[sequence[len(sequence)-1-i]]
		if complement == 0 {
			return "", fmt.Errorf("cannot complement base %q in sequence", sequence[len(sequence)-1-i])
		}
		out[i] = complement
	}
	return string(out), nil
}

// Fasta renders the reconstructed assembly as FASTA: one record per
// scaffold, contigs joined by gap-size runs of "n", minus-strand contigs
// reverse-complemented, wrapped at the model's line width.
func (m *Model) Fasta() (string, error) {
	var out strings.Builder

	for i, scaffold := range m.Scaffolds {
		out.WriteByte('>')
		out.WriteString(m.ScaffoldName(i+1, scaffold))
		out.WriteByte('\n')

		var seq strings.Builder
		for j, placement := range scaffold {
			contigSeq, ok := m.Sequences.Get(placement.Name.Raw)
			if !ok {
				return "", &ContigNotFoundError{Contig: placement.Name.Raw}
			}

			if placement.Strand == '-' {
				rc, err := ReverseComplement(contigSeq)
				if err != nil {
					return "", fmt.Errorf("contig %s: %v", placement.Name.Raw, err)
				}
				contigSeq = rc
			}
			seq.WriteString(contigSeq)

			if j < len(scaffold)-1 {
				seq.WriteString(strings.Repeat("n", m.GapSize))
			}
		}

		wrapSequence(&out, seq.String(), m.WrapWidth)
	}

	return strings.TrimRight(out.String(), "\n"), nil
}

// wrapSequence writes seq to out in lines of at most width characters.
func wrapSequence(out *strings.Builder, seq string, width int) {
	for start := 0; start < len(seq); start += width {
		end := start + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[start:end])
		out.WriteByte('\n')
	}
}
