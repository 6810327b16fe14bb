package assembly

import (
	"fmt"

	"github.com/altingia/juicebox-scripts/internal/fastaio"
)

// Model is the processed assembly: the reconstructed sequences, the
// declared contig list, and the scaffold set, plus the few settings that
// shape output. It is built once per conversion and read-only afterwards;
// every emitter derives its offsets from the same scaffold traversal.
type Model struct {
	Sequences *fastaio.SequenceStore
	Contigs   []ContigRecord
	Scaffolds []Scaffold

	// ContigMode is true when the scaffolds were synthesized one per
	// contig rather than read from grouping lines.
	ContigMode bool

	// SimpleChrNames selects "ChromosomeX" scaffold names over the
	// detailed PGA_scaffold template. No effect in contig mode.
	SimpleChrNames bool

	// GapSize is the filler length between adjacent contigs.
	GapSize int

	// WrapWidth is the FASTA line width.
	WrapWidth int
}

// NewModel assembles the read-only model handed to the emitters.
func NewModel(seqs *fastaio.SequenceStore, contigs []ContigRecord, scaffolds []Scaffold, simpleChrNames bool, gapSize, wrapWidth int) *Model {
	contigMode := len(scaffolds) > 0 && scaffolds[0][0].Derived

	return &Model{
		Sequences:      seqs,
		Contigs:        contigs,
		Scaffolds:      scaffolds,
		ContigMode:     contigMode,
		SimpleChrNames: simpleChrNames,
		GapSize:        gapSize,
		WrapWidth:      wrapWidth,
	}
}

// ScaffoldLength is the scaffold's span including the gaps between its
// contigs (but none after the last).
func (m *Model) ScaffoldLength(scaffold Scaffold) int {
	length := 0
	for i, placement := range scaffold {
		length += placement.Length
		if i < len(scaffold)-1 {
			length += m.GapSize
		}
	}
	return length
}

// ScaffoldName builds the display name for the 1-based scaffold index.
//
// Contig mode keeps the contig's own name with the break separator
// normalized. Simple naming uses ChromosomeX for multi-contig scaffolds and
// the contig-style name otherwise. The default is the detailed
// PGA_scaffold template encoding index, contig count, and gapped length.
func (m *Model) ScaffoldName(index int, scaffold Scaffold) string {
	switch {
	case m.ContigMode:
		return scaffold[0].Name.Display()
	case m.SimpleChrNames:
		if len(scaffold) > 1 {
			return fmt.Sprintf("Chromosome%d", index)
		}
		return scaffold[0].Name.Display()
	default:
		return fmt.Sprintf("PGA_scaffold_%d__%d_contigs__length_%d",
			index, len(scaffold), m.ScaffoldLength(scaffold))
	}
}
