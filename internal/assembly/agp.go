package assembly

import (
	"fmt"
	"strings"
)

// AGP gap row constants. The U component type marks a gap of unknown true
// size, sized here at the fixed scaffold gap.
const (
	agpContigType  = "W"
	agpGapType     = "U"
	agpGapKind     = "scaffold"
	agpHasEvidence = "yes"
	agpEvidence    = "paired-ends"
)

// AGP renders the assembly as an AGP 2.0 table: a 9-column row per contig
// placement and a 9-column gap row between consecutive contigs, using the
// same per-scaffold running offset as the sequence output.
func (m *Model) AGP() string {
	var out strings.Builder
	out.WriteString("##agp-version 2.0\n")
	out.WriteString("# This file was generated by converting juicebox assembly format\n")

	for i, scaffold := range m.Scaffolds {
		name := m.ScaffoldName(i+1, scaffold)

		offset := 1 // AGP coordinates are 1-based inclusive
		part := 1
		for j, placement := range scaffold {
			fmt.Fprintf(&out, "%s\t%d\t%d\t%d\t%s\t%s\t%d\t%d\t%c\n",
				name, offset, offset+placement.Length-1, part,
				agpContigType, placement.Name.Raw, 1, placement.Length, placement.Strand)
			offset += placement.Length
			part++

			if j < len(scaffold)-1 {
				fmt.Fprintf(&out, "%s\t%d\t%d\t%d\t%s\t%d\t%s\t%s\t%s\n",
					name, offset, offset+m.GapSize-1, part,
					agpGapType, m.GapSize, agpGapKind, agpHasEvidence, agpEvidence)
				offset += m.GapSize
				part++
			}
		}
	}

	return strings.TrimRight(out.String(), "\n")
}
