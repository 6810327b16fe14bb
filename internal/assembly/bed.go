package assembly

import (
	"fmt"
	"strings"
)

// Bed renders the assembly as a BED table: half-open 0-based rows per
// contig placement and a named gap row between consecutive contigs. Gap
// names carry a single counter across the whole file, not per scaffold.
func (m *Model) Bed() string {
	var out strings.Builder
	out.WriteString("##bed file\n")
	out.WriteString("# This file was generated by converting juicebox assembly format\n")

	gapNumber := 1
	for i, scaffold := range m.Scaffolds {
		name := m.ScaffoldName(i+1, scaffold)

		offset := 0
		for j, placement := range scaffold {
			fmt.Fprintf(&out, "%s\t%d\t%d\t%s\t%d\t%c\n",
				name, offset, offset+placement.Length,
				placement.Name.Raw, placement.Length, placement.Strand)
			offset += placement.Length

			if j < len(scaffold)-1 {
				fmt.Fprintf(&out, "%s\t%d\t%d\tpg_gap_%d\n",
					name, offset, offset+m.GapSize, gapNumber)
				offset += m.GapSize
				gapNumber++
			}
		}
	}

	return strings.TrimRight(out.String(), "\n")
}
