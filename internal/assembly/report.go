package assembly

import (
	"fmt"
	"strings"
)

// BreakReport summarizes every break the .assembly file introduced: one
// row per fragment with its half-open span on the original contig, plus a
// header counting breaks (debris fragments) and affected contigs.
//
// Fragments are reported in slicing order so the running per-contig
// offsets line up with the reconstructed sequences.
func (m *Model) BreakReport() (string, error) {
	ordered, err := orderForSlicing(m.Contigs)
	if err != nil {
		return "", err
	}

	var rows strings.Builder
	breakCount := 0
	brokenContigs := map[string]bool{}
	offsets := map[string]int{}

	for _, record := range ordered {
		name := record.Name
		if !name.IsFragment {
			continue
		}

		start := offsets[name.Original]
		end := start + record.Length
		fmt.Fprintf(&rows, "%s\t%s\t%d\t%d\t%d\n",
			name.Original, name.Raw, start, end, record.Length)

		if name.IsDebris {
			breakCount++
		}
		brokenContigs[name.Original] = true
		offsets[name.Original] += record.Length
	}

	var out strings.Builder
	fmt.Fprintf(&out, "#%d total breaks in %d contigs\n", breakCount, len(brokenContigs))
	out.WriteString("#orig_contig\tfragment\tbreak_start\tbreak_end\tfragment_len\n")
	out.WriteString(rows.String())

	return out.String(), nil
}
