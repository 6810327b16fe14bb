package assembly

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ContigRecord is a single contig declaration from the top section of a
// .assembly file.
type ContigRecord struct {
	// Name as declared, fragment markers and all.
	Name ContigName

	// Length of the contig. The .assembly format declares lengths one
	// base longer than the sequence; the declared value minus one is
	// stored here for bit-compatibility with the downstream tools.
	Length int
}

// OrientedPlacement is one contig placed on a scaffold with a strand.
type OrientedPlacement struct {
	Name   ContigName
	Length int

	// Strand is '+' or '-'.
	Strand byte

	// Derived is true when the placement was synthesized in contig mode
	// rather than read from a scaffold grouping line.
	Derived bool
}

// Scaffold is an ordered run of oriented contig placements.
type Scaffold []OrientedPlacement

// ParseAssembly reads a .assembly file into the declared contig list and
// the scaffold set.
//
// Declaration lines are ">name index length" with 1-based sequential
// indices. Grouping lines are whitespace-separated signed indices into the
// declaration order, the sign giving the strand. With contigMode set,
// grouping lines are ignored and one single-contig scaffold is synthesized
// per declaration, sorted by contig name.
func ParseAssembly(r io.Reader, contigMode bool) ([]ContigRecord, []Scaffold, error) {
	var contigs []ContigRecord
	var scaffolds []Scaffold

	unscaffolded := map[string]bool{}
	var unscaffoldedOrder []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			record, err := parseDeclaration(line, len(contigs)+1)
			if err != nil {
				return nil, nil, err
			}
			contigs = append(contigs, record)
			unscaffolded[record.Name.Raw] = true
			unscaffoldedOrder = append(unscaffoldedOrder, record.Name.Raw)
			continue
		}

		if contigMode {
			continue // groupings are ignored, placements are synthesized below
		}

		scaffold, err := parseGrouping(line, contigs, unscaffolded)
		if err != nil {
			return nil, nil, err
		}
		scaffolds = append(scaffolds, scaffold)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	if contigMode {
		for _, record := range contigs {
			scaffolds = append(scaffolds, Scaffold{{
				Name:    record.Name,
				Length:  record.Length,
				Strand:  '+',
				Derived: true,
			}})
			delete(unscaffolded, record.Name.Raw)
		}
		sort.Slice(scaffolds, func(i, j int) bool {
			return scaffolds[i][0].Name.Raw < scaffolds[j][0].Name.Raw
		})
	}

	if len(unscaffolded) > 0 {
		var missing []string
		for _, name := range unscaffoldedOrder {
			if unscaffolded[name] {
				missing = append(missing, name)
			}
		}
		return nil, nil, &UnscaffoldedContigError{Contigs: missing}
	}

	return contigs, scaffolds, nil
}

// parseDeclaration reads a ">name index length" line. want is the next
// expected 1-based declaration index.
func parseDeclaration(line string, want int) (ContigRecord, error) {
	tokens := strings.Fields(line[1:])
	if len(tokens) < 3 {
		return ContigRecord{}, fmt.Errorf("malformed contig declaration %q", line)
	}

	index, err := strconv.Atoi(tokens[1])
	if err != nil {
		return ContigRecord{}, fmt.Errorf("malformed contig index in %q: %v", line, err)
	}
	if index != want {
		return ContigRecord{}, &MissingFragmentError{Index: want}
	}

	length, err := strconv.Atoi(tokens[2])
	if err != nil {
		return ContigRecord{}, fmt.Errorf("malformed contig length in %q: %v", line, err)
	}
	if length == 0 {
		return ContigRecord{}, &ZeroLengthContigError{Contig: tokens[0]}
	}

	return ContigRecord{
		Name:   ParseContigName(tokens[0]),
		Length: length - 1, // declared lengths are one over the sequence length
	}, nil
}

// parseGrouping reads one scaffold line of signed 1-based declaration
// indices, marking each referenced contig as scaffolded.
func parseGrouping(line string, contigs []ContigRecord, unscaffolded map[string]bool) (Scaffold, error) {
	fields := strings.Fields(line)
	scaffold := make(Scaffold, 0, len(fields))

	for _, field := range fields {
		signed, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("malformed scaffold entry %q: %v", field, err)
		}

		index := signed
		strand := byte('+')
		if signed < 0 {
			index = -signed
			strand = '-'
		}
		if index < 1 || index > len(contigs) {
			return nil, fmt.Errorf("scaffold entry %d is out of range (1..%d)", signed, len(contigs))
		}

		record := contigs[index-1]
		if !unscaffolded[record.Name.Raw] {
			return nil, fmt.Errorf("contig %s is placed on more than one scaffold", record.Name.Raw)
		}
		delete(unscaffolded, record.Name.Raw)

		scaffold = append(scaffold, OrientedPlacement{
			Name:   record.Name,
			Length: record.Length,
			Strand: strand,
		})
	}

	return scaffold, nil
}
