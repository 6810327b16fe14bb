package assembly

import (
	"fmt"
	"strings"
)

// MissingFragmentError is returned when a contig declaration's index does
// not match the next expected sequential index.
type MissingFragmentError struct {
	Index int
}

func (e *MissingFragmentError) Error() string {
	return fmt.Sprintf("assembly is missing the sequence for index %d", e.Index)
}

// ZeroLengthContigError is returned when a contig is declared with zero length.
type ZeroLengthContigError struct {
	Contig string
}

func (e *ZeroLengthContigError) Error() string {
	return fmt.Sprintf("assembly lists contig %s as zero length", e.Contig)
}

// UnscaffoldedContigError is returned when declared contigs never appear
// in any scaffold grouping.
type UnscaffoldedContigError struct {
	Contigs []string
}

func (e *UnscaffoldedContigError) Error() string {
	return fmt.Sprintf("contigs are not included in scaffolding output: %s", strings.Join(e.Contigs, ", "))
}

// ContigNotFoundError is returned when a contig, or a fragment's inferred
// original contig, is absent from the sequence store.
type ContigNotFoundError struct {
	Contig string
}

func (e *ContigNotFoundError) Error() string {
	return fmt.Sprintf("could not find contig %s in original FASTA", e.Contig)
}

// BadContigNameError is returned when a fragment name violates the
// split-naming convention: a missing fragment index alongside siblings of
// the same original contig, or a duplicated index.
type BadContigNameError struct {
	Name   string
	Reason string
}

func (e *BadContigNameError) Error() string {
	return fmt.Sprintf("contig %s violates naming convention: %s", e.Name, e.Reason)
}
