// Package converter ties the assembly model to the command line: flag
// parsing, the conversion pipeline, and output file writing.
package converter

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Flags are the parsed cobra flags shared by every conversion command.
type Flags struct {
	// assembly is the path to the Juicebox .assembly file
	assembly string

	// fasta is the path to the FASTA file the assembly refers to
	fasta string

	// prefix is prepended to every output filename
	prefix string

	// contigMode emits per-contig units instead of scaffolds
	contigMode bool

	// simpleChrNames uses ChromosomeX scaffold names
	simpleChrNames bool
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(assembly, fasta, prefix string, contigMode, simpleChrNames bool) *Flags {
	if prefix == "" {
		prefix = trimExtension(assembly)
	}

	return &Flags{
		assembly:       assembly,
		fasta:          fasta,
		prefix:         prefix,
		contigMode:     contigMode,
		simpleChrNames: simpleChrNames,
	}
}

// parseCmdFlags gathers the assembly path, fasta path, etc from a cobra
// cmd object.
func parseCmdFlags(cmd *cobra.Command) (*Flags, error) {
	fs := &Flags{}
	var err error

	if fs.assembly, err = cmd.Flags().GetString("assembly"); err != nil || fs.assembly == "" {
		cmd.Help()
		return nil, fmt.Errorf("no assembly file: %v", err)
	}

	if fs.fasta, err = cmd.Flags().GetString("fasta"); err != nil || fs.fasta == "" {
		cmd.Help()
		return nil, fmt.Errorf("no fasta file: %v", err)
	}

	if fs.prefix, err = cmd.Flags().GetString("prefix"); err != nil {
		return nil, err
	}
	if fs.prefix == "" {
		fs.prefix = trimExtension(fs.assembly)
	}

	if fs.contigMode, err = cmd.Flags().GetBool("contig-mode"); err != nil {
		return nil, err
	}

	if fs.simpleChrNames, err = cmd.Flags().GetBool("simple-chr-names"); err != nil {
		return nil, err
	}

	return fs, nil
}

// trimExtension drops the final extension from path, the default output
// prefix when none is given.
func trimExtension(path string) string {
	if dot := strings.LastIndex(path, "."); dot > strings.LastIndex(path, "/") {
		return path[:dot]
	}
	return path
}
