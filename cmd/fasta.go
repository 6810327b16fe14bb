package cmd

import (
	"github.com/spf13/cobra"

	"github.com/altingia/juicebox-scripts/internal/converter"
)

// fastaCmd writes only the reconstructed FASTA.
var fastaCmd = &cobra.Command{
	Use:   "fasta",
	Short: "Write the reconstructed FASTA for a .assembly file",
	Long: `Write a FASTA reflecting the scaffolds in a .assembly file: contigs joined
by 100 bp gaps, minus-strand contigs reverse-complemented, and contigs broken in
Juicebox sliced out of their original sequences.`,
	Run: converter.FastaCmd,
}

func init() {
	rootCmd.AddCommand(fastaCmd)
	addConversionFlags(fastaCmd)
}
