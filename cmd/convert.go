package cmd

import (
	"github.com/spf13/cobra"

	"github.com/altingia/juicebox-scripts/internal/converter"
)

// convertCmd writes every output format for an assembly in one pass.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a .assembly file and FASTA into AGP, BED, FASTA, and a break report",
	Long: `Convert a Juicebox .assembly file and the FASTA it refers to into every
downstream format at once. The assembly is processed a single time: contigs broken
in Juicebox are reconstructed by slicing the original sequences, and the AGP, BED,
break report, and reconstructed FASTA are all derived from that one in-memory model,
so their coordinates always agree.`,
	Run: converter.ConvertCmd,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addConversionFlags(convertCmd)
}
