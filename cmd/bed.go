package cmd

import (
	"github.com/spf13/cobra"

	"github.com/altingia/juicebox-scripts/internal/converter"
)

// bedCmd writes only the BED interval table.
var bedCmd = &cobra.Command{
	Use:   "bed",
	Short: "Write a BED interval table for a .assembly file",
	Run:   converter.BedCmd,
}

func init() {
	rootCmd.AddCommand(bedCmd)
	addConversionFlags(bedCmd)
}
