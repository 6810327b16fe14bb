package cmd

import (
	"github.com/spf13/cobra"

	"github.com/altingia/juicebox-scripts/internal/converter"
)

// agpCmd writes only the AGP coordinate table.
var agpCmd = &cobra.Command{
	Use:   "agp",
	Short: "Write an AGP coordinate table for a .assembly file",
	Run:   converter.AGPCmd,
}

func init() {
	rootCmd.AddCommand(agpCmd)
	addConversionFlags(agpCmd)
}
