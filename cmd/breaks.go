package cmd

import (
	"github.com/spf13/cobra"

	"github.com/altingia/juicebox-scripts/internal/converter"
)

// breaksCmd writes only the break report.
var breaksCmd = &cobra.Command{
	Use:   "breaks",
	Short: "Write a report of the contig breaks a .assembly file introduces",
	Run:   converter.BreaksCmd,
}

func init() {
	rootCmd.AddCommand(breaksCmd)
	addConversionFlags(breaksCmd)
}
