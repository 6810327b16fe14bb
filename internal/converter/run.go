package converter

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"github.com/altingia/juicebox-scripts/config"
	"github.com/altingia/juicebox-scripts/internal/assembly"
	"github.com/altingia/juicebox-scripts/logger"
)

// ConvertCmd runs the full conversion, writing all four artifacts.
func ConvertCmd(cmd *cobra.Command, args []string) {
	run(cmd, WriteAll)
}

// AGPCmd runs the conversion and writes only the AGP table.
func AGPCmd(cmd *cobra.Command, args []string) {
	run(cmd, WriteAGP)
}

// BedCmd runs the conversion and writes only the BED table.
func BedCmd(cmd *cobra.Command, args []string) {
	run(cmd, WriteBed)
}

// FastaCmd runs the conversion and writes only the reconstructed FASTA.
func FastaCmd(cmd *cobra.Command, args []string) {
	run(cmd, WriteFasta)
}

// BreaksCmd runs the conversion and writes only the break report.
func BreaksCmd(cmd *cobra.Command, args []string) {
	run(cmd, WriteBreakReport)
}

// run executes the pipeline and hands the model to a writer. Any failure
// is fatal before an output file exists.
func run(cmd *cobra.Command, write func(*assembly.Model, string, *zap.Logger) error) {
	fs, err := parseCmdFlags(cmd)
	if err != nil {
		logger.Fatal(err.Error())
	}

	conf := config.New()
	log := logger.L()

	model, err := Process(fs, conf, log)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if err := write(model, fs.prefix, log); err != nil {
		logger.Fatal(err.Error())
	}
}
