// Package cmd is for command line interactions with the juicebox-scripts
// application
package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/altingia/juicebox-scripts/logger"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "juicebox-scripts",
	Short: `Convert a Juicebox .assembly file and its FASTA into downstream formats.
Outputs a reconstructed FASTA, AGP and BED coordinate tables, and a report of contig breaks`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zapcore.WarnLevel
		if verbose {
			level = zapcore.InfoLevel
		}
		if err := logger.InitLogger(level); err != nil {
			log.Fatalf("%v", err)
		}

		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env found, using local environment")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		logger.Sync()
	}()

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a summary of processing steps to stdout")
}

// addConversionFlags registers the flag set every conversion command shares.
func addConversionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("assembly", "a", "", "Input Juicebox .assembly file")
	cmd.Flags().StringP("fasta", "f", "", "FASTA file the .assembly file refers to")
	cmd.Flags().StringP("prefix", "p", "", "Prefix for output files. Default: the assembly file, minus the file extension")
	cmd.Flags().BoolP("contig-mode", "c", false, "Ignore scaffold specification and just output contigs. Useful when only trying to obtain a FASTA reflecting Juicebox breaks")
	cmd.Flags().BoolP("simple-chr-names", "s", false, "Use simple chromosome names (ChromosomeX) for scaffolds instead of detailed names (PGA_scaffold_X__Y_contigs__length_Z). Has no effect in contig mode")

	cmd.MarkFlagRequired("assembly")
	cmd.MarkFlagRequired("fasta")

	viper.BindPFlag("assembly", cmd.Flags().Lookup("assembly"))
	viper.BindPFlag("fasta", cmd.Flags().Lookup("fasta"))
}
