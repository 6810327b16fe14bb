package converter

import (
	"go.uber.org/zap"

	"github.com/altingia/juicebox-scripts/internal/assembly"
	"github.com/altingia/juicebox-scripts/internal/fastaio"
)

// output filename suffixes, matching the historical converter outputs
const (
	agpSuffix    = ".agp"
	bedSuffix    = ".bed"
	reportSuffix = ".break_report.txt"
	fastaSuffix  = ".fasta"
)

// WriteAGP renders and writes the AGP table to prefix + ".agp".
func WriteAGP(model *assembly.Model, prefix string, log *zap.Logger) error {
	log.Info("writing AGP", zap.String("file", prefix+agpSuffix))
	return fastaio.Write(prefix+agpSuffix, model.AGP())
}

// WriteBed renders and writes the BED table to prefix + ".bed".
func WriteBed(model *assembly.Model, prefix string, log *zap.Logger) error {
	log.Info("writing BED", zap.String("file", prefix+bedSuffix))
	return fastaio.Write(prefix+bedSuffix, model.Bed())
}

// WriteBreakReport renders and writes the break report to
// prefix + ".break_report.txt".
func WriteBreakReport(model *assembly.Model, prefix string, log *zap.Logger) error {
	log.Info("writing break report", zap.String("file", prefix+reportSuffix))
	report, err := model.BreakReport()
	if err != nil {
		return err
	}
	return fastaio.Write(prefix+reportSuffix, report)
}

// WriteFasta renders and writes the reconstructed FASTA to
// prefix + ".fasta".
func WriteFasta(model *assembly.Model, prefix string, log *zap.Logger) error {
	log.Info("writing FASTA", zap.String("file", prefix+fastaSuffix))
	contents, err := model.Fasta()
	if err != nil {
		return err
	}
	return fastaio.Write(prefix+fastaSuffix, contents)
}

// WriteAll writes all four output artifacts for the model.
func WriteAll(model *assembly.Model, prefix string, log *zap.Logger) error {
	writers := []func(*assembly.Model, string, *zap.Logger) error{
		WriteAGP,
		WriteBed,
		WriteBreakReport,
		WriteFasta,
	}
	for _, write := range writers {
		if err := write(model, prefix, log); err != nil {
			return err
		}
	}
	return nil
}
