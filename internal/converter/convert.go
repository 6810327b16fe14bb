package converter

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/altingia/juicebox-scripts/config"
	"github.com/altingia/juicebox-scripts/internal/assembly"
	"github.com/altingia/juicebox-scripts/internal/fastaio"
)

// Process runs the full conversion pipeline: read the FASTA, parse the
// .assembly file, reconstruct broken contigs, and build the read-only
// model the emitters work from. Nothing is written to disk; any error
// aborts before output exists.
func Process(flags *Flags, conf *config.Config, log *zap.Logger) (*assembly.Model, error) {
	log.Info("reading sequences", zap.String("fasta", flags.fasta))
	seqs, err := fastaio.Read(flags.fasta)
	if err != nil {
		return nil, err
	}
	log.Info("sequences read", zap.Int("count", seqs.Len()))

	log.Info("reading assembly", zap.String("assembly", flags.assembly))
	f, err := os.Open(flags.assembly)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open assembly file %s", flags.assembly)
	}
	defer f.Close()

	contigs, scaffolds, err := assembly.ParseAssembly(f, flags.contigMode)
	if err != nil {
		return nil, err
	}
	log.Info("assembly read",
		zap.Int("contigs", len(contigs)),
		zap.Int("scaffolds", len(scaffolds)),
	)

	log.Info("checking for breaks listed in assembly and making them")
	rebuilt, err := assembly.ReconstructBreaks(contigs, seqs, log)
	if err != nil {
		return nil, err
	}
	log.Info("break check complete")

	return assembly.NewModel(rebuilt, contigs, scaffolds,
		flags.simpleChrNames, conf.GapSize, conf.WrapWidth), nil
}
