package cmd

import (
	"github.com/spf13/cobra"

	"github.com/atikulmunna/logreport/internal/extract"
	"github.com/atikulmunna/logreport/internal/inputs"
	"github.com/atikulmunna/logreport/internal/logger"
	"github.com/atikulmunna/logreport/internal/metrics"
	"github.com/atikulmunna/logreport/internal/parser"
)

// run extracts records from every file and prints the report. Nothing is
// written to stdout unless every file was read.
func (a *app) run(cmd *cobra.Command, args []string) error {
	log, err := logger.New(a.v.GetString("log.level"), a.v.GetString("log.format"), cmd.ErrOrStderr())
	if err != nil {
		return &usageError{err: err}
	}

	rep, err := a.catalog.Lookup(a.v.GetString("report"))
	if err != nil {
		return &usageError{err: err}
	}

	paths, err := inputs.Expand(args)
	if err != nil {
		return err
	}

	m := metrics.New(rep.Name())
	ex := extract.New(parser.FromRegexp(rep.Pattern()),
		extract.WithWorkers(a.v.GetInt("workers")),
		extract.WithLogger(log.WithField("report", rep.Name())),
		extract.WithMetrics(m),
	)
	log.WithField("files", len(paths)).WithField("workers", ex.Workers()).Debug("extracting records")

	records, extractErr := ex.ExtractAll(cmd.Context(), paths)

	if path := a.v.GetString("metrics.file"); path != "" {
		if err := m.WriteTextfile(path); err != nil {
			if extractErr != nil {
				log.WithError(err).Warn("metrics not written")
			} else {
				return err
			}
		}
	}
	if extractErr != nil {
		return extractErr
	}

	return a.printer.Report(rep.Generate(records))
}
