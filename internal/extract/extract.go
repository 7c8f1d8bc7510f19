// Package extract fans a file parser out over many log files and joins
// the results in argument order.
package extract

import (
	"context"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/atikulmunna/logreport/internal/logger"
	"github.com/atikulmunna/logreport/internal/metrics"
	"github.com/atikulmunna/logreport/internal/model"
	"github.com/atikulmunna/logreport/internal/parser"
)

// FileParser parses one file. *parser.RegexParser satisfies it.
type FileParser interface {
	ParseFile(path string) (parser.Result, error)
}

// Extractor runs a FileParser over files on a bounded worker pool.
type Extractor struct {
	parser  FileParser
	workers int
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWorkers bounds the number of files parsed at once. Values below 1
// fall back to the number of logical CPUs.
func WithWorkers(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Extractor) { e.log = log }
}

// WithMetrics records per-file counters into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Extractor) { e.metrics = m }
}

// New creates an Extractor for p.
func New(p FileParser, opts ...Option) *Extractor {
	e := &Extractor{
		parser:  p,
		workers: runtime.NumCPU(),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the pool size.
func (e *Extractor) Workers() int {
	return e.workers
}

// ExtractAll parses every path and returns all records, grouped per file
// in the order the paths were given. The first failing file aborts the
// run: files not yet started are skipped, results of files already in
// flight are discarded, and no records are returned.
func (e *Extractor) ExtractAll(ctx context.Context, paths []string) ([]model.Record, error) {
	results := make([][]model.Record, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			res, err := e.parser.ParseFile(path)
			if err != nil {
				if e.metrics != nil {
					e.metrics.FileFailed()
				}
				e.log.WithError(err).WithField("path", path).Debug("log file failed")
				return err
			}

			if e.metrics != nil {
				e.metrics.FileParsed(res.Lines, len(res.Records), time.Since(start).Seconds())
			}
			e.log.WithFields(logrus.Fields{
				"path":    path,
				"lines":   res.Lines,
				"records": len(res.Records),
			}).Debug("parsed log file")

			results[i] = res.Records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, recs := range results {
		total += len(recs)
	}
	out := make([]model.Record, 0, total)
	for _, recs := range results {
		out = append(out, recs...)
	}
	return out, nil
}
