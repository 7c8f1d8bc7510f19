// Package metrics tracks per-run counters for a report invocation and can
// export them in the Prometheus text format for node_exporter's textfile
// collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "logreport"

// Metrics is a per-run set of collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	FilesParsed      *prometheus.CounterVec
	LinesScanned     prometheus.Counter
	RecordsExtracted prometheus.Counter
	ParseDuration    prometheus.Histogram
}

// New creates the collectors, labelled with the report kind.
func New(report string) *Metrics {
	labels := prometheus.Labels{"report": report}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FilesParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "files_parsed_total",
			Help:        "Log files processed, by outcome.",
			ConstLabels: labels,
		}, []string{"status"}),
		LinesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "lines_scanned_total",
			Help:        "Lines read from log files.",
			ConstLabels: labels,
		}),
		RecordsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "records_extracted_total",
			Help:        "Lines that matched the report pattern.",
			ConstLabels: labels,
		}),
		ParseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "file_parse_duration_seconds",
			Help:        "Time spent parsing a single log file.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}

	m.registry.MustRegister(m.FilesParsed, m.LinesScanned, m.RecordsExtracted, m.ParseDuration)
	return m
}

// FileParsed records a successfully parsed file.
func (m *Metrics) FileParsed(lines, records int, seconds float64) {
	m.FilesParsed.WithLabelValues("ok").Inc()
	m.LinesScanned.Add(float64(lines))
	m.RecordsExtracted.Add(float64(records))
	m.ParseDuration.Observe(seconds)
}

// FileFailed records a file that could not be parsed.
func (m *Metrics) FileFailed() {
	m.FilesParsed.WithLabelValues("error").Inc()
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
