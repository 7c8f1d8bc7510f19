// Package report defines the report kinds: each pairs one extraction
// pattern with the aggregation that turns its records into text.
package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/atikulmunna/logreport/internal/aggregator"
	"github.com/atikulmunna/logreport/internal/model"
	"github.com/atikulmunna/logreport/internal/patterns"
)

// Report is a named extraction pattern plus its aggregation.
// Implementations are immutable once constructed.
type Report interface {
	Name() string
	Pattern() *regexp.Regexp
	Generate(records []model.Record) string
}

const (
	handlersName = "handlers"
	levelsName   = "logs-by-level"

	handlerWidth = 24
	columnWidth  = 8
	levelWidth   = 10

	// noEndpoint labels requests whose line carried no path.
	noEndpoint = "-"
)

// HandlersReport counts django.request lines per endpoint and level.
type HandlersReport struct {
	re *regexp.Regexp
}

// NewHandlersReport compiles the handlers pattern.
func NewHandlersReport() *HandlersReport {
	pattern := fmt.Sprintf(
		`(?:^|\s)(?P<level>%s) %s: (?:(?:%s) |(?:%s): ?)?(?P<endpoint>/\S+)?`,
		patterns.Alternation(patterns.Levels()),
		regexp.QuoteMeta(patterns.RequestSource),
		patterns.Alternation(patterns.Methods()),
		patterns.Alternation(patterns.ErrorKeywords()),
	)
	return &HandlersReport{re: regexp.MustCompile(pattern)}
}

func (r *HandlersReport) Name() string { return handlersName }
func (r *HandlersReport) Pattern() *regexp.Regexp { return r.re }

// Generate renders the per-endpoint table followed by a totals row.
func (r *HandlersReport) Generate(records []model.Record) string {
	table := aggregator.New()
	for _, rec := range records {
		table.Add(rec.Get(model.FieldEndpoint), rec.Get(model.FieldLevel))
	}

	levels := patterns.Levels()
	var b strings.Builder

	fmt.Fprintf(&b, "Total requests: %d\n\n", table.Total())

	fmt.Fprintf(&b, "%-*s", handlerWidth, "HANDLER")
	for _, level := range levels {
		fmt.Fprintf(&b, "%-*s", columnWidth, level)
	}
	b.WriteByte('\n')

	for _, endpoint := range table.Rows() {
		label := endpoint
		if label == "" {
			label = noEndpoint
		}
		fmt.Fprintf(&b, "%-*s", handlerWidth, label)
		for _, level := range levels {
			fmt.Fprintf(&b, "%-*d", columnWidth, table.Count(endpoint, level))
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%-*s", handlerWidth, "")
	for _, level := range levels {
		fmt.Fprintf(&b, "%-*d", columnWidth, table.ColumnTotal(level))
	}
	b.WriteByte('\n')

	return b.String()
}

// LevelsReport counts log lines per severity level across all sources.
type LevelsReport struct {
	re *regexp.Regexp
}

// NewLevelsReport compiles the logs-by-level pattern.
func NewLevelsReport() *LevelsReport {
	pattern := fmt.Sprintf(
		`(?:^|\s)(?P<level>%s) (?P<source>%s):`,
		patterns.Alternation(patterns.Levels()),
		patterns.Alternation(patterns.Sources()),
	)
	return &LevelsReport{re: regexp.MustCompile(pattern)}
}

func (r *LevelsReport) Name() string { return levelsName }
func (r *LevelsReport) Pattern() *regexp.Regexp { return r.re }

// Generate renders one line per level, zero counts included.
func (r *LevelsReport) Generate(records []model.Record) string {
	table := aggregator.New()
	for _, rec := range records {
		table.Add(rec.Get(model.FieldLevel), "")
	}

	var b strings.Builder
	b.WriteString("Logs by level\n\n")
	for _, level := range patterns.Levels() {
		fmt.Fprintf(&b, "%-*s: %d\n", levelWidth, level, table.Count(level, ""))
	}
	return b.String()
}
