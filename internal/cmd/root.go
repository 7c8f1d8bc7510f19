package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/logreport/internal/output"
	"github.com/atikulmunna/logreport/internal/report"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// errNoReport is returned when --report was not given by any source.
var errNoReport = errors.New("no report selected: --report is required")

// usageError marks errors caused by the command line rather than the input.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// app holds what one invocation needs. The catalog is built by the caller
// and never mutated.
type app struct {
	catalog *report.Catalog
	v       *viper.Viper
	printer *output.Printer
	cfgFile string
}

// NewRootCommand builds the logreport command around catalog.
func NewRootCommand(catalog *report.Catalog, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		catalog: catalog,
		v:       viper.New(),
		printer: output.NewPrinter(stdout, stderr),
	}

	cmd := &cobra.Command{
		Use:   "logreport --report NAME FILE [FILE...]",
		Short: "logreport — aggregate reports from application logs",
		Long: `logreport parses one or more application log files in parallel and
prints an aggregate report to standard output.

Reports:
  handlers        request counts per endpoint and severity level
  logs-by-level   log line counts per severity level

Examples:
  logreport --report handlers logs/app1.log logs/app2.log
  logreport -r logs-by-level "logs/**/*.log"`,
		Args:              requireFiles,
		PersistentPreRunE: a.initConfig,
		RunE:              a.run,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: $HOME/.logreport.yaml)")
	flags.StringP("report", "r", "", "report to generate: "+strings.Join(catalog.Names(), ", "))
	flags.IntP("workers", "w", runtime.NumCPU(), "number of files parsed in parallel")
	flags.String("log-level", "warn", "diagnostic log level: debug, info, warn, error")
	flags.String("log-format", "text", "diagnostic log format: text, json")
	flags.String("metrics-file", "", "write run metrics in Prometheus text format to this file")

	_ = a.v.BindPFlag("report", flags.Lookup("report"))
	_ = a.v.BindPFlag("workers", flags.Lookup("workers"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("metrics.file", flags.Lookup("metrics-file"))

	_ = cmd.RegisterFlagCompletionFunc("report", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func requireFiles(cmd *cobra.Command, args []string) error {
	if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
		return &usageError{err: errors.New("at least one log file is required")}
	}
	return nil
}

// initConfig loads config file and environment, then checks the report
// name. It runs before any log file is touched.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".logreport")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("LOGREPORT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return &usageError{err: fmt.Errorf("read config: %w", err)}
		}
	}

	name := a.v.GetString("report")
	if name == "" {
		return &usageError{err: errNoReport}
	}
	if !a.catalog.Has(name) {
		return &usageError{err: &report.UnknownReportError{Name: name, Valid: a.catalog.Names()}}
	}
	return nil
}

// Execute runs logreport with the built-in reports and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, os.Args[1:], report.DefaultCatalog(), os.Stdout, os.Stderr)
}

// Run executes one invocation and maps its outcome to an exit code.
func Run(ctx context.Context, args []string, catalog *report.Catalog, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(catalog, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	p := output.NewPrinter(stdout, stderr)
	p.Error(err)

	var usage *usageError
	if errors.As(err, &usage) {
		if errors.Is(err, report.ErrUnknownReport) || errors.Is(err, errNoReport) {
			p.Reports(catalog.Names())
		}
		p.Hint("usage: " + cmd.UseLine())
		return ExitUsage
	}
	return ExitFailure
}
