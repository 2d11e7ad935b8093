// Package cli wires the footballdb commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nao1215/footballdb"
	"github.com/nao1215/footballdb/internal/config"
	"github.com/nao1215/footballdb/internal/logger"
)

// Version is set via ldflags at build time.
var Version = "dev" //nolint:gochecknoglobals // set via ldflags

// rootOptions holds flag values shared by all commands.
type rootOptions struct {
	configFile  string
	dataDir     string
	dbPath      string
	sampleSize  int
	metricsFile string
	logLevel    string
}

// commandError carries the action that failed, used as the error line prefix.
type commandError struct {
	action string
	err    error
}

func (e *commandError) Error() string { return e.action + ": " + e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

// Run executes the command line and returns the process exit code. Failures
// are printed as one red line on stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	errorColor := color.New(color.FgRed, color.Bold)

	var ce *commandError
	if errors.As(err, &ce) {
		_, _ = errorColor.Fprintf(w, "Error %s: %v\n", ce.action, ce.err)
		return
	}
	_, _ = errorColor.Fprintf(w, "Error: %v\n", err)
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "footballdb",
		Short: "Load receiving statistics and roster CSV files into a SQLite database",
		Long: `footballdb reads receiving.csv and roster.csv from the data directory,
coerces the identifier and counter columns to INTEGER and replaces the
receiving and roster tables of the database file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runLoad(cmd, opts); err != nil {
				return &commandError{action: "creating database", err: err}
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "YAML config file (env "+config.EnvConfigFile+")")
	pf.StringVar(&opts.dbPath, "db", footballdb.DefaultDatabase, "SQLite database file")
	pf.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	f := cmd.Flags()
	f.StringVar(&opts.dataDir, "data-dir", footballdb.DefaultDataDir, "directory holding receiving.csv and roster.csv")
	f.IntVar(&opts.sampleSize, "sample", footballdb.DefaultSampleSize, "sample rows printed per table")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus text-format metrics to this file")

	cmd.AddCommand(newExportCommand(opts), newVersionCommand())
	return cmd
}

// loadConfig layers .env, defaults, the config file and environment, then
// applies the flags that were set explicitly.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cmd.Context(), opts.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = opts.dataDir
	}
	if flags.Changed("db") {
		cfg.DBPath = opts.dbPath
	}
	if flags.Changed("sample") {
		cfg.SampleSize = opts.sampleSize
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger creates the stderr logger tagged with a fresh run id.
func newLogger(cmd *cobra.Command, cfg *config.Config) (logger.Logger, error) {
	l, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return l.With(logger.String("run_id", uuid.NewString())), nil
}

func runLoad(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	var metrics *footballdb.Metrics
	if cfg.MetricsFile != "" {
		metrics = footballdb.NewMetrics()
	}

	ctx := cmd.Context()
	log.Debug(ctx, "starting load",
		logger.String("data_dir", cfg.DataDir),
		logger.String("db_path", cfg.DBPath),
		logger.Int("sample_size", cfg.SampleSize))

	pipeline, err := footballdb.NewBuilder().
		WithDataDir(cfg.DataDir).
		WithDatabase(cfg.DBPath).
		WithSampleSize(cfg.SampleSize).
		WithOutput(cmd.OutOrStdout()).
		WithLogger(log).
		WithMetrics(metrics, cfg.MetricsFile).
		Build(ctx)
	if err != nil {
		return err
	}

	_, err = pipeline.Run(ctx)
	return err
}
