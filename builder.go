package footballdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/footballdb/internal/config"
	"github.com/nao1215/footballdb/internal/logger"
)

const (
	// ReceivingFile is the receiving statistics file inside the data directory
	ReceivingFile = config.ReceivingFile
	// RosterFile is the roster file inside the data directory
	RosterFile = config.RosterFile
	// DefaultDataDir is the data directory used when none is configured
	DefaultDataDir = config.DefaultDataDir
	// DefaultDatabase is the database file used when none is configured
	DefaultDatabase = config.DefaultDBPath
	// DefaultSampleSize is the number of sample rows printed per table
	DefaultSampleSize = config.DefaultSampleSize
)

// Builder configures a load run. Use NewBuilder, chain the With methods,
// then call Build to validate the inputs and get a runnable Pipeline.
//
//	pipeline, err := footballdb.NewBuilder().
//	    WithDataDir("Data").
//	    WithDatabase("football_data.db").
//	    Build(ctx)
type Builder struct {
	dataDir     string
	dbPath      string
	sampleSize  int
	output      io.Writer
	logger      logger.Logger
	metrics     *Metrics
	metricsFile string
}

// NewBuilder creates a builder with the default data directory, database
// file and sample size. The report goes to stdout and logging is disabled.
func NewBuilder() *Builder {
	return &Builder{
		dataDir:    DefaultDataDir,
		dbPath:     DefaultDatabase,
		sampleSize: DefaultSampleSize,
		output:     os.Stdout,
		logger:     logger.Nop(),
	}
}

// WithDataDir sets the directory holding receiving.csv and roster.csv.
func (b *Builder) WithDataDir(dir string) *Builder {
	b.dataDir = dir
	return b
}

// WithDatabase sets the SQLite database file to write.
func (b *Builder) WithDatabase(path string) *Builder {
	b.dbPath = path
	return b
}

// WithSampleSize sets how many leading rows are read back per table.
func (b *Builder) WithSampleSize(n int) *Builder {
	b.sampleSize = n
	return b
}

// WithOutput sets the writer receiving the diagnostic report. nil discards it.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// WithLogger sets the structured logger.
func (b *Builder) WithLogger(l logger.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// WithMetrics records run metrics into m. When path is not empty the
// metrics are written there in Prometheus text format at the end of Run.
func (b *Builder) WithMetrics(m *Metrics, path string) *Builder {
	b.metrics = m
	b.metricsFile = path
	return b
}

// Build validates the configuration and checks that both input files exist,
// in order, before anything is parsed or the database is touched. A missing
// input is reported as *MissingInputError naming that path.
//
// A failed Build counts as a failed run: its metrics are recorded and
// written to the metrics file like those of a failed Run.
func (b *Builder) Build(ctx context.Context) (p *Pipeline, err error) {
	start := time.Now()
	defer func() {
		if err == nil {
			return
		}
		b.metrics.RecordRun(start, false)
		if werr := b.metrics.WriteFile(b.metricsFile); werr != nil {
			b.logger.Warn(ctx, "failed to write metrics file", logger.String("path", b.metricsFile), logger.Error(werr))
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.sampleSize < 0 {
		return nil, fmt.Errorf("footballdb: sample size must not be negative, got %d", b.sampleSize)
	}
	if b.dataDir == "" {
		return nil, errors.New("footballdb: data directory cannot be empty")
	}

	receivingPath := filepath.Join(b.dataDir, ReceivingFile)
	rosterPath := filepath.Join(b.dataDir, RosterFile)

	v := newValidator()
	if err := v.validateInputs(receivingPath, rosterPath); err != nil {
		return nil, err
	}
	if err := v.validateDatabasePath(b.dbPath); err != nil {
		return nil, err
	}

	return &Pipeline{
		inputs: []input{
			{path: receivingPath, table: ReceivingTable, types: ReceivingColumnTypes()},
			{path: rosterPath, table: RosterTable, types: RosterColumnTypes()},
		},
		dbPath:      b.dbPath,
		sampleSize:  b.sampleSize,
		output:      b.output,
		logger:      b.logger,
		metrics:     b.metrics,
		metricsFile: b.metricsFile,
	}, nil
}
