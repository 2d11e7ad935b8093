package footballdb

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/nao1215/footballdb/domain/model"
	"github.com/nao1215/footballdb/internal/logger"
	"github.com/nao1215/footballdb/store"
)

// input is one CSV file and the table it is loaded into.
type input struct {
	path  string
	table string
	types ColumnTypeMap
}

// Pipeline is a validated load run created by Builder.Build.
type Pipeline struct {
	inputs      []input
	dbPath      string
	sampleSize  int
	output      io.Writer
	logger      logger.Logger
	metrics     *Metrics
	metricsFile string
}

// Summary is the outcome of a successful run.
type Summary struct {
	// Database is the path of the written database file.
	Database string
	// Tables holds one entry per loaded table, receiving first.
	Tables []TableSummary
	// Duration is the wall time of the run.
	Duration time.Duration
}

// TableSummary describes one loaded table.
type TableSummary struct {
	Name         string
	Source       string
	RowsWritten  int64
	Verification *Verification
}

// Table returns the summary of the named table.
func (s *Summary) Table(name string) (TableSummary, bool) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return TableSummary{}, false
}

// Run parses and coerces both inputs, replaces their tables in the database
// and reads them back for verification. Each table is replaced in its own
// transaction, so a failure on the roster leaves a freshly written receiving
// table in place. The database is closed on every exit path.
func (p *Pipeline) Run(ctx context.Context) (summary *Summary, err error) {
	start := time.Now()
	log := p.logger.With(logger.String("database", p.dbPath))
	defer func() {
		p.metrics.RecordRun(start, err == nil)
		if werr := p.metrics.WriteFile(p.metricsFile); werr != nil {
			log.Warn(ctx, "failed to write metrics file", logger.String("path", p.metricsFile), logger.Error(werr))
		}
	}()

	r := newReporter(p.output)
	r.println("Reading CSV files...")

	tables := make([]*Table, 0, len(p.inputs))
	for _, in := range p.inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := p.prepare(ctx, r, in)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	r.printf("Creating SQLite database: %s\n", p.dbPath)
	s, err := store.Open(ctx, p.dbPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			log.Warn(ctx, "failed to close database", logger.Error(cerr))
			if err == nil {
				err = fmt.Errorf("footballdb: failed to close database: %w", cerr)
			}
		}
	}()

	summary = &Summary{Database: p.dbPath}
	for i, in := range p.inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.printf("Creating %s table...\n", in.table)
		n, err := s.Replace(ctx, in.table, tables[i])
		if err != nil {
			log.Error(ctx, "failed to write table", logger.String("table", in.table), logger.Error(err))
			return nil, err
		}
		p.metrics.RecordRowsWritten(in.table, n)
		log.Info(ctx, "table replaced", logger.String("table", in.table), logger.Int64("rows", n))
		summary.Tables = append(summary.Tables, TableSummary{Name: in.table, Source: in.path, RowsWritten: n})
	}

	for i := range summary.Tables {
		v, err := s.Verify(ctx, summary.Tables[i].Name, p.sampleSize)
		if err != nil {
			return nil, NewErrorContext("verify", p.dbPath).WithTable(summary.Tables[i].Name).Error(err)
		}
		summary.Tables[i].Verification = v
	}
	p.report(r, summary)

	if r.err != nil {
		return nil, fmt.Errorf("footballdb: failed to write report: %w", r.err)
	}
	summary.Duration = time.Since(start)
	log.Info(ctx, "database created", logger.Any("duration", summary.Duration))
	return summary, nil
}

// prepare parses one input file and applies its coercion map.
func (p *Pipeline) prepare(ctx context.Context, r *reporter, in input) (*Table, error) {
	r.printf("Processing %s...\n", filepath.Base(in.path))

	t, err := model.NewFile(in.path).ToTable()
	if err != nil {
		return nil, NewErrorContext("load", in.path).WithTable(in.table).Error(err)
	}
	p.logger.Debug(ctx, "parsed input", logger.String("path", in.path), logger.Int("rows", len(t.Records())))

	coerced, err := model.Coerce(t, in.types)
	if err != nil {
		p.metrics.RecordCoercionFailure(in.table)
		return nil, err
	}
	r.table(coerced)
	return coerced, nil
}

// report prints counts, schemas and samples in the order the tables were written.
func (p *Pipeline) report(r *reporter, summary *Summary) {
	for _, t := range summary.Tables {
		r.created(t.Verification)
	}
	for _, t := range summary.Tables {
		r.schema(t.Verification)
	}
	for _, t := range summary.Tables {
		r.sample(t.Verification)
	}
	r.printf("\nDatabase successfully created: %s\n", summary.Database)
}
