package cli

import (
	"github.com/spf13/cobra"

	"github.com/nao1215/footballdb"
	"github.com/nao1215/footballdb/internal/logger"
)

type exportOptions struct {
	outDir      string
	format      string
	compression string
}

func newExportCommand(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every table of the database to files",
		Example: `  footballdb export --out ./out
  footballdb export --out ./out --format tsv --compression zstd
  footballdb export --out ./out --format parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runExport(cmd, root, opts); err != nil {
				return &commandError{action: "exporting database", err: err}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.outDir, "out", "o", "", "output directory (required)")
	f.StringVarP(&opts.format, "format", "f", "csv", "output format: csv, tsv, xlsx, parquet")
	f.StringVarP(&opts.compression, "compression", "c", "none", "compression for csv/tsv: none, gz, xz, zstd")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runExport(cmd *cobra.Command, root *rootOptions, opts *exportOptions) error {
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	format, err := footballdb.ParseOutputFormat(opts.format)
	if err != nil {
		return err
	}
	compression, err := footballdb.ParseCompressionType(opts.compression)
	if err != nil {
		return err
	}
	options := footballdb.NewDumpOptions().WithFormat(format).WithCompression(compression)

	ctx := cmd.Context()
	if err := footballdb.Export(ctx, cfg.DBPath, opts.outDir, options); err != nil {
		return err
	}
	log.Info(ctx, "database exported",
		logger.String("db_path", cfg.DBPath),
		logger.String("out", opts.outDir),
		logger.String("extension", options.FileExtension()))
	return nil
}
