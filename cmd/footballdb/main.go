// footballdb loads football receiving statistics and team rosters from CSV
// files into a SQLite database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/footballdb/internal/cli"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
