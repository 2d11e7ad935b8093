package footballdb

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nao1215/footballdb/store"
)

// copyFixtures copies testdata/Data into a temporary directory and returns
// that directory and a database path next to it.
func copyFixtures(t *testing.T) (dataDir, dbPath string) {
	t.Helper()

	root := t.TempDir()
	dataDir = filepath.Join(root, "Data")
	require.NoError(t, os.MkdirAll(dataDir, 0750))
	for _, name := range []string{ReceivingFile, RosterFile} {
		data, err := os.ReadFile(filepath.Join("testdata", "Data", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), data, 0600))
	}
	return dataDir, filepath.Join(root, DefaultDatabase)
}

// writeInputs creates a data directory holding the given CSV contents.
func writeInputs(t *testing.T, receiving, roster string) (dataDir, dbPath string) {
	t.Helper()

	root := t.TempDir()
	dataDir = filepath.Join(root, "Data")
	require.NoError(t, os.MkdirAll(dataDir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, ReceivingFile), []byte(receiving), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, RosterFile), []byte(roster), 0600))
	return dataDir, filepath.Join(root, DefaultDatabase)
}

// runPipeline builds and runs a pipeline and returns its summary and report.
func runPipeline(t *testing.T, dataDir, dbPath string) (*Summary, string) {
	t.Helper()

	var out bytes.Buffer
	p, err := NewBuilder().
		WithDataDir(dataDir).
		WithDatabase(dbPath).
		WithOutput(&out).
		Build(context.Background())
	require.NoError(t, err)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)
	return summary, out.String()
}

// readTable reads a stored table back for comparison.
func readTable(t *testing.T, dbPath, name string) *store.TableData {
	t.Helper()

	s, err := store.Open(context.Background(), dbPath)
	require.NoError(t, err)
	defer s.Close()

	data, err := s.ReadTable(context.Background(), name)
	require.NoError(t, err)
	return data
}
