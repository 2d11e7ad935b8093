package footballdb

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// compressionHandler wraps export writers with the configured compression.
type compressionHandler struct {
	compressionType CompressionType
}

// newCompressionHandler creates a handler for the given compression type
func newCompressionHandler(compressionType CompressionType) *compressionHandler {
	return &compressionHandler{compressionType: compressionType}
}

// createWriter wraps writer with a compression writer if needed. The returned
// close function flushes the compressed stream but does not close writer.
func (h *compressionHandler) createWriter(writer io.Writer) (io.Writer, func() error, error) {
	switch h.compressionType {
	case CompressionNone:
		return writer, func() error { return nil }, nil

	case CompressionGZ:
		gzWriter := gzip.NewWriter(writer)
		return gzWriter, gzWriter.Close, nil

	case CompressionXZ:
		xzWriter, err := xz.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzWriter, xzWriter.Close, nil

	case CompressionZSTD:
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zstdWriter, zstdWriter.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: compression %s is not supported for writing", ErrUnsupportedFormat, h.compressionType)
	}
}

// createFile creates path and returns a writer that compresses into it. The
// returned close function flushes the compressor, syncs and closes the file.
func (h *compressionHandler) createFile(path string) (io.Writer, func() error, error) {
	file, err := os.Create(path) //nolint:gosec // output path is built from the export directory
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file: %w", err)
	}

	writer, cleanup, err := h.createWriter(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	closeAll := func() error {
		cleanupErr := cleanup()
		if syncErr := file.Sync(); syncErr != nil && cleanupErr == nil {
			cleanupErr = syncErr
		}
		if closeErr := file.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}
	return writer, closeAll, nil
}
