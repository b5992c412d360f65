// Package writer persists csvkit tables as delimited text.
package writer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vvka-141/csvkit/internal/files/filesystem"
	"github.com/vvka-141/csvkit/internal/logging"
	"github.com/vvka-141/csvkit/internal/tabular"
	"github.com/vvka-141/csvkit/pkg/csvkit"
)

// Writer writes tables to files, creating destination folders on demand.
type Writer struct {
	fsProvider filesystem.FileSystemProvider
	logger     csvkit.Logger
	out        io.Writer
	format     tabular.Options
}

// NewWriter creates a writer backed by the OS filesystem that prints
// confirmations to stdout. A nil logger discards messages.
func NewWriter(logger csvkit.Logger) *Writer {
	return NewWriterWithFS(filesystem.NewOSFileSystem(), os.Stdout, logger)
}

// NewWriterWithFS creates a writer with a custom filesystem provider and
// confirmation output. Panics if fsProvider or out is nil.
func NewWriterWithFS(fsProvider filesystem.FileSystemProvider, out io.Writer, logger csvkit.Logger) *Writer {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Writer{
		fsProvider: fsProvider,
		logger:     logger,
		out:        out,
		format:     tabular.Options{Comma: csvkit.DefaultDelimiter},
	}
}

// WithDelimiter sets the field delimiter (default ',').
func (w *Writer) WithDelimiter(comma rune) *Writer {
	w.format.Comma = comma
	return w
}

// WriteCSV writes t to folderPath/fileName with a header row and no index
// column, then prints "<fileName> written succesfully at <path>".
//
// folderPath is created with any missing parents. An existing file is
// replaced. The content is staged in a temporary sibling and renamed into
// place, so a failed write leaves any previous file intact.
func (w *Writer) WriteCSV(t *csvkit.Table, folderPath, fileName string) error {
	if t == nil {
		return fmt.Errorf("table cannot be nil")
	}

	if err := w.fsProvider.MkdirAll(folderPath); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", folderPath, err)
	}

	content, err := tabular.Encode(t, w.format)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", fileName, err)
	}

	filePath := filepath.Join(folderPath, fileName)
	tmpPath := filepath.Join(filepath.Dir(filePath), "."+filepath.Base(filePath)+"."+uuid.NewString()+".tmp")

	if err := w.fsProvider.WriteFile(tmpPath, content); err != nil {
		w.removeTemp(tmpPath)
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	if err := w.fsProvider.Rename(tmpPath, filePath); err != nil {
		w.removeTemp(tmpPath)
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	w.logger.Verbose("Wrote %d row(s), %d bytes to %s", t.NumRows(), len(content), filePath)
	fmt.Fprintf(w.out, csvkit.ConfirmationFormat, fileName, filePath)
	return nil
}

func (w *Writer) removeTemp(tmpPath string) {
	if err := w.fsProvider.Remove(tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		w.logger.Error("Failed to remove temporary file %s: %v", tmpPath, err)
	}
}

// Verify Writer implements the interface at compile time
var _ csvkit.TableWriter = (*Writer)(nil)
