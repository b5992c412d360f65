package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/csvkit/internal/files/filesystem"
	"github.com/vvka-141/csvkit/internal/logging"
	"github.com/vvka-141/csvkit/internal/tabular"
	"github.com/vvka-141/csvkit/pkg/csvkit"
)

// Loader discovers delimited-text files in a directory and parses them.
// It holds no state between calls; each LoadDirectory builds a fresh
// collection owned by the caller.
type Loader struct {
	fsProvider filesystem.FileSystemProvider
	logger     csvkit.Logger
	extension  string
	format     tabular.Options
}

// NewLoader creates a loader backed by the OS filesystem.
// A nil logger discards messages.
func NewLoader(logger csvkit.Logger) *Loader {
	return NewLoaderWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewLoaderWithFS creates a loader with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewLoaderWithFS(fsProvider filesystem.FileSystemProvider, logger csvkit.Logger) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Loader{
		fsProvider: fsProvider,
		logger:     logger,
		extension:  csvkit.DefaultExtension,
		format:     tabular.Options{Comma: csvkit.DefaultDelimiter},
	}
}

// WithExtension sets the file-name suffix that selects files (default ".csv").
// Matching is case-sensitive.
func (l *Loader) WithExtension(ext string) *Loader {
	l.extension = ext
	return l
}

// WithDelimiter sets the field delimiter (default ',').
func (l *Loader) WithDelimiter(comma rune) *Loader {
	l.format.Comma = comma
	return l
}

// LoadDirectory reads each matching file directly inside dirPath.
// Subdirectories and files with other extensions are skipped. Keys are
// file names without the extension; on a key collision the entry listed
// later wins.
func (l *Loader) LoadDirectory(dirPath string) (csvkit.FileCollection, error) {
	info, err := l.fsProvider.Stat(dirPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("the folder '%s' does not exist: %w", dirPath, csvkit.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dirPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	entries, err := l.fsProvider.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dirPath, err)
	}

	tables := make(csvkit.FileCollection)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, l.extension) {
			continue
		}

		table, err := l.LoadFile(filepath.Join(dirPath, name))
		if err != nil {
			return nil, err
		}

		tables[stem(name)] = table
	}

	l.logger.Verbose("Loaded %d table(s) from %s", len(tables), dirPath)
	return tables, nil
}

// stem strips the final extension. Leading dots belong to the name, so
// ".csv" and "..csv" keep their full names.
func stem(name string) string {
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	return strings.TrimSuffix(name, ext)
}

// LoadFile parses a single delimited-text file.
func (l *Loader) LoadFile(filePath string) (*csvkit.Table, error) {
	content, err := l.fsProvider.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file '%s' does not exist: %w", filePath, csvkit.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	table, err := tabular.Decode(filePath, content, l.format)
	if err != nil {
		return nil, err
	}

	l.logger.Verbose("Parsed %s: %d row(s), %d column(s)", filePath, table.NumRows(), table.NumColumns())
	return table, nil
}

// Verify Loader implements the interface at compile time
var _ csvkit.DirectoryLoader = (*Loader)(nil)
