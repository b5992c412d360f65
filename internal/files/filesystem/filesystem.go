package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider exposes the read and write operations used by the
// directory loader and the table writer.
//
// Lookups of missing paths return errors matching fs.ErrNotExist.
type FileSystemProvider interface {
	// ReadDir returns the entries directly inside path, sorted by name.
	// It does not descend into subdirectories.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// MkdirAll creates path and any missing parents. Existing
	// directories are left untouched.
	MkdirAll(path string) error

	// WriteFile creates or truncates path and writes data to it.
	WriteFile(path string, data []byte) error

	// Rename moves oldPath to newPath, replacing newPath if it exists.
	Rename(oldPath, newPath string) error

	// Remove deletes a file.
	Remove(path string) error
}
