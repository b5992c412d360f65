// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the small set of file and directory operations the
// CSV loader and writer need, enabling testability through an in-memory
// implementation while maintaining compatibility with the OS filesystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
