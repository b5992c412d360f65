package csvkit

// DirectoryLoader reads every delimited-text file directly inside a
// directory into a FileCollection.
type DirectoryLoader interface {
	// LoadDirectory returns one table per matching file, keyed by file stem.
	// A missing directory yields an error matching ErrNotFound.
	LoadDirectory(path string) (FileCollection, error)

	// LoadFile parses a single file into a table.
	LoadFile(path string) (*Table, error)
}

// TableWriter persists a table as delimited text.
type TableWriter interface {
	// WriteCSV writes t to folderPath/fileName, creating folderPath if needed
	// and overwriting any existing file.
	WriteCSV(t *Table, folderPath, fileName string) error
}
