package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Not safe for concurrent use.
type MemoryFileSystem struct {
	entries  map[string]*memoryEntry // absolute path -> entry
	root     string
	writeErr error
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
// Relative paths passed to other methods are resolved against root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.addDir(root)
	return mfs
}

// AddFile adds a file to the in-memory filesystem, creating parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	mfs.ensureDirectoriesExist(absPath)
	mfs.putFile(absPath, []byte(content), modTime)
}

// AddDir adds an empty directory and its parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	mfs.ensureDirectoriesExist(absPath)
	mfs.addDir(absPath)
}

// FailWrites makes every subsequent WriteFile and Rename return err.
// Pass nil to clear.
func (mfs *MemoryFileSystem) FailWrites(err error) {
	mfs.writeErr = err
}

// Paths returns every file path (directories excluded), sorted.
func (mfs *MemoryFileSystem) Paths() []string {
	var paths []string
	for p, e := range mfs.entries {
		if !e.info.isDir {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) addDir(absPath string) {
	if _, exists := mfs.entries[absPath]; exists {
		return
	}
	mfs.entries[absPath] = &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

func (mfs *MemoryFileSystem) putFile(absPath string, content []byte, modTime time.Time) {
	mfs.entries[absPath] = &memoryEntry{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: modTime,
		},
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(absPath string) {
	dir := path.Dir(absPath)
	if dir == absPath {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.ensureDirectoriesExist(dir)
	mfs.addDir(dir)
}

func notExist(op, p string) error {
	return &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.resolve(dirPath)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %w", notExist("readdir", dirPath))
	}
	if !entry.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, e := range mfs.entries {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, e.info)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, exists := mfs.entries[mfs.resolve(filePath)]
	if !exists {
		return nil, notExist("open", filePath)
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, notExist("stat", statPath)
	}
	return entry.info, nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	absPath := mfs.resolve(dirPath)
	for p := absPath; ; p = path.Dir(p) {
		if e, exists := mfs.entries[p]; exists && !e.info.isDir {
			return fmt.Errorf("mkdir %s: not a directory", p)
		}
		if path.Dir(p) == p {
			break
		}
	}
	mfs.ensureDirectoriesExist(absPath)
	mfs.addDir(absPath)
	return nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	if mfs.writeErr != nil {
		return mfs.writeErr
	}
	absPath := mfs.resolve(filePath)
	parent, exists := mfs.entries[path.Dir(absPath)]
	if !exists || !parent.info.isDir {
		return notExist("open", filePath)
	}
	if e, exists := mfs.entries[absPath]; exists && e.info.isDir {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	content := make([]byte, len(data))
	copy(content, data)
	mfs.putFile(absPath, content, time.Now())
	return nil
}

// Rename implements FileSystemProvider.Rename
func (mfs *MemoryFileSystem) Rename(oldPath, newPath string) error {
	if mfs.writeErr != nil {
		return mfs.writeErr
	}
	oldAbs, newAbs := mfs.resolve(oldPath), mfs.resolve(newPath)
	entry, exists := mfs.entries[oldAbs]
	if !exists {
		return notExist("rename", oldPath)
	}
	if entry.info.isDir {
		return fmt.Errorf("rename of directories is not supported: %s", oldPath)
	}
	delete(mfs.entries, oldAbs)
	entry.info.name = path.Base(newAbs)
	mfs.entries[newAbs] = entry
	return nil
}

// Remove implements FileSystemProvider.Remove
func (mfs *MemoryFileSystem) Remove(filePath string) error {
	absPath := mfs.resolve(filePath)
	if _, exists := mfs.entries[absPath]; !exists {
		return notExist("remove", filePath)
	}
	delete(mfs.entries, absPath)
	return nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
