package system

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sort"
)

// FileSystem is the interface for the file system.
type FileSystem interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)
	// ListDir lists the entry names of a directory, sorted by name.
	ListDir(path string) ([]string, error)
}

// fileSystem is the default implementation of the FileSystem interface.
type fileSystem struct{}

// NewFileSystem creates a new file system.
func NewFileSystem() FileSystem {
	return &fileSystem{}
}

// Exists checks if a file or directory exists at the given path. It returns
// false without an error if the path does not exist, or an error if the path
// cannot be inspected.
func (f *fileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	slog.Default().Error("error checking path", "path", path, "err", err)
	return false, err
}

// ListDir lists the entry names of a directory, sorted by name. It returns an
// error if the directory cannot be read.
func (f *fileSystem) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		slog.Default().Error("error reading directory", "path", path, "err", err)
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}
