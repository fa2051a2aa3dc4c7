package spdx

import "os"

// FileSystem is the I/O collaborator consumed by entry operations.
// Implementations must be safe for concurrent use across distinct paths;
// the package does not serialize concurrent writes to the same path.
type FileSystem interface {
	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// ReadText reads the full content of the file at path as text.
	ReadText(path string) (string, error)

	// WriteText replaces the file at path with content, creating it if
	// needed.
	WriteText(path, content string) error

	// ReadBytes reads the full raw content of the file at path.
	ReadBytes(path string) ([]byte, error)
}

// OSFileSystem implements FileSystem against the local disk.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the os package.
func NewOSFileSystem() FileSystem {
	return OSFileSystem{}
}

// Exists reports whether path names an existing file.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadText reads the file at path as a string.
func (OSFileSystem) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes content to path with mode 0644.
func (OSFileSystem) WriteText(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// ReadBytes reads the raw bytes of the file at path.
func (OSFileSystem) ReadBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}
