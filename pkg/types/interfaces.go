package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem surface templatize needs to discover, read and
// render templates.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Create creates or truncates the named file and opens it for writing.
	Create(name string) (File, error)

	// Chmod changes the permission bits of the named file.
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// File is a writable handle returned by FS.Create.
type File interface {
	io.Writer
	io.Closer
}
