package filesystem

import (
	"io"
	"io/fs"
	"time"
)

// File is the subset of *os.File used by photosort.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Name() string
	Stat() (fs.FileInfo, error)
}

// FS abstracts every filesystem call the sort pipeline performs.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Path resolution
	EvalSymlinks(path string) (string, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Link operations
	Symlink(oldname, newname string) error
	Link(oldname, newname string) error

	// Removal
	Remove(name string) error
	RemoveAll(path string) error
}

// BirthTimer is implemented by filesystems that can report when a file was
// created. The boolean is false when the platform or the underlying
// filesystem does not record it.
type BirthTimer interface {
	BirthTime(name string) (time.Time, bool)
}

// Canonicalize returns the absolute path of name with every symlink resolved.
// It fails when name (or a link it points through) does not exist.
func Canonicalize(fsys FS, name string) (string, error) {
	return fsys.EvalSymlinks(name)
}
