package types

import (
	"io/fs"
)

// FS is the filesystem interface required for gcroots operations
type FS interface {
	// Stat follows symlinks; Lstat does not
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	Remove(name string) error
}
