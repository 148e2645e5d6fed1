package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/gcroots/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return osFS{}
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

func (osFS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

func (osFS) Remove(name string) error {
	return os.Remove(name)
}
