package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/gcroots/pkg/filesystem"
	"github.com/arthur-debert/gcroots/pkg/types"
)

// Op names a filesystem operation FaultFS can fail
type Op string

const (
	OpStat     Op = "stat"
	OpLstat    Op = "lstat"
	OpMkdirAll Op = "mkdirall"
	OpSymlink  Op = "symlink"
	OpReadlink Op = "readlink"
	OpRemove   Op = "remove"
)

type fault struct {
	op   Op
	path string
}

// FaultFS delegates to an underlying FS, returning injected errors for
// configured (operation, path) pairs. For Symlink the path is the new link.
type FaultFS struct {
	base types.FS

	mu     sync.Mutex
	faults map[fault]error
	calls  []string
}

// NewFaultFS wraps base; a nil base means the OS filesystem
func NewFaultFS(base types.FS) *FaultFS {
	if base == nil {
		base = filesystem.NewOS()
	}
	return &FaultFS{base: base, faults: make(map[fault]error)}
}

// Fail makes op on path return err
func (f *FaultFS) Fail(op Op, path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[fault{op, path}] = &fs.PathError{Op: string(op), Path: path, Err: err}
	return f
}

// Calls returns the mutating calls made so far as "op path"
func (f *FaultFS) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FaultFS) check(op Op, path string, record bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if record {
		f.calls = append(f.calls, string(op)+" "+path)
	}
	return f.faults[fault{op, path}]
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name, false); err != nil {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check(OpLstat, name, false); err != nil {
		return nil, err
	}
	return f.base.Lstat(name)
}

func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path, true); err != nil {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if err := f.check(OpSymlink, newname, true); err != nil {
		return err
	}
	return f.base.Symlink(oldname, newname)
}

func (f *FaultFS) Readlink(name string) (string, error) {
	if err := f.check(OpReadlink, name, false); err != nil {
		return "", err
	}
	return f.base.Readlink(name)
}

func (f *FaultFS) Remove(name string) error {
	if err := f.check(OpRemove, name, true); err != nil {
		return err
	}
	return f.base.Remove(name)
}
