package types

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/gcroots/pkg/errors"
)

// AbsPath is an absolute, cleaned filesystem path. The zero value is the
// only AbsPath that is not absolute and is reported by IsZero.
type AbsPath struct {
	path string
}

// NewAbsPath validates that p is absolute and returns it cleaned
func NewAbsPath(p string) (AbsPath, error) {
	if p == "" {
		return AbsPath{}, errors.New(errors.ErrInvalidInput, "path is empty")
	}
	if !filepath.IsAbs(p) {
		return AbsPath{}, errors.Newf(errors.ErrInvalidInput, "path %s is not absolute", p).
			WithDetail("path", p)
	}
	return AbsPath{path: filepath.Clean(p)}, nil
}

// MustAbsPath is like NewAbsPath but panics on a relative path.
// Intended for constants and tests.
func MustAbsPath(p string) AbsPath {
	a, err := NewAbsPath(p)
	if err != nil {
		panic(err)
	}
	return a
}

// Join appends path elements; the result stays absolute
func (a AbsPath) Join(elem ...string) AbsPath {
	return AbsPath{path: filepath.Join(append([]string{a.path}, elem...)...)}
}

// Base returns the last element of the path
func (a AbsPath) Base() string {
	return filepath.Base(a.path)
}

// String returns the path as a plain string
func (a AbsPath) String() string {
	return a.path
}

// Display returns a form of the path suitable for messages
func (a AbsPath) Display() string {
	return a.path
}

// IsZero reports whether a was never set
func (a AbsPath) IsZero() bool {
	return a.path == ""
}

// MarshalText implements encoding.TextMarshaler
func (a AbsPath) MarshalText() ([]byte, error) {
	return []byte(a.path), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *AbsPath) UnmarshalText(text []byte) error {
	p, err := NewAbsPath(string(text))
	if err != nil {
		return err
	}
	*a = p
	return nil
}

// RootPath marks a path that is, or is intended to be, a GC root symlink.
// It is a reference to a location, not ownership of what is there.
type RootPath struct {
	Path AbsPath
}

// Display returns the wrapped path for rendering
func (r RootPath) Display() string {
	return r.Path.Display()
}

// MarshalText implements encoding.TextMarshaler
func (r RootPath) MarshalText() ([]byte, error) {
	return r.Path.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *RootPath) UnmarshalText(text []byte) error {
	return r.Path.UnmarshalText(text)
}

// OutputPath names the outputs of a build. It is instantiated with AbsPath
// for candidate paths and with RootPath once the outputs are rooted.
type OutputPath[T any] struct {
	ShellGCRoot T `json:"shell_gc_root"`
}

// AllExist reports whether every GC root in o exists. Symlinks are
// followed, so a dangling root does not exist.
func AllExist(o OutputPath[RootPath]) bool {
	_, err := os.Stat(o.ShellGCRoot.Path.String())
	return err == nil
}

// RootedPath is a store path that has been selected for protection
type RootedPath struct {
	Path AbsPath
}

// NewRootedPath wraps a store output path
func NewRootedPath(storePath AbsPath) RootedPath {
	return RootedPath{Path: storePath}
}
