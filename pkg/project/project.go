// Package project holds the identity of a project whose build output is
// protected by a GC root: its private cache directory and a stable id.
//
// Deriving the id and creating the cache directory happen elsewhere; this
// package only validates what it is given.
package project

import (
	"os"
	"strings"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/types"
)

// Project is a project with an existing cache directory
type Project struct {
	id         string
	gcRootPath types.AbsPath
}

// New validates id and returns a Project rooted at gcRootPath.
// It performs no I/O.
func New(id string, gcRootPath types.AbsPath) (Project, error) {
	if err := ValidateID(id); err != nil {
		return Project{}, err
	}
	if gcRootPath.IsZero() {
		return Project{}, errors.New(errors.ErrProjectInvalid, "project cache directory is not set")
	}
	return Project{id: id, gcRootPath: gcRootPath}, nil
}

// ValidateID checks that id can be used as a single file name component
func ValidateID(id string) error {
	switch {
	case id == "":
		return errors.New(errors.ErrProjectInvalid, "project id is empty")
	case id == "." || id == "..":
		return errors.Newf(errors.ErrProjectInvalid, "project id %q is not a valid file name", id)
	case strings.ContainsAny(id, "/\x00"):
		return errors.Newf(errors.ErrProjectInvalid, "project id %q contains a path separator or NUL", id).
			WithDetail("id", id)
	}
	return nil
}

// Hash returns the project's stable identifier
func (p Project) Hash() string {
	return p.id
}

// GCRootPath returns the project's private cache directory
func (p Project) GCRootPath() types.AbsPath {
	return p.gcRootPath
}

// CheckCacheDir verifies that the cache directory exists and is a directory
func (p Project) CheckCacheDir() error {
	info, err := os.Stat(p.gcRootPath.String())
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "project cache directory %s does not exist", p.gcRootPath).
				WithDetail("path", p.gcRootPath.String())
		}
		return errors.Wrapf(err, errors.ErrProjectInvalid, "cannot access project cache directory %s", p.gcRootPath)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrProjectInvalid, "project cache directory %s is not a directory", p.gcRootPath)
	}
	return nil
}
