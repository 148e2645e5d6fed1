package roots

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/types"
)

// Kind classifies why adding a root failed
type Kind int

const (
	// RemovalFailed: an existing entry could not be deleted
	RemovalFailed Kind = iota + 1
	// SymlinkFailed: either the forward or the reverse link could not be created
	SymlinkFailed
	// DirectoryCreationFailed: the per-user gcroots directory could not be created
	DirectoryCreationFailed
	// EnvironmentMissing: the user name needed for the per-user directory is unset
	EnvironmentMissing
)

func (k Kind) String() string {
	switch k {
	case RemovalFailed:
		return "removal failed"
	case SymlinkFailed:
		return "symlink failed"
	case DirectoryCreationFailed:
		return "directory creation failed"
	case EnvironmentMissing:
		return "environment missing"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; only the Kind is compared.
var (
	ErrRemovalFailed           = &AddRootError{Kind: RemovalFailed}
	ErrSymlinkFailed           = &AddRootError{Kind: SymlinkFailed}
	ErrDirectoryCreationFailed = &AddRootError{Kind: DirectoryCreationFailed}
	ErrEnvironmentMissing      = &AddRootError{Kind: EnvironmentMissing}
)

// AddRootError is returned by Roots.CreateRoots. Path is the path the
// failing operation acted on; Dest is only set for SymlinkFailed, in which
// case Path is the link target and Dest the link itself.
type AddRootError struct {
	Kind Kind
	Path types.AbsPath
	Dest types.AbsPath
	Err  error
}

func (e *AddRootError) Error() string {
	var msg string
	switch e.Kind {
	case RemovalFailed:
		msg = fmt.Sprintf("Failed to delete %s", e.Path.Display())
	case SymlinkFailed:
		msg = fmt.Sprintf("Failed to symlink %s to %s", e.Path.Display(), e.Dest.Display())
	case DirectoryCreationFailed:
		msg = fmt.Sprintf("Failed to recursively create directory %s", e.Path.Display())
	case EnvironmentMissing:
		msg = "Failed to determine the per-user gcroots directory"
	default:
		msg = "Failed to add root"
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *AddRootError) Unwrap() error {
	return e.Err
}

// Is matches any *AddRootError of the same Kind
func (e *AddRootError) Is(target error) bool {
	t, ok := target.(*AddRootError)
	return ok && t.Kind == e.Kind
}

// Code maps the kind onto the shared error codes
func (e *AddRootError) Code() errors.ErrorCode {
	switch e.Kind {
	case RemovalFailed:
		return errors.ErrRemove
	case SymlinkFailed:
		return errors.ErrSymlinkCreate
	case DirectoryCreationFailed:
		return errors.ErrDirCreate
	case EnvironmentMissing:
		return errors.ErrEnvMissing
	default:
		return errors.ErrUnknown
	}
}

var errUserNotSet = stderrors.New("user name is not set")

// removeIgnoringAbsence deletes the non-directory entry at path; a missing
// path already satisfies the goal. Directories are refused, even empty ones.
func removeIgnoringAbsence(fsys types.FS, path types.AbsPath) error {
	info, err := fsys.Lstat(path.String())
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &AddRootError{Kind: RemovalFailed, Path: path, Err: err}
	}
	if info.IsDir() {
		return &AddRootError{
			Kind: RemovalFailed,
			Path: path,
			Err:  &fs.PathError{Op: "remove", Path: path.String(), Err: syscall.EISDIR},
		}
	}

	err = fsys.Remove(path.String())
	if err == nil || stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return &AddRootError{Kind: RemovalFailed, Path: path, Err: err}
}

func symlinkError(err error, src, dest types.AbsPath) error {
	return &AddRootError{Kind: SymlinkFailed, Path: src, Dest: dest, Err: err}
}
