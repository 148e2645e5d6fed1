package roots

import (
	"fmt"

	"github.com/arthur-debert/gcroots/pkg/filesystem"
	"github.com/arthur-debert/gcroots/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// ShellGCRootName is the name of the forward root inside a project's
	// cache directory. A project protects one output at a time.
	ShellGCRootName = "shell_gc_root"

	// DefaultStateDir is the store state directory used when no override is set
	DefaultStateDir = "/nix/var/nix"
)

// Project is what the root manager needs to know about a project
type Project interface {
	// GCRootPath is the project's private cache directory. It must exist.
	GCRootPath() types.AbsPath
	// Hash is a stable, filesystem-safe identifier for the project
	Hash() string
}

// Environment carries the ambient settings the root manager depends on.
// It is resolved once at startup so the manager never reads the process
// environment itself.
type Environment struct {
	// StateDirOverride replaces DefaultStateDir when set
	StateDirOverride types.AbsPath

	// User selects the per-user gcroots directory
	User string
}

// Roots registers GC roots for a single project
type Roots struct {
	gcRootPath types.AbsPath
	projectID  string
	env        Environment
	fs         types.FS
}

// FromProject constructs a Roots for project. It performs no I/O.
func FromProject(project Project, env Environment) Roots {
	return Roots{
		gcRootPath: project.GCRootPath(),
		projectID:  project.Hash(),
		env:        env,
		fs:         filesystem.NewOS(),
	}
}

// WithFS returns a copy of r that performs its filesystem operations on fsys
func (r Roots) WithFS(fsys types.FS) Roots {
	r.fs = fsys
	return r
}

// ProjectID returns the identifier used to name the global root
func (r Roots) ProjectID() string {
	return r.projectID
}

func (r Roots) shellGCRoot() types.AbsPath {
	return r.gcRootPath.Join(ShellGCRootName)
}

// Paths returns the project-local root paths, whether or not they exist yet
func (r Roots) Paths() types.OutputPath[types.RootPath] {
	return types.OutputPath[types.RootPath]{
		ShellGCRoot: types.RootPath{Path: r.shellGCRoot()},
	}
}

// GlobalRootDir returns the store's per-user gcroots directory,
// <state dir>/gcroots/per-user/<user>.
func (r Roots) GlobalRootDir() (types.AbsPath, error) {
	if r.env.User == "" {
		return types.AbsPath{}, &AddRootError{Kind: EnvironmentMissing, Err: errUserNotSet}
	}
	base := r.env.StateDirOverride
	if base.IsZero() {
		base = types.MustAbsPath(DefaultStateDir)
	}
	return base.Join("gcroots", "per-user", r.env.User), nil
}

// GlobalRootPath returns the reverse root for this project inside
// GlobalRootDir. The name depends only on the project id.
func (r Roots) GlobalRootPath() (types.AbsPath, error) {
	dir, err := r.GlobalRootDir()
	if err != nil {
		return types.AbsPath{}, err
	}
	return dir.Join(globalRootName(r.projectID)), nil
}

func globalRootName(projectID string) string {
	return fmt.Sprintf("%s-%s", projectID, ShellGCRootName)
}

// CreateRoots registers path as the project's GC root.
//
// The forward root <gc_root_path>/shell_gc_root points at the store path,
// and the reverse root in the per-user gcroots directory points at the
// forward root. Existing entries at either location are replaced. Calls
// for the same project must not run concurrently.
func (r Roots) CreateRoots(path types.RootedPath, logger zerolog.Logger) (types.OutputPath[types.RootPath], error) {
	var none types.OutputPath[types.RootPath]

	// Resolve the global directory first so a missing user fails before
	// anything on disk is touched.
	rootDir, err := r.GlobalRootDir()
	if err != nil {
		return none, err
	}

	storePath := path.Path
	local := r.shellGCRoot()

	logger.Debug().
		Str("from", storePath.String()).
		Str("to", local.String()).
		Msg("adding root")

	if err := removeIgnoringAbsence(r.fs, local); err != nil {
		return none, err
	}

	// forward root: project cache -> store path
	if err := r.fs.Symlink(storePath.String(), local.String()); err != nil {
		return none, symlinkError(err, storePath, local)
	}

	// The per-user directory may be missing; the store makes its parent
	// world-writable, so it can be created on demand.
	if info, statErr := r.fs.Stat(rootDir.String()); statErr != nil || !info.IsDir() {
		if err := r.fs.MkdirAll(rootDir.String(), 0755); err != nil {
			return none, &AddRootError{Kind: DirectoryCreationFailed, Path: rootDir, Err: err}
		}
	}

	global := rootDir.Join(globalRootName(r.projectID))

	logger.Debug().
		Str("from", local.String()).
		Str("to", global.String()).
		Msg("connecting root")

	if err := removeIgnoringAbsence(r.fs, global); err != nil {
		return none, err
	}

	// reverse root: store gcroots -> project cache
	if err := r.fs.Symlink(local.String(), global.String()); err != nil {
		return none, symlinkError(err, local, global)
	}

	return r.Paths(), nil
}
