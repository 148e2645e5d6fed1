package roots

import (
	"io/fs"

	"github.com/arthur-debert/gcroots/pkg/types"
)

// LinkStatus describes one of the two root links as found on disk. Target
// is the raw link target; it is empty when the entry is missing or is not a
// symlink.
type LinkStatus struct {
	Path      types.AbsPath `json:"path"`
	Present   bool          `json:"present"`
	IsSymlink bool          `json:"is_symlink"`
	Target    string        `json:"target,omitempty"`
}

// Status is a read-only snapshot of a project's roots.
//
// Global is nil when the per-user directory cannot be determined. Exists is
// AllExist(Paths()), so it is false for a dangling forward root. Registered
// is true when the forward root is a symlink and the reverse root points at
// it.
type Status struct {
	ProjectID  string      `json:"project_id"`
	Local      LinkStatus  `json:"local"`
	Global     *LinkStatus `json:"global,omitempty"`
	Exists     bool        `json:"exists"`
	Registered bool        `json:"registered"`
}

// Inspect reads the state of both roots without changing anything
func (r Roots) Inspect() Status {
	local := r.shellGCRoot()
	st := Status{
		ProjectID: r.projectID,
		Local:     r.inspectLink(local),
		Exists:    types.AllExist(r.Paths()),
	}

	if global, err := r.GlobalRootPath(); err == nil {
		g := r.inspectLink(global)
		st.Global = &g
		st.Registered = st.Local.IsSymlink && g.IsSymlink && g.Target == local.String()
	}

	return st
}

func (r Roots) inspectLink(path types.AbsPath) LinkStatus {
	ls := LinkStatus{Path: path}
	info, err := r.fs.Lstat(path.String())
	if err != nil {
		return ls
	}
	ls.Present = true
	if info.Mode()&fs.ModeSymlink == 0 {
		return ls
	}
	ls.IsSymlink = true
	if target, err := r.fs.Readlink(path.String()); err == nil {
		ls.Target = target
	}
	return ls
}

// Registration describes a successful CreateRoots call for display
type Registration struct {
	ProjectID string                           `json:"project_id"`
	Target    types.AbsPath                    `json:"target"`
	Output    types.OutputPath[types.RootPath] `json:"output"`
	Global    types.AbsPath                    `json:"global"`
}
