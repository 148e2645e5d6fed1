package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gcroots/pkg/types"
)

// Layout is a throwaway directory tree standing in for a store, a project
// cache directory and the store's state directory.
type Layout struct {
	Root     string
	Store    string
	CacheDir string
	StateDir string
}

// NewLayout creates the store and cache directories under t.TempDir().
// The state directory is left absent so tests observe its creation.
func NewLayout(t *testing.T, projectID string) *Layout {
	t.Helper()

	root := t.TempDir()
	l := &Layout{
		Root:     root,
		Store:    filepath.Join(root, "store"),
		CacheDir: filepath.Join(root, "cache", "gc_roots", projectID),
		StateDir: filepath.Join(root, "state"),
	}
	for _, dir := range []string{l.Store, l.CacheDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return l
}

// StorePath creates a store output directory named name and returns it
func (l *Layout) StorePath(t *testing.T, name string) types.AbsPath {
	t.Helper()

	p := filepath.Join(l.Store, name)
	if err := os.MkdirAll(p, 0755); err != nil {
		t.Fatalf("Failed to create store path %s: %v", p, err)
	}
	return types.MustAbsPath(p)
}

// AssertSymlink fails the test unless link is a symlink pointing at target
func AssertSymlink(t *testing.T, link, target string) {
	t.Helper()

	got, err := os.Readlink(link)
	if err != nil {
		t.Errorf("Expected %s to be a symlink: %v", link, err)
		return
	}
	if got != target {
		t.Errorf("Symlink %s points to %s, want %s", link, got, target)
	}
}
