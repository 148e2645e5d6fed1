package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/gcroots/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setXDG(t *testing.T) string {
	t.Helper()

	// registered first so it runs after the variables are restored
	t.Cleanup(xdg.Reload)

	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmp, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	xdg.Reload()
	return tmp
}

func TestNew_DefaultsToXDGCache(t *testing.T) {
	tmp := setXDG(t)

	p := paths.New("")
	assert.Equal(t, filepath.Join(tmp, "cache", "gcroots"), p.CacheDir())

	dir, err := p.ProjectGCRootDir("ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "cache", "gcroots", "gc_roots", "ab12cd34"), dir.String())
}

func TestNew_ExplicitCacheDir(t *testing.T) {
	p := paths.New("/custom/cache")

	dir, err := p.ProjectGCRootDir("ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, "/custom/cache/gc_roots/ab12cd34", dir.String())
}

func TestFilePaths(t *testing.T) {
	tmp := setXDG(t)

	assert.Equal(t, filepath.Join(tmp, "config", "gcroots", "config.toml"), paths.ConfigFilePath())
	assert.Equal(t, filepath.Join(tmp, "state", "gcroots", "gcroots.log"), paths.LogFilePath())
}
