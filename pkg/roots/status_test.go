package roots_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gcroots/pkg/project"
	"github.com/arthur-debert/gcroots/pkg/roots"
	"github.com/arthur-debert/gcroots/pkg/testutil"
	"github.com/arthur-debert/gcroots/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	t.Run("unregistered", func(t *testing.T) {
		l := testutil.NewLayout(t, testProjectID)
		st := newRoots(t, l, "u").Inspect()

		assert.Equal(t, testProjectID, st.ProjectID)
		assert.False(t, st.Local.Present)
		require.NotNil(t, st.Global)
		assert.False(t, st.Global.Present)
		assert.False(t, st.Exists)
		assert.False(t, st.Registered)
	})

	t.Run("registered", func(t *testing.T) {
		l := testutil.NewLayout(t, testProjectID)
		target := l.StorePath(t, "xxxx-env")
		r := newRoots(t, l, "u")
		_, err := r.CreateRoots(types.NewRootedPath(target), zerolog.Nop())
		require.NoError(t, err)

		st := r.Inspect()
		assert.True(t, st.Local.IsSymlink)
		assert.Equal(t, target.String(), st.Local.Target)
		require.NotNil(t, st.Global)
		assert.Equal(t, globalRoot(l, "u"), st.Global.Path.String())
		assert.Equal(t, localRoot(l), st.Global.Target)
		assert.True(t, st.Exists)
		assert.True(t, st.Registered)
	})

	t.Run("dangling", func(t *testing.T) {
		l := testutil.NewLayout(t, testProjectID)
		target := l.StorePath(t, "xxxx-env")
		r := newRoots(t, l, "u")
		_, err := r.CreateRoots(types.NewRootedPath(target), zerolog.Nop())
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(target.String()))

		st := r.Inspect()
		assert.True(t, st.Local.Present)
		assert.False(t, st.Exists)
		assert.True(t, st.Registered, "registration survives a missing output")
	})

	t.Run("local_is_regular_file", func(t *testing.T) {
		l := testutil.NewLayout(t, testProjectID)
		require.NoError(t, os.WriteFile(localRoot(l), []byte("x"), 0644))

		st := newRoots(t, l, "u").Inspect()
		assert.True(t, st.Local.Present)
		assert.False(t, st.Local.IsSymlink)
		assert.Empty(t, st.Local.Target)
		assert.False(t, st.Registered)
	})

	t.Run("missing_user", func(t *testing.T) {
		l := testutil.NewLayout(t, testProjectID)
		p, err := project.New(testProjectID, types.MustAbsPath(l.CacheDir))
		require.NoError(t, err)

		st := roots.FromProject(p, roots.Environment{}).Inspect()
		assert.Nil(t, st.Global)
		assert.False(t, st.Registered)
		assert.Equal(t, filepath.Join(l.CacheDir, "shell_gc_root"), st.Local.Path.String())
	})
}
