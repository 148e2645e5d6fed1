package cli

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/logging"
	"github.com/arthur-debert/gcroots/pkg/project"
	"github.com/arthur-debert/gcroots/pkg/roots"
	"github.com/arthur-debert/gcroots/pkg/types"
	"github.com/spf13/cobra"
)

// projectFlags are shared by the commands that act on one project
type projectFlags struct {
	id       string
	cacheDir string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "project-id", "", MsgFlagProjectID)
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", MsgFlagCacheDir)
	_ = cmd.MarkFlagRequired("project-id")
}

// resolve builds the project. The cache directory is --cache-dir, or
// <cache>/gc_roots/<id> from configuration.
func (f *projectFlags) resolve(a *app) (project.Project, error) {
	if err := project.ValidateID(f.id); err != nil {
		return project.Project{}, err
	}

	var dir types.AbsPath
	var err error
	if f.cacheDir != "" {
		dir, err = absolute(f.cacheDir, "--cache-dir")
	} else {
		dir, err = a.cfg.Paths().ProjectGCRootDir(f.id)
	}
	if err != nil {
		return project.Project{}, err
	}

	return project.New(f.id, dir)
}

// absolute makes arg absolute against the working directory
func absolute(arg, what string) (types.AbsPath, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return types.AbsPath{}, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrInvalidPath, what, arg)
	}
	return types.NewAbsPath(abs)
}

func newAddCmd(a *app) *cobra.Command {
	var pf projectFlags

	cmd := &cobra.Command{
		Use:     "add STORE_PATH",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.add")
			done := logging.LogOperationStart(logger, "add")
			defer done()

			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			target, err := absolute(args[0], "store path")
			if err != nil {
				return err
			}

			proj, err := pf.resolve(a)
			if err != nil {
				return err
			}
			if err := proj.CheckCacheDir(); err != nil {
				return err
			}

			if _, err := os.Stat(target.String()); err != nil {
				logger.Warn().Str("path", target.String()).Msg(MsgStorePathMissing)
			}

			r := roots.FromProject(proj, a.cfg.RootsEnvironment())
			output, err := r.CreateRoots(types.NewRootedPath(target), logging.GetLogger("roots"))
			if err != nil {
				return err
			}

			global, err := r.GlobalRootPath()
			if err != nil {
				return err
			}

			logger.Info().
				Str("project", proj.Hash()).
				Str("target", target.String()).
				Msg("Root registered")

			return renderer.RenderResult(roots.Registration{
				ProjectID: proj.Hash(),
				Target:    target,
				Output:    output,
				Global:    global,
			})
		},
	}

	pf.register(cmd)
	return cmd
}
