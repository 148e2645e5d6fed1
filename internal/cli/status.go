package cli

import (
	"github.com/arthur-debert/gcroots/pkg/roots"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	var pf projectFlags

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			proj, err := pf.resolve(a)
			if err != nil {
				return err
			}

			st := roots.FromProject(proj, a.cfg.RootsEnvironment()).Inspect()
			return renderer.RenderResult(st)
		},
	}

	pf.register(cmd)
	return cmd
}
