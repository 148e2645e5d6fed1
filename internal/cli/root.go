// Package cli builds the gcroots command tree.
package cli

import (
	"github.com/arthur-debert/gcroots/internal/version"
	"github.com/arthur-debert/gcroots/pkg/config"
	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/logging"
	"github.com/arthur-debert/gcroots/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the values of the persistent flags
type globalOptions struct {
	verbosity  int
	configFile string
	stateDir   string
	format     string
}

// app carries what every subcommand needs once PersistentPreRunE has run
type app struct {
	opts globalOptions
	cfg  *config.Config
}

func (a *app) overrides() map[string]interface{} {
	overrides := map[string]interface{}{}
	if a.opts.stateDir != "" {
		overrides["store.state_dir"] = a.opts.stateDir
	}
	return overrides
}

func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.opts.format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// Execute runs cmd and, on failure, renders the error to its error stream
// in the format selected with --format
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}

	format := ui.FormatAuto
	if flag := cmd.PersistentFlags().Lookup("format"); flag != nil {
		if parsed, perr := ui.ParseFormat(flag.Value.String()); perr == nil {
			format = parsed
		}
	}
	if renderer, rerr := ui.NewRenderer(format, cmd.ErrOrStderr()); rerr == nil {
		_ = renderer.RenderError(err)
	}
	return err
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "gcroots",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{
				ConfigFile: a.opts.configFile,
				Overrides:  a.overrides(),
			})
			if err != nil {
				logging.SetupLoggerWithWriter(a.opts.verbosity, "", cmd.ErrOrStderr())
				return errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
			}
			a.cfg = cfg

			logging.SetupLoggerWithWriter(a.opts.verbosity, cfg.LogFile(), cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.opts.stateDir, "state-dir", "", MsgFlagStateDir)
	rootCmd.PersistentFlags().StringVar(&a.opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
