package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/mdiu/internal/config"
	"github.com/mithrel/mdiu/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "mdiu-cli",
		Short:         "mdiu: render gemtext-style documents as gemtext, HTML or Markdown",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp(cmd) {
				return nil
			}
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			applyConfigFlagOverrides(cmd, v, flagKeys(cmd))
			app, err := wire.BuildApp(cmd.Context(), v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, app))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")
	cmd.PersistentFlags().Bool("verbose", false, "log what the command does to stderr")
	cmd.PersistentFlags().Bool("pager", true, "page terminal output through $PAGER")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newFormatsCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

// annotationNoApp marks commands that must run without a loaded config,
// such as the ones that write a fresh one. Subcommands inherit it.
const annotationNoApp = "mdiu/no-app"

func skipsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoApp]; ok {
			return true
		}
	}
	return false
}

// flagKeys maps command-specific flag names onto config keys.
func flagKeys(cmd *cobra.Command) map[string]string {
	if keys, ok := cmd.Annotations[annotationFlagKeys]; ok {
		return parseFlagKeys(keys)
	}
	return nil
}

var errNoApp = errors.New("internal error: app not initialized")

func getApp(cmd *cobra.Command) (*wire.App, error) {
	app, ok := cmd.Context().Value(appKey).(*wire.App)
	if !ok {
		return nil, errNoApp
	}
	return app, nil
}
