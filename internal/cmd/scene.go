package cmd

import (
	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/core"
	"github.com/quantmind-br/mayasweep/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewSceneCmd creates the scene command
func NewSceneCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scene <path>",
		Short: "Clean a single Maya scene file",
		Long: `Clean a single Maya scene file (.ma or .mb) of known malicious script
nodes and script jobs. Relative paths are resolved against the working
directory, the mayasweep binary directory, your home directory, Downloads
and Documents, in that order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ctx := cmd.Context()

			log.Info().Str("path", path).Msg("scene clean requested")

			svc := newService(cfg, log)
			resolved := svc.ResolvePath(path)
			result, err := svc.CleanScene(ctx, resolved)
			recordRun(ctx, cfg, log, core.ModeScene, resolved, result, err)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}

			return printOutcome(result, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw result as JSON")

	return cmd
}
