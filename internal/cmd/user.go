package cmd

import (
	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/core"
	"github.com/quantmind-br/mayasweep/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewUserCmd creates the user command
func NewUserCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Clean the Maya user script directories",
		Long: `Clean userSetup.py and known malicious helper scripts from the Maya
user script directories (Documents/maya/<version>/scripts and the Maya
application data directories). No path argument is needed; the cleaning
script discovers the directories itself.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			log.Info().Msg("user scope clean requested")

			svc := newService(cfg, log)
			result, err := svc.CleanUserScope(ctx)
			recordRun(ctx, cfg, log, core.ModeUser, "", result, err)
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
