package cmd

import (
	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/core"
	"github.com/quantmind-br/mayasweep/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDirCmd creates the dir command
func NewDirCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput bool
		assumeYes  bool
	)

	cmd := &cobra.Command{
		Use:     "dir <path>",
		Aliases: []string{"directory"},
		Short:   "Clean every Maya scene file under a directory",
		Long: `Recursively clean every .ma and .mb file under the given directory.
Each file is opened, cleaned and saved in place; the cleaning script keeps a
backup of every touched file in the temp directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ctx := cmd.Context()

			if !assumeYes {
				confirmed, err := ui.ConfirmDangerousAction("clean every scene file under", path)
				if err != nil {
					return err
				}
				if !confirmed {
					ui.PrintInfo("Aborted.")
					return nil
				}
			}

			log.Info().Str("path", path).Msg("directory clean requested")

			svc := newService(cfg, log)
			resolved := svc.ResolvePath(path)
			result, err := svc.CleanDirectory(ctx, resolved)
			recordRun(ctx, cfg, log, core.ModeDirectory, resolved, result, err)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}

			return printOutcome(result, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw result as JSON")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
