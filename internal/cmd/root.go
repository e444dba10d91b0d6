package cmd

import (
	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mayasweep",
		Short:        "Clean malicious script nodes from Maya files",
		Long:         `mayasweep locates the Maya Python interpreter and drives a cleaning script that removes known malicious script nodes and script jobs from scene files and user script directories.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewSceneCmd(cfg, log))
	cmd.AddCommand(NewDirCmd(cfg, log))
	cmd.AddCommand(NewUserCmd(cfg, log))
	cmd.AddCommand(NewFindCmd(cfg, log))
	cmd.AddCommand(NewHistoryCmd(cfg, log))
	cmd.AddCommand(NewDoctorCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd())
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
