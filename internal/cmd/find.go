package cmd

import (
	"fmt"
	"os"

	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewFindCmd creates the find command
func NewFindCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Locate the Maya Python interpreter",
		Long:  `Probe the known Maya install locations, newest version first, and print the path of the first mayapy interpreter found.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			svc := newService(cfg, log)

			path, err := svc.FindExecutable()
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}

			if quiet {
				fmt.Fprintln(os.Stdout, path)
				return nil
			}

			ui.PrintSuccess("Found Maya Python interpreter")
			ui.PrintKeyValue("Path", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the path")

	return cmd
}
