package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/fsops"
	"github.com/quantmind-br/mayasweep/internal/helpers"
	"github.com/quantmind-br/mayasweep/internal/locator"
	"github.com/quantmind-br/mayasweep/internal/runner"
	"github.com/quantmind-br/mayasweep/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check interpreter, cleaner script and data directories",
		Long:  `Check that the Maya Python interpreter can be discovered, that the cleaner script is in place, and that the data and log directories are usable.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fs := afero.NewOsFs()
			var issues []string

			// 1. Interpreter discovery
			ui.PrintInfo("Maya Python interpreter")
			loc := locator.New(fs, cfg, log)
			if path, err := loc.Locate(); err == nil {
				ui.PrintSuccess("mayapy: %s", path)
			} else {
				ui.PrintError("mayapy: NOT FOUND")
				issues = append(issues, err.Error())
			}

			fmt.Println()

			// 2. Cleaner script
			ui.PrintInfo("Cleaner script")
			run := runner.New(fs, helpers.NewOSCommandRunner(), cfg, log)
			if script, err := run.FindScript(); err == nil {
				ui.PrintSuccess("script: %s", script)
			} else {
				ui.PrintError("script: NOT FOUND")
				issues = append(issues, err.Error())
			}

			fmt.Println()

			// 3. Directory structure
			ui.PrintInfo("Directories")
			dirs := []struct {
				path string
				name string
			}{
				{cfg.Paths.DataDir, "Data directory"},
				{filepath.Dir(cfg.Paths.DBFile), "History database directory"},
				{filepath.Dir(cfg.Paths.LogFile), "Log directory"},
				{os.TempDir(), "Temp directory"},
			}
			for _, dir := range dirs {
				if checkDirectory(fs, dir.path) {
					ui.PrintSuccess("%s: %s", dir.name, dir.path)
				} else {
					ui.PrintError("%s: NOT ACCESSIBLE (%s)", dir.name, dir.path)
					issues = append(issues, fmt.Sprintf("directory not accessible: %s", dir.path))
				}
			}

			fmt.Println()

			// 4. Environment
			ui.PrintInfo("Environment")
			if home, err := os.UserHomeDir(); err == nil && home != "" {
				ui.PrintSuccess("HOME: %s", home)
			} else {
				ui.PrintWarning("HOME: not resolvable (path resolution will skip home roots)")
			}

			fmt.Println()

			if len(issues) > 0 {
				ui.PrintError("Found %d issue(s):", len(issues))
				ui.PrintList(issues)
				return fmt.Errorf("system check failed with %d issue(s)", len(issues))
			}

			ui.PrintSuccess("All checks passed!")
			return nil
		},
	}

	return cmd
}

// checkDirectory checks if a directory exists (creating it when absent) and is writable
func checkDirectory(fs afero.Fs, path string) bool {
	if !fsops.IsDir(fs, path) {
		if err := fsops.EnsureDir(fs, path, 0755); err != nil {
			return false
		}
	}

	testFile := filepath.Join(path, ".mayasweep-test")
	if err := afero.WriteFile(fs, testFile, []byte("test"), 0644); err != nil {
		return false
	}
	fs.Remove(testFile)

	return true
}
