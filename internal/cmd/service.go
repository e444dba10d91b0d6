package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/quantmind-br/mayasweep/internal/cleaner"
	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/core"
	"github.com/quantmind-br/mayasweep/internal/db"
	"github.com/quantmind-br/mayasweep/internal/helpers"
	"github.com/quantmind-br/mayasweep/internal/locator"
	"github.com/quantmind-br/mayasweep/internal/resolver"
	"github.com/quantmind-br/mayasweep/internal/runner"
	"github.com/quantmind-br/mayasweep/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// newService wires the cleaning pipeline against the real filesystem and os/exec
func newService(cfg *config.Config, log *zerolog.Logger) *cleaner.Service {
	fs := afero.NewOsFs()
	loc := locator.New(fs, cfg, log)
	res := resolver.New(fs)
	run := runner.New(fs, helpers.NewOSCommandRunner(), cfg, log)
	return cleaner.New(fs, loc, res, run, log)
}

// recordRun appends the operation outcome to the history database. History is
// best-effort: failures are logged and never fail the operation itself.
func recordRun(ctx context.Context, cfg *config.Config, log *zerolog.Logger, mode core.Mode, path string, result *core.CleaningResult, runErr error) {
	run := db.Run{
		Mode: string(mode),
		Path: path,
	}
	switch {
	case result != nil:
		run.Status = result.Status
		run.Message = db.SanitizeMessage(result.Message)
		run.CleanedCount = result.CleanedCount
		run.ProcessedCount = result.ProcessedCount
	case runErr != nil:
		run.Status = "error"
		run.Message = db.SanitizeMessage(runErr.Error())
	default:
		return
	}

	database, err := db.New(ctx, cfg.Paths.DBFile)
	if err != nil {
		log.Warn().Err(err).Msg("history database unavailable, run not recorded")
		return
	}
	defer database.Close()

	if err := database.Create(ctx, &run); err != nil {
		log.Warn().Err(err).Msg("failed to record run in history")
	}
}

// printOutcome renders a successful result, as JSON when requested
func printOutcome(result *core.CleaningResult, jsonOutput bool) error {
	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	ui.PrintResult(result)
	return nil
}
