// Package runner drives the mayapy cleaner script as a subprocess and reads
// its structured output back through side files.
//
// The exchange protocol:
//
//	<mayapy> <script> --mode <scene|directory|user> --log <logfile> --json <resultsfile> [--path <target>]
//
// Exit code zero means the results file holds a JSON CleaningResult. Non-zero
// means the log file (or stderr, when no log was written) holds the failure
// text. The side files carry a per-invocation token in their names so that
// overlapping invocations never clobber each other, and they are deliberately
// left behind for inspection.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/core"
	"github.com/quantmind-br/mayasweep/internal/fsops"
	"github.com/quantmind-br/mayasweep/internal/helpers"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Fallback locations for the cleaner script, probed in order relative to the
// working directory. A configured maya.script is probed before both.
const (
	scriptSourcePath = "scripts/maya_cleaner.py"
	scriptDistPath   = "dist/scripts/maya_cleaner.py"
)

// Runner executes the cleaner script through an injectable CommandRunner
type Runner struct {
	fs             afero.Fs
	cmd            helpers.CommandRunner
	log            *zerolog.Logger
	scriptOverride string
	tempDir        string
}

// New creates a Runner using the platform temp directory for side files
func New(fs afero.Fs, cmd helpers.CommandRunner, cfg *config.Config, log *zerolog.Logger) *Runner {
	var override string
	if cfg != nil {
		override = cfg.Maya.Script
	}
	return &Runner{
		fs:             fs,
		cmd:            cmd,
		log:            log,
		scriptOverride: override,
		tempDir:        os.TempDir(),
	}
}

// NewWithTempDir creates a Runner writing side files under tempDir (useful for tests)
func NewWithTempDir(fs afero.Fs, cmd helpers.CommandRunner, cfg *config.Config, log *zerolog.Logger, tempDir string) *Runner {
	r := New(fs, cmd, cfg, log)
	r.tempDir = tempDir
	return r
}

// FindScript returns the first existing cleaner script location, or a
// ScriptNotFoundError listing every location checked.
func (r *Runner) FindScript() (string, error) {
	var checked []string
	if r.scriptOverride != "" {
		checked = append(checked, r.scriptOverride)
	}
	checked = append(checked, scriptSourcePath, scriptDistPath)

	for _, candidate := range checked {
		if fsops.Exists(r.fs, candidate) {
			return candidate, nil
		}
	}

	return "", &ScriptNotFoundError{Checked: checked}
}

// Run invokes the cleaner script for the given request and parses its output.
// The call blocks until the subprocess exits.
func (r *Runner) Run(ctx context.Context, req core.InvocationRequest, mayapy string) (*core.CleaningResult, error) {
	script, err := r.FindScript()
	if err != nil {
		return nil, err
	}

	token := helpers.NewRunToken(string(req.Mode))
	resultsFile := filepath.Join(r.tempDir, fmt.Sprintf("mayasweep-results-%s.json", token))
	logFile := filepath.Join(r.tempDir, fmt.Sprintf("mayasweep-log-%s.txt", token))

	args := []string{script, "--mode", string(req.Mode), "--log", logFile, "--json", resultsFile}
	if req.Path != "" {
		args = append(args, "--path", req.Path)
	}

	r.log.Debug().
		Str("mayapy", mayapy).
		Str("script", script).
		Str("mode", string(req.Mode)).
		Str("results_file", resultsFile).
		Str("log_file", logFile).
		Msg("invoking cleaner script")

	_, stderr, runErr := r.cmd.RunCommand(ctx, mayapy, args...)
	if runErr != nil {
		return nil, &ScriptExecutionError{Message: r.failureMessage(logFile, stderr, runErr)}
	}

	if !fsops.Exists(r.fs, resultsFile) {
		return nil, &ResultsMissingError{Path: resultsFile}
	}

	data, err := fsops.ReadFile(r.fs, resultsFile)
	if err != nil {
		return nil, &ResultsParseError{Path: resultsFile, Err: err}
	}

	var result core.CleaningResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &ResultsParseError{Path: resultsFile, Err: err}
	}

	r.log.Info().
		Str("status", result.Status).
		Int("cleaned", result.CleanedCount).
		Int("processed", result.ProcessedCount).
		Msg("cleaner script finished")

	return &result, nil
}

// failureMessage prefers the script's log file over the raw stderr stream;
// the log carries the script's own diagnostics and is the better message.
// When neither exists the interpreter never ran (stale path, missing exec
// permission), so the spawn error itself is the message.
func (r *Runner) failureMessage(logFile, stderr string, runErr error) string {
	if fsops.Exists(r.fs, logFile) {
		if data, err := fsops.ReadFile(r.fs, logFile); err == nil {
			return string(data)
		}
	}
	if stderr != "" {
		return stderr
	}
	return runErr.Error()
}
