// Package cleaner composes discovery, path resolution and script execution
// into the three cleaning operations exposed to the CLI.
package cleaner

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/mayasweep/internal/core"
	"github.com/quantmind-br/mayasweep/internal/fsops"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ExecutableLocator finds the mayapy interpreter
type ExecutableLocator interface {
	Locate() (string, error)
}

// PathResolver resolves loosely specified user paths
type PathResolver interface {
	Resolve(raw string) string
}

// ScriptRunner executes the cleaner script and parses its output
type ScriptRunner interface {
	Run(ctx context.Context, req core.InvocationRequest, mayapy string) (*core.CleaningResult, error)
}

// Service is the operation facade. Every operation follows the same pipeline:
// resolve the path (when one is given), validate it, locate the interpreter,
// run the script. Operations are all-or-nothing: a CleaningResult or an error,
// never both.
type Service struct {
	fs       afero.Fs
	locator  ExecutableLocator
	resolver PathResolver
	runner   ScriptRunner
	log      *zerolog.Logger
}

// New creates the cleaning service
func New(fs afero.Fs, loc ExecutableLocator, res PathResolver, run ScriptRunner, log *zerolog.Logger) *Service {
	return &Service{
		fs:       fs,
		locator:  loc,
		resolver: res,
		runner:   run,
		log:      log,
	}
}

// FindExecutable returns the discovered mayapy path
func (s *Service) FindExecutable() (string, error) {
	return s.locator.Locate()
}

// ResolvePath returns the path an operation will actually act on. Callers
// that record or display the target should use this rather than the raw
// user input. Resolution is idempotent: an already-resolved path comes back
// unchanged.
func (s *Service) ResolvePath(raw string) string {
	return s.resolver.Resolve(raw)
}

// CleanScene cleans a single Maya scene file. The path is validated before
// any subprocess work: it must exist and carry a .ma or .mb extension.
func (s *Service) CleanScene(ctx context.Context, path string) (*core.CleaningResult, error) {
	resolved := s.resolver.Resolve(path)

	if !fsops.Exists(s.fs, resolved) {
		return nil, &FileNotFoundError{Path: resolved}
	}
	if !isSceneFile(resolved) {
		return nil, &WrongFileTypeError{Path: resolved}
	}

	mayapy, err := s.locator.Locate()
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("scene", resolved).Msg("cleaning scene file")
	return s.runner.Run(ctx, core.InvocationRequest{Mode: core.ModeScene, Path: resolved}, mayapy)
}

// CleanDirectory cleans every Maya scene file under a directory
func (s *Service) CleanDirectory(ctx context.Context, path string) (*core.CleaningResult, error) {
	resolved := s.resolver.Resolve(path)

	if !fsops.IsDir(s.fs, resolved) {
		return nil, &DirectoryNotFoundError{Path: resolved}
	}

	mayapy, err := s.locator.Locate()
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("directory", resolved).Msg("cleaning directory")
	return s.runner.Run(ctx, core.InvocationRequest{Mode: core.ModeDirectory, Path: resolved}, mayapy)
}

// CleanUserScope cleans the Maya user script directories. No path input; the
// script discovers the directories itself.
func (s *Service) CleanUserScope(ctx context.Context) (*core.CleaningResult, error) {
	mayapy, err := s.locator.Locate()
	if err != nil {
		return nil, err
	}

	s.log.Info().Msg("cleaning user script directories")
	return s.runner.Run(ctx, core.InvocationRequest{Mode: core.ModeUser}, mayapy)
}

// isSceneFile reports whether the path has a recognized scene extension,
// case-insensitive
func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range core.SceneExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
