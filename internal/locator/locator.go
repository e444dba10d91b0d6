// Package locator discovers the Maya Python interpreter (mayapy) on the host.
package locator

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/fsops"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// NotFoundError indicates no mayapy interpreter was found in any candidate location
type NotFoundError struct {
	Probed int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Maya Python interpreter (mayapy) not found after checking %d locations. "+
		"Install Maya or set maya.executable in the config file.", e.Probed)
}

// Locator discovers and caches the mayapy path.
// The cache holds at most one path: the first candidate found to exist wins
// and is returned on every later call without re-checking the filesystem.
type Locator struct {
	fs         afero.Fs
	candidates []string
	log        *zerolog.Logger

	mu     sync.Mutex
	cached string
}

// New creates a Locator probing the default install locations for the
// configured version range. A configured maya.executable is probed first.
func New(fs afero.Fs, cfg *config.Config, log *zerolog.Logger) *Locator {
	return NewWithCandidates(fs, Candidates(cfg), log)
}

// NewWithCandidates creates a Locator over an explicit candidate list (useful for tests)
func NewWithCandidates(fs afero.Fs, candidates []string, log *zerolog.Logger) *Locator {
	return &Locator{
		fs:         fs,
		candidates: candidates,
		log:        log,
	}
}

// Candidates builds the ordered list of interpreter locations to probe,
// newest Maya version first. The config override, when set, goes in front.
func Candidates(cfg *config.Config) []string {
	versionMin, versionMax := 2020, 2026
	var override string
	if cfg != nil {
		if cfg.Maya.VersionMin != 0 {
			versionMin = cfg.Maya.VersionMin
		}
		if cfg.Maya.VersionMax != 0 {
			versionMax = cfg.Maya.VersionMax
		}
		override = cfg.Maya.Executable
	}

	var candidates []string
	if override != "" {
		candidates = append(candidates, override)
	}

	template := installTemplate(runtime.GOOS)
	for version := versionMax; version >= versionMin; version-- {
		candidates = append(candidates, fmt.Sprintf(template, version))
	}

	return candidates
}

// installTemplate returns the per-platform mayapy path template with a
// single %d placeholder for the Maya version year.
func installTemplate(goos string) string {
	switch goos {
	case "windows":
		return `C:\Program Files\Autodesk\Maya%d\bin\mayapy.exe`
	case "darwin":
		return "/Applications/Autodesk/maya%d/Maya.app/Contents/bin/mayapy"
	default:
		return "/usr/autodesk/maya%d/bin/mayapy"
	}
}

// Locate returns the mayapy path, probing candidates on the first call and
// serving the cached path thereafter. On failure the cache stays empty, so
// the next call probes again.
func (l *Locator) Locate() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached != "" {
		return l.cached, nil
	}

	for _, candidate := range l.candidates {
		if fsops.Exists(l.fs, candidate) {
			l.cached = candidate
			l.log.Debug().Str("mayapy", candidate).Msg("interpreter found")
			return candidate, nil
		}
	}

	return "", &NotFoundError{Probed: len(l.candidates)}
}
