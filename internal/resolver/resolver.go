// Package resolver turns loosely specified user paths into absolute ones by
// probing an ordered list of candidate roots. Users often pass a bare
// filename expecting the tool to look in "nearby" places; the probe order is
// fixed so results stay reproducible.
package resolver

import (
	"os"
	"path/filepath"

	"github.com/quantmind-br/mayasweep/internal/fsops"
	"github.com/spf13/afero"
)

// Resolver resolves relative paths against a prioritized list of roots.
// Root generators and the existence check are injectable for testing.
type Resolver struct {
	fs      afero.Fs
	cwd     func() (string, error)
	exeDir  func() (string, error)
	homeDir string
}

// New creates a Resolver using the process working directory, the directory
// of the running binary, and the user's home directory as candidate roots.
func New(fs afero.Fs) *Resolver {
	homeDir, _ := os.UserHomeDir()
	return &Resolver{
		fs:  fs,
		cwd: os.Getwd,
		exeDir: func() (string, error) {
			exe, err := os.Executable()
			if err != nil {
				return "", err
			}
			return filepath.Dir(exe), nil
		},
		homeDir: homeDir,
	}
}

// NewWithRoots creates a Resolver with explicit root generators (useful for tests)
func NewWithRoots(fs afero.Fs, cwd, exeDir func() (string, error), homeDir string) *Resolver {
	return &Resolver{
		fs:      fs,
		cwd:     cwd,
		exeDir:  exeDir,
		homeDir: homeDir,
	}
}

// Resolve returns a best-effort absolute path for raw. It never fails: when
// no candidate root contains raw, the original path is returned unchanged and
// the caller is responsible for reporting it as missing.
//
// Probe order, first hit wins:
//  1. raw itself when already absolute (no existence check)
//  2. current working directory
//  3. directory containing the running binary
//  4. home directory
//  5. home/Downloads
//  6. home/Documents
func (r *Resolver) Resolve(raw string) string {
	if raw == "" || filepath.IsAbs(raw) {
		return raw
	}

	for _, root := range r.roots() {
		if root == "" {
			continue
		}
		joined := filepath.Join(root, raw)
		if fsops.Exists(r.fs, joined) {
			return joined
		}
	}

	return raw
}

// roots builds the candidate root list fresh for each call; cwd and the
// binary directory can change between calls.
func (r *Resolver) roots() []string {
	roots := make([]string, 0, 5)

	if cwd, err := r.cwd(); err == nil {
		roots = append(roots, cwd)
	}
	if exeDir, err := r.exeDir(); err == nil {
		roots = append(roots, exeDir)
	}
	if r.homeDir != "" {
		roots = append(roots,
			r.homeDir,
			filepath.Join(r.homeDir, "Downloads"),
			filepath.Join(r.homeDir, "Documents"),
		)
	}

	return roots
}
