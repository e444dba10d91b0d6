package runner

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/core"
	"github.com/quantmind-br/mayasweep/internal/helpers"
	"github.com/quantmind-br/mayasweep/internal/logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mayapy = "/usr/autodesk/maya2025/bin/mayapy"

// argValue returns the value following a flag in an argument list
func argValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func newTestRunner(t *testing.T, fs afero.Fs, mock *helpers.MockCommandRunner) *Runner {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, scriptSourcePath, []byte("# cleaner"), 0644))
	return NewWithTempDir(fs, mock, nil, logging.NewTestLogger(io.Discard), "/tmp")
}

func TestRunSuccess(t *testing.T) {
	fs := afero.NewMemMapFs()
	mock := &helpers.MockCommandRunner{
		RunCommandFunc: func(_ context.Context, _ string, args ...string) (string, string, error) {
			results := argValue(args, "--json")
			payload := `{"status":"ok","message":"done","details":["a.ma cleaned"],"cleaned_count":1,"processed_count":1}`
			require.NoError(t, afero.WriteFile(fs, results, []byte(payload), 0644))
			return "", "", nil
		},
	}
	r := newTestRunner(t, fs, mock)

	result, err := r.Run(context.Background(), core.InvocationRequest{Mode: core.ModeScene, Path: "/scenes/a.ma"}, mayapy)
	require.NoError(t, err)

	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "done", result.Message)
	assert.Equal(t, []string{"a.ma cleaned"}, result.Details)
	assert.Equal(t, 1, result.CleanedCount)
	assert.Equal(t, 1, result.ProcessedCount)
}

func TestRunInvocationArguments(t *testing.T) {
	fs := afero.NewMemMapFs()
	mock := &helpers.MockCommandRunner{
		RunCommandFunc: func(_ context.Context, _ string, args ...string) (string, string, error) {
			require.NoError(t, afero.WriteFile(fs, argValue(args, "--json"), []byte(`{"status":"ok"}`), 0644))
			return "", "", nil
		},
	}
	r := newTestRunner(t, fs, mock)

	_, err := r.Run(context.Background(), core.InvocationRequest{Mode: core.ModeScene, Path: "/scenes/a.ma"}, mayapy)
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	call := mock.Calls[0]
	assert.Equal(t, mayapy, call[0])
	assert.Equal(t, scriptSourcePath, call[1])
	assert.Equal(t, "scene", argValue(call, "--mode"))
	assert.Equal(t, "/scenes/a.ma", argValue(call, "--path"))
	assert.NotEmpty(t, argValue(call, "--log"))
	assert.NotEmpty(t, argValue(call, "--json"))
}

func TestRunUserModeOmitsPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	mock := &helpers.MockCommandRunner{
		RunCommandFunc: func(_ context.Context, _ string, args ...string) (string, string, error) {
			require.NoError(t, afero.WriteFile(fs, argValue(args, "--json"), []byte(`{"status":"ok"}`), 0644))
			return "", "", nil
		},
	}
	r := newTestRunner(t, fs, mock)

	_, err := r.Run(context.Background(), core.InvocationRequest{Mode: core.ModeUser}, mayapy)
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.NotContains(t, mock.Calls[0], "--path")
}

func TestRunUniqueSideFilesPerInvocation(t *testing.T) {
	fs := afero.NewMemMapFs()
	var resultFiles []string
	mock := &helpers.MockCommandRunner{
		RunCommandFunc: func(_ context.Context, _ string, args ...string) (string, string, error) {
			results := argValue(args, "--json")
			resultFiles = append(resultFiles, results)
			require.NoError(t, afero.WriteFile(fs, results, []byte(`{"status":"ok"}`), 0644))
			return "", "", nil
		},
	}
	r := newTestRunner(t, fs, mock)

	for i := 0; i < 2; i++ {
		_, err := r.Run(context.Background(), core.InvocationRequest{Mode: core.ModeUser}, mayapy)
		require.NoError(t, err)
	}

	require.Len(t, resultFiles, 2)
	assert.NotEqual(t, resultFiles[0], resultFiles[1])
}

func TestRunFailurePrefersLogFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	logContents := "Error: --path is required for scene mode\n"
	mock := &helpers.MockCommandRunner{
		RunCommandFunc: func(_ context.Context, _ string, args ...string) (string, string, error) {
			require.NoError(t, afero.WriteFile(fs, argValue(args, "--log"), []byte(logContents), 0644))
			return "", "traceback...", assert.AnError
		},
	}
	r := newTestRunner(t, fs, mock)

	_, err := r.Run(context.Background(), core.InvocationRequest{Mode: core.ModeScene, Path: "/a.ma"}, mayapy)
	require.Error(t, err)

	var execErr *ScriptExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, logContents, execErr.Message)
}

func TestRunFailureFallsBackToStderr(t *testing.T) {
	fs := afero.NewMemMapFs()
	mock := &helpers.MockCommandRunner{
		RunCommandFunc: func(_ context.Context, _ string, _ ...string) (string, string, error) {
			return "", "boom", assert.AnError
		},
	}
	r := newTestRunner(t, fs, mock)

	_, err := r.Run(context.Background(), core.InvocationRequest{Mode: core.ModeUser}, mayapy)
	require.Error(t, err)

	var execErr *ScriptExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "boom", execErr.Message)
}

func TestRunSpawnFailureSurfacesError(t *testing.T) {
	fs := afero.NewMemMapFs()
	spawnErr := errors.New("fork/exec /usr/autodesk/maya2025/bin/mayapy: no such file or directory")
	mock := &helpers.MockCommandRunner{
		RunCommandFunc: func(_ context.Context, _ string, _ ...string) (string, string, error) {
			// Interpreter never started: no log file, nothing on stderr
			return "", "", spawnErr
		},
	}
	r := newTestRunner(t, fs, mock)

	_, err := r.Run(context.Background(), core.InvocationRequest{Mode: core.ModeUser}, mayapy)
	require.Error(t, err)

	var execErr *ScriptExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, spawnErr.Error(), execErr.Message)
	assert.Contains(t, err.Error(), "fork/exec")
}

func TestRunResultsMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	mock := &helpers.MockCommandRunner{} // exits zero, writes nothing
	r := newTestRunner(t, fs, mock)

	_, err := r.Run(context.Background(), core.InvocationRequest{Mode: core.ModeUser}, mayapy)
	require.Error(t, err)

	var missing *ResultsMissingError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Path, "mayasweep-results-")
}

func TestRunResultsParseError(t *testing.T) {
	fs := afero.NewMemMapFs()
	mock := &helpers.MockCommandRunner{
		RunCommandFunc: func(_ context.Context, _ string, args ...string) (string, string, error) {
			require.NoError(t, afero.WriteFile(fs, argValue(args, "--json"), []byte("not json"), 0644))
			return "", "", nil
		},
	}
	r := newTestRunner(t, fs, mock)

	_, err := r.Run(context.Background(), core.InvocationRequest{Mode: core.ModeUser}, mayapy)
	require.Error(t, err)

	var parseErr *ResultsParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Error(t, parseErr.Unwrap())
}

func TestFindScriptFallbackOrder(t *testing.T) {
	log := logging.NewTestLogger(io.Discard)

	t.Run("source location wins", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, scriptSourcePath, []byte("#"), 0644))
		require.NoError(t, afero.WriteFile(fs, scriptDistPath, []byte("#"), 0644))

		r := New(fs, &helpers.MockCommandRunner{}, nil, log)
		script, err := r.FindScript()
		require.NoError(t, err)
		assert.Equal(t, scriptSourcePath, script)
	})

	t.Run("dist location as fallback", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, scriptDistPath, []byte("#"), 0644))

		r := New(fs, &helpers.MockCommandRunner{}, nil, log)
		script, err := r.FindScript()
		require.NoError(t, err)
		assert.Equal(t, scriptDistPath, script)
	})

	t.Run("config override first", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/opt/cleaner.py", []byte("#"), 0644))
		require.NoError(t, afero.WriteFile(fs, scriptSourcePath, []byte("#"), 0644))

		cfg := &config.Config{Maya: config.MayaConfig{Script: "/opt/cleaner.py"}}
		r := New(fs, &helpers.MockCommandRunner{}, cfg, log)
		script, err := r.FindScript()
		require.NoError(t, err)
		assert.Equal(t, "/opt/cleaner.py", script)
	})

	t.Run("missing everywhere lists all checked locations", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		r := New(fs, &helpers.MockCommandRunner{}, nil, log)

		_, err := r.FindScript()
		require.Error(t, err)

		var notFound *ScriptNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []string{scriptSourcePath, scriptDistPath}, notFound.Checked)
		assert.Contains(t, err.Error(), scriptSourcePath)
		assert.Contains(t, err.Error(), scriptDistPath)
	})
}
