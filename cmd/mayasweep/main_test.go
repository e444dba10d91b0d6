package main

import (
	"io"
	"testing"

	"github.com/quantmind-br/mayasweep/internal/cmd"
	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/logging"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := config.Load()
	require.NoError(t, err)

	log := logging.NewTestLogger(io.Discard)
	rootCmd := cmd.NewRootCmd(cfg, log, version)
	require.NotNil(t, rootCmd)

	expected := []string{"scene", "dir", "user", "find", "history", "doctor", "completion", "version"}
	for _, name := range expected {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %q", name)
	}
}

func TestRootCommandHelp(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := config.Load()
	require.NoError(t, err)

	log := logging.NewTestLogger(io.Discard)
	rootCmd := cmd.NewRootCmd(cfg, log, version)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--help"})

	assert.NoError(t, rootCmd.Execute())
}
