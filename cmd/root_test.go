package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"analyze", "profile"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "aadhaar-health", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestAnalyzeCommand_Flags(t *testing.T) {
	for _, name := range []string{"data-dir", "output-dir", "skip-charts", "top-n"} {
		require.NotNil(t, analyzeCmd.Flags().Lookup(name), "analyze command should have --%s flag", name)
	}

	flag := analyzeCmd.Flags().Lookup("skip-charts")
	assert.Equal(t, "false", flag.DefValue)
}

func TestProfileCommand_Args(t *testing.T) {
	require.NotNil(t, profileCmd.Flags().Lookup("data-dir"))

	// A state name is mandatory.
	assert.Error(t, profileCmd.Args(profileCmd, nil))
	assert.NoError(t, profileCmd.Args(profileCmd, []string{"Kerala"}))
}
