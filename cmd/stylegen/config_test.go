package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stylegen "github.com/yacobolo/stylegen"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylegen.yaml")
	configContent := `
verbose: true

output:
  mode: server
  server:
    dir: custom/static

generate:
  threshold: 3
  scan:
    - "custom/**/*.html"
  safelist:
    - hidden
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "server", k.String("output.mode"))
	assert.Equal(t, "custom/static", k.String("output.server.dir"))
	assert.Equal(t, 3, k.Int("generate.threshold"))
	assert.Equal(t, []string{"custom/**/*.html"}, k.Strings("generate.scan"))
	assert.Equal(t, []string{"hidden"}, k.Strings("generate.safelist"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.stylegen.yaml"))

	config, err := buildOutputConfig()
	require.NoError(t, err)
	assert.Equal(t, stylegen.ModeStatic, config.Mode)
	assert.Equal(t, "dist", config.StaticDir)
	assert.Equal(t, "static", config.ServerDir)
	assert.Equal(t, 2, globalThreshold())
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylegen.yaml")
	configContent := `
output:
  mode: static
generate:
  threshold: 3
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("STYLEGEN_OUTPUT_MODE", "server")
	t.Setenv("STYLEGEN_GENERATE_THRESHOLD", "4")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "server", k.String("output.mode"))
	assert.Equal(t, 4, globalThreshold())
}

func TestBuildOutputConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylegen.yaml")
	configContent := `
output:
  mode: server
  server:
    dir: web/static
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config, err := buildOutputConfig()
	require.NoError(t, err)
	assert.Equal(t, stylegen.ModeServer, config.Mode)
	assert.Equal(t, "web/static", config.ServerDir)
}

func TestBuildOutputConfig_RejectsUnknownMode(t *testing.T) {
	resetKoanf()
	k.Set("mode", "broken") //nolint:errcheck

	_, err := buildOutputConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output mode")
}

// The threshold read by the generate command honors the flag-key-first
// fallback chain: flag, then generate.threshold, then the default of 2.
func TestGlobalThreshold_Fallback(t *testing.T) {
	resetKoanf()
	assert.Equal(t, 2, globalThreshold())

	require.NoError(t, k.Set("generate.threshold", 5))
	assert.Equal(t, 5, globalThreshold())

	// The flat "threshold" key is where posflag lands the --threshold flag.
	require.NoError(t, k.Set("threshold", 7))
	assert.Equal(t, 7, globalThreshold())
}

func TestScanPatterns_Defaults(t *testing.T) {
	resetKoanf()

	assert.Equal(t, []string{"**/*.html", "**/*.templ", "**/*.go"}, scanPatterns())
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Every key the default config advertises must be one the CLI reads.
	data, err := os.ReadFile(".stylegen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "output:")
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "threshold: 2")

	resetKoanf()
	require.NoError(t, loadConfigFromPath(".stylegen.yaml"))
	assert.Equal(t, 2, globalThreshold())
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".stylegen.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
