package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	stylegen "github.com/yacobolo/stylegen"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".stylegen.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STYLEGEN_* prefix)
	if err := k.Load(env.Provider("STYLEGEN_", ".", func(s string) string {
		// STYLEGEN_OUTPUT_STATIC_DIR -> output.static.dir
		// STYLEGEN_GENERATE_THRESHOLD -> generate.threshold
		// STYLEGEN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLEGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildOutputConfig constructs the library's OutputConfig from koanf state.
func buildOutputConfig() (stylegen.OutputConfig, error) {
	mode := getStringWithFallback("mode", "output.mode", "static")

	config := stylegen.OutputConfig{
		StaticDir: getStringWithFallback("static-dir", "output.static.dir", "dist"),
		ServerDir: getStringWithFallback("server-dir", "output.server.dir", "static"),
	}

	switch mode {
	case "static":
		config.Mode = stylegen.ModeStatic
	case "server":
		config.Mode = stylegen.ModeServer
	default:
		return config, fmt.Errorf("unknown output mode %q (want static or server)", mode)
	}

	return config, nil
}

// globalThreshold returns the number of pages a class must appear on before
// it is promoted to the global stylesheet.
func globalThreshold() int {
	return getIntWithFallback("threshold", "generate.threshold", 2)
}

// scanPatterns returns the safelist scan globs: flag key first, then config
// key, then defaults.
func scanPatterns() []string {
	if patterns := k.Strings("scan"); len(patterns) > 0 {
		return patterns
	}
	if patterns := k.Strings("generate.scan"); len(patterns) > 0 {
		return patterns
	}
	return []string{
		"**/*.html",
		"**/*.templ",
		"**/*.go",
	}
}

// buildLogger returns a zap logger honoring verbose/quiet settings.
func buildLogger() (*zap.Logger, error) {
	if getBoolWithFallback("quiet", "quiet", false) {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	if getBoolWithFallback("verbose", "verbose", false) {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
