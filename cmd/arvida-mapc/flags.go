package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	DumpPath    string
	LogLevel    string
	LogFormat   string
	Validate    bool
	ShowVersion bool
	ShowHelp    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("ARVIDA_CONFIG", "configs/run.json"),
		"Path to run configuration file (env: ARVIDA_CONFIG)")

	flag.StringVar(&cfg.ConfigPath, "c",
		getEnv("ARVIDA_CONFIG", "configs/run.json"),
		"Path to run configuration file (env: ARVIDA_CONFIG)")

	flag.StringVar(&cfg.DumpPath, "dump",
		getEnv("ARVIDA_DUMP", ""),
		"Path to the analyzer annotation dump (env: ARVIDA_DUMP)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("ARVIDA_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: ARVIDA_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("ARVIDA_LOG_FORMAT", "text"),
		"Log format: json, text (env: ARVIDA_LOG_FORMAT)")

	flag.BoolVar(&cfg.Validate, "validate", false,
		"Validate configuration and annotation dump, then exit")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	flag.Usage = printDetailedHelp
	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
	}
	if cfg.DumpPath == "" {
		return fmt.Errorf("annotation dump path is required (-dump)")
	}
	if _, err := os.Stat(cfg.DumpPath); err != nil {
		return fmt.Errorf("annotation dump not found: %s", cfg.DumpPath)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - RDF mapping schema checker

Validates a run configuration and an analyzer annotation dump, and prints
the compile plan (class order and dispatch strategy) without compiling.
Embedding applications attach accessor functions in code and drive the
compiler package directly; this tool covers the schema-side checks.

Usage:
  %s [flags]

Flags:
`, appName, appName)
	flag.PrintDefaults()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
