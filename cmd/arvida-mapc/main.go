// Package main implements the schema-side command line tool of the RDF
// mapping compiler: it validates a run configuration plus an analyzer
// annotation dump and prints the resulting compile plan.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/annotation"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/compiler"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/config"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "arvida-mapc"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()

	if cliCfg.ShowVersion {
		fmt.Printf("%s %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}
	if err := validateFlags(cliCfg); err != nil {
		return err
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	cfg, err := config.Load(cliCfg.ConfigPath)
	if err != nil {
		return err
	}
	logger.Info("Configuration loaded",
		"base_uri", cfg.BaseURI,
		"dispatch", cfg.Dispatch,
		"prefixes", len(cfg.Prefixes))

	data, err := os.ReadFile(cliCfg.DumpPath)
	if err != nil {
		return err
	}
	reg, err := annotation.Load(data, cfg.Namespaces(), nil)
	if err != nil {
		return err
	}
	logger.Info("Annotation dump bound", "classes", len(reg.Names()))

	order, err := compiler.Order(reg)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		fmt.Println("OK")
		return nil
	}

	fmt.Printf("dispatch: %s\n", cfg.Dispatch)
	fmt.Println("compile order:")
	for i, name := range order {
		cs, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %2d. %s (%d bindings, %d bases)\n", i+1, name, len(cs.Bindings), len(cs.Bases))
	}
	return nil
}
