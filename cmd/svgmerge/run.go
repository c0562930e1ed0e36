package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	svgmerge "github.com/alnah/go-svgmerge"
	"github.com/alnah/go-svgmerge/internal/config"
)

// Sentinel errors for CLI operations.
var ErrNoLayout = errors.New("no layout file specified")

// defaultOutputPath is used when neither flag nor config name an output.
const defaultOutputPath = "merged.svg"

// runMerge merges a layout into a single SVG document.
func runMerge(ctx context.Context, args []string, flags *mergeFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	layoutPath, err := resolveLayoutPath(args, cfg)
	if err != nil {
		return err
	}
	outputPath := resolveOutputPath(flags.output, cfg)

	svc := svgmerge.New(serviceOptions(flags, cfg)...)
	result, err := svc.MergeFile(ctx, layoutPath, outputPath)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Printf("Created %s (%d element(s), %d skipped)\n",
			outputPath, result.Rendered, len(result.Warnings))
	}
	return nil
}

// runPrefetch fetches every remote reference in a layout into the cache.
func runPrefetch(ctx context.Context, args []string, flags *mergeFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	layoutPath, err := resolveLayoutPath(args, cfg)
	if err != nil {
		return err
	}

	layout, err := svgmerge.LoadLayout(layoutPath)
	if err != nil {
		return err
	}

	svc := svgmerge.New(serviceOptions(flags, cfg)...)
	result, err := svc.Prefetch(ctx, layout)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Printf("Cached %d remote reference(s), %d failed\n",
			len(result.Fetched), len(result.Warnings))
	}
	return nil
}

// loadConfig loads the optional config file named by --config.
func loadConfig(flags *mergeFlags) (*config.Config, error) {
	if flags.common.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(flags.common.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// serviceOptions translates flags and config into service options.
// Flags win over config, config over built-in defaults.
func serviceOptions(flags *mergeFlags, cfg *config.Config) []svgmerge.Option {
	var opts []svgmerge.Option

	switch {
	case flags.timeout > 0:
		opts = append(opts, svgmerge.WithFetchTimeout(flags.timeout))
	case cfg.Fetch.TimeoutSeconds > 0:
		opts = append(opts, svgmerge.WithFetchTimeout(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second))
	}

	switch {
	case flags.cacheDir != "":
		opts = append(opts, svgmerge.WithCacheDir(flags.cacheDir))
	case cfg.Cache.Dir != "":
		opts = append(opts, svgmerge.WithCacheDir(cfg.Cache.Dir))
	}

	switch {
	case flags.workDir != "":
		opts = append(opts, svgmerge.WithWorkDir(flags.workDir))
	case cfg.Layout.WorkDir != "":
		opts = append(opts, svgmerge.WithWorkDir(cfg.Layout.WorkDir))
	}

	if flags.common.quiet {
		opts = append(opts, svgmerge.WithLogger(func(string, ...any) {}))
	} else if !flags.common.verbose {
		// Default verbosity: warnings only, no per-element progress.
		opts = append(opts, svgmerge.WithLogger(warningsOnlyLogger()))
	}

	return opts
}

// warningsOnlyLogger keeps warning lines and drops per-element progress.
func warningsOnlyLogger() func(string, ...any) {
	return func(format string, args ...any) {
		if strings.HasPrefix(format, "warning:") {
			fmt.Fprintf(os.Stderr, format, args...)
		}
	}
}

// resolveLayoutPath picks the layout file from args or config.
func resolveLayoutPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Layout.DefaultPath != "" {
		return cfg.Layout.DefaultPath, nil
	}
	return "", ErrNoLayout
}

// resolveOutputPath picks the output file from the flag, config, or default.
func resolveOutputPath(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Output.DefaultPath != "" {
		return cfg.Output.DefaultPath
	}
	return defaultOutputPath
}
