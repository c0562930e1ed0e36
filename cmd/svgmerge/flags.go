package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// CLI commands.
const (
	commandMerge    = "merge"
	commandPrefetch = "prefetch"
	commandVersion  = "version"
	commandHelp     = "help"
)

// ErrUnknownCommand is returned for an unrecognized first argument.
var ErrUnknownCommand = errors.New("unknown command")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// mergeFlags holds all flags for the merge and prefetch commands.
type mergeFlags struct {
	common   commonFlags
	output   string
	cacheDir string
	workDir  string
	timeout  time.Duration
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-element progress")
}

// addMergeFlags adds merge/prefetch flags to a FlagSet.
func addMergeFlags(fs *flag.FlagSet, f *mergeFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output SVG path (default merged.svg)")
	fs.StringVar(&f.cacheDir, "cache-dir", "", "directory holding prefetched remote content")
	fs.StringVar(&f.workDir, "workdir", "", "base directory for relative file references")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-element remote fetch timeout (default 10s)")
}

// parseFlags parses os.Args into a command and its flags.
// Returns the parsed flags, the command, and the remaining positional args.
func parseFlags(args []string) (*mergeFlags, string, []string, error) {
	flags := &mergeFlags{}

	if len(args) < 2 {
		return flags, commandHelp, nil, nil
	}

	command := args[1]
	switch command {
	case commandVersion, commandHelp, "--help", "-h":
		if command != commandVersion {
			command = commandHelp
		}
		return flags, command, nil, nil
	case commandMerge, commandPrefetch:
	default:
		if command == "" || command[0] == '-' {
			return flags, "", nil, fmt.Errorf("%w: %q (expected merge or prefetch)", ErrUnknownCommand, command)
		}
		// Bare layout path: treat as merge for convenience.
		command = commandMerge
		args = append([]string{args[0], commandMerge}, args[1:]...)
	}

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	addCommonFlags(fs, &flags.common)
	addMergeFlags(fs, flags)
	if err := fs.Parse(args[2:]); err != nil {
		return flags, command, nil, err
	}
	return flags, command, fs.Args(), nil
}

// printUsage writes the top-level usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `svgmerge composes SVG fragments onto a single background canvas.

Usage:
  svgmerge merge <layout.json|layout.yaml> [flags]
  svgmerge prefetch <layout.json|layout.yaml> [flags]
  svgmerge version

Flags:
  -o, --output path      output SVG path (merge only, default merged.svg)
      --cache-dir dir    directory for prefetched remote content
      --workdir dir      base directory for relative file references
      --timeout dur      per-element remote fetch timeout (default 10s)
  -c, --config name      config file name or path
  -q, --quiet            only show errors
  -v, --verbose          show per-element progress
`)
}
