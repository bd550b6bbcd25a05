package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags wraps flag parsing failures.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// unescapeFlags holds all flags for the unescape command.
type unescapeFlags struct {
	common commonFlags
	dryRun bool
}

// configFlags holds all flags for the config command.
type configFlags struct {
	common commonFlags
	config string
	check  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "report every file, including unchanged ones")
}

// newFlagSet returns a FlagSet that reports errors to the caller only.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseFlags wraps parse errors other than --help in ErrInvalidFlags.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}

// parseUnescapeFlags parses unescape command flags and returns positional args.
func parseUnescapeFlags(args []string) (*unescapeFlags, []string, error) {
	fs := newFlagSet("unescape")
	f := &unescapeFlags{}

	addCommonFlags(fs, &f.common)
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report changes without writing files")

	if err := parseFlags(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags and returns positional args.
func parseConfigFlags(args []string) (*configFlags, []string, error) {
	fs := newFlagSet("config")
	f := &configFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.check, "check", false, "validate only, do not print")

	if err := parseFlags(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
