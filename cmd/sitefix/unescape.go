package main

import (
	"errors"
	"fmt"
	"os"

	sitefix "github.com/alnah/go-sitefix"
	"github.com/alnah/go-sitefix/internal/hints"
	flag "github.com/spf13/pflag"
)

// ErrNoInput is returned when unescape receives no paths.
var ErrNoInput = errors.New("no input files specified")

// unescapeSummary tallies the outcome of an unescape run.
type unescapeSummary struct {
	Files        int
	Changed      int
	Replacements int
}

func (s *unescapeSummary) add(r sitefix.Result) {
	s.Files++
	s.Replacements += r.Replacements
	if r.Changed() {
		s.Changed++
	}
}

// runUnescape normalizes code blocks in every file named by args, in order.
// The first error stops the run.
func runUnescape(args []string, deps *Dependencies) error {
	flags, positional, err := parseUnescapeFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUnescapeUsage(deps.Stdout)
		return nil
	}
	if err != nil {
		printUnescapeUsage(deps.Stderr)
		return err
	}

	if len(positional) == 0 {
		printUnescapeUsage(deps.Stderr)
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForNoFiles())
	}

	var summary unescapeSummary
	report := func(path string, r sitefix.Result) {
		summary.add(r)
		reportFile(deps, flags, path, r)
	}

	found := 0
	for _, arg := range positional {
		files, err := expandInput(arg)
		if err != nil {
			return withIOHint(err)
		}
		found += len(files)
		if len(files) == 0 {
			if !flags.common.quiet {
				fmt.Fprintf(deps.Stderr, "warning: no HTML files in %s\n", arg)
			}
			continue
		}

		if flags.dryRun {
			err = checkFiles(files, report)
		} else {
			err = sitefix.ProcessFiles(files, report)
		}
		if err != nil {
			return withIOHint(err)
		}
	}

	if found == 0 {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForNoFiles())
	}

	if !flags.common.quiet && summary.Files > 1 {
		verb := "normalized"
		if flags.dryRun {
			verb = "would normalize"
		}
		fmt.Fprintf(deps.Stdout, "\n%d files, %d changed, %d entities %s\n",
			summary.Files, summary.Changed, summary.Replacements, verb)
	}
	return nil
}

// checkFiles is the dry-run counterpart of sitefix.ProcessFiles.
func checkFiles(files []string, onDone func(string, sitefix.Result)) error {
	for _, path := range files {
		r, err := sitefix.CheckFile(path)
		if err != nil {
			return err
		}
		onDone(path, r)
	}
	return nil
}

// reportFile prints one line per changed file, and per unchanged file when verbose.
func reportFile(deps *Dependencies, flags *unescapeFlags, path string, r sitefix.Result) {
	if flags.common.quiet {
		return
	}

	switch {
	case r.Changed() && flags.dryRun:
		fmt.Fprintf(deps.Stdout, "Would normalize %s (%d entities in %d blocks)\n", path, r.Replacements, r.Blocks)
	case r.Changed():
		fmt.Fprintf(deps.Stdout, "Normalized %s (%d entities in %d blocks)\n", path, r.Replacements, r.Blocks)
	case flags.common.verbose:
		fmt.Fprintf(deps.Stdout, "Unchanged %s (%d blocks)\n", path, r.Blocks)
	}
}

// withIOHint appends a hint matching the underlying file error.
func withIOHint(err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w%s", err, hints.ForNotFound())
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w%s", err, hints.ForPermission())
	}
	return err
}
