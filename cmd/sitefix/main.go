package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-sitefix/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var (
	ErrNoCommand      = errors.New("no command specified")
	ErrUnknownCommand = errors.New("unknown command")
)

// commands lists the subcommand names accepted as first argument.
var commands = []string{"unescape", "config", "version", "help"}

func main() {
	os.Exit(runMain(os.Args, DefaultDeps()))
}

// runMain runs the CLI and returns the process exit code.
func runMain(args []string, deps *Dependencies) int {
	if err := run(args, deps); err != nil {
		fmt.Fprintln(deps.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run dispatches args (including the program name) to a command.
func run(args []string, deps *Dependencies) error {
	warnUnknownEnvVars(deps)

	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ErrNoCommand
	}

	name, rest := args[1], args[2:]
	switch name {
	case "unescape":
		return runUnescape(rest, deps)
	case "config":
		return runConfig(rest, deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "go-sitefix %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(rest, deps)
	}

	// Shortcut: sitefix page.html ... behaves as sitefix unescape page.html ...
	if looksLikeInput(name) {
		return runUnescape(args[1:], deps)
	}

	printUsage(deps.Stderr)
	return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	for _, c := range commands {
		if arg == c {
			return true
		}
	}
	return false
}

// looksLikeInput reports whether arg is an HTML file path or an existing
// directory, so it can be passed to unescape without naming the command.
func looksLikeInput(arg string) bool {
	if isCommand(arg) || strings.HasPrefix(arg, "-") {
		return false
	}
	return fileutil.IsHTMLFile(arg) || fileutil.DirExists(arg)
}
