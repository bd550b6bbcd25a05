package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitefix <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  unescape   Normalize escaped entities in <pre> code blocks")
	fmt.Fprintln(w, "  config     Print or check the site configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HTML files and directories may be passed without a command:")
	fmt.Fprintln(w, "  sitefix output/index.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitefix help <command>' for details on a specific command.")
}

// printUnescapeUsage prints usage for the unescape command.
func printUnescapeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitefix unescape <path>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite &amp;lt;, &amp;gt; and &amp;amp; spellings (including the")
	fmt.Fprintln(w, "span-wrapped forms left by syntax highlighters) to &lt;, &gt; and &amp;")
	fmt.Fprintln(w, "inside <pre> blocks. Files are overwritten in place, in argument order.")
	fmt.Fprintln(w, "The first error stops the run.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path    HTML file, or directory scanned for .html/.htm files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -n, --dry-run             Report changes without writing")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Also list unchanged files")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitefix config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the resolved site configuration as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (env: SITEFIX_CONFIG)")
	fmt.Fprintln(w, "      --check               Validate only")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show the config source and derived values")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) error {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return nil
	}

	switch args[0] {
	case "unescape":
		printUnescapeUsage(deps.Stdout)
	case "config":
		printConfigUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: sitefix version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: sitefix help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
