// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// IsRoot reports whether the process runs with an effective UID of 0.
// Replaced in tests.
var IsRoot = func() bool {
	return os.Geteuid() == 0
}

// ForNotFound returns a hint for missing input paths.
func ForNotFound() string {
	return format("check the path; directories are scanned for .html and .htm files")
}

// ForPermission returns hints for files that cannot be read or replaced.
// Suggests re-running with write access unless already root.
func ForPermission() string {
	hints := []string{"the file must be readable and writable"}
	if !IsRoot() {
		hints = append(hints, "check ownership of the generated output directory")
	}
	return formatHints(hints)
}

// ForNoFiles returns a hint for invocations without input.
func ForNoFiles() string {
	return format("pass one or more .html files or a directory, e.g. sitefix unescape output/")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-sitefix/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or set SITEFIX_CONFIG"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-sitefix") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForBootswatch returns the list of accepted Bootswatch theme names.
func ForBootswatch(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
