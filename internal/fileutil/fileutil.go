// Package fileutil provides file and path utility functions.
package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// ErrIsDirectory is returned when a regular file is required.
var ErrIsDirectory = errors.New("path is a directory")

// htmlExtensions lists the extensions treated as generated HTML pages.
var htmlExtensions = []string{".html", ".htm"}

// WriteFileAtomic replaces the contents of path with data.
// Symlinks are resolved first, so the link stays and its target is replaced.
// The data is written to a temporary file in the target's directory and
// renamed over it, so readers never observe a partial file. The permission
// bits of an existing target are kept.
func WriteFileAtomic(path string, data []byte) error {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}

	info, statErr := os.Stat(target)

	if err := atomic.WriteFile(target, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("replacing %s: %w", target, err)
	}

	if statErr == nil {
		if err := os.Chmod(target, info.Mode().Perm()); err != nil {
			return fmt.Errorf("restoring mode of %s: %w", target, err)
		}
	}
	return nil
}

// resolveTarget returns the file a write to path should replace.
// A path that does not exist yet is its own target.
func resolveTarget(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, os.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return target, nil
}

// CheckWritable returns an error if path cannot be opened for writing.
// The file is opened without truncation and closed immediately.
func CheckWritable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0) // #nosec G304 -- path is user-provided
	if err != nil {
		return err
	}
	return f.Close()
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsHTMLFile returns true if the path has an HTML extension (case-insensitive).
func IsHTMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range htmlExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "sitefix" -> false (name)
//   - "./sitefix.yaml" -> true (relative path)
//   - "/etc/sitefix.yaml" -> true (absolute)
//   - "C:\site\sitefix.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
