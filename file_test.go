package sitefix

// Notes:
// - ProcessFile: we test in-place rewriting, untouched files when nothing
//   changes, preserved permissions, symlinked inputs, and read/write failures.
// - Permission tests are skipped when running as root, since root bypasses
//   file mode checks.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestFile(t *testing.T, dir, name, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestProcessFile - In-place rewrite
// ---------------------------------------------------------------------------

func TestProcessFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "index.html",
		`<html><body><p>&amp;lt;</p><pre>&amp;</span>lt<span class="p">;doc&amp;gt;</pre></body></html>`, 0o644)

	result, err := ProcessFile(path)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}
	if result.Replacements != 2 {
		t.Errorf("Replacements = %d, want 2", result.Replacements)
	}

	want := `<html><body><p>&amp;lt;</p><pre>&lt;doc&gt;</pre></body></html>`
	if got := readTestFile(t, path); got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestProcessFile_NoChangesLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "<p>&amp;lt; nothing in a code block</p><pre>&lt;ok&gt;</pre>"
	path := writeTestFile(t, dir, "plain.html", content, 0o644)

	past := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	result, err := ProcessFile(path)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}
	if result.Changed() {
		t.Errorf("Changed() = true, want false")
	}
	if got := readTestFile(t, path); got != content {
		t.Errorf("file content = %q, want %q", got, content)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.ModTime().Equal(past) {
		t.Errorf("ModTime = %v, want %v (file should not be rewritten)", info.ModTime(), past)
	}
}

func TestProcessFile_PreservesMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "mode.html", "<pre>&amp;amp;</pre>", 0o600)
	// WriteFile is subject to umask
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatalf("Chmod: %v", err)
	}

	if _, err := ProcessFile(path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %o, want %o", info.Mode().Perm(), 0o600)
	}
	if got := readTestFile(t, path); got != "<pre>&amp;</pre>" {
		t.Errorf("file content = %q", got)
	}
}

func TestProcessFile_Symlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := writeTestFile(t, dir, "real.html", "<pre>&amp;lt;</pre>", 0o644)
	link := filepath.Join(dir, "link.html")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if _, err := ProcessFile(link); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("link was replaced by a regular file")
	}
	if got := readTestFile(t, target); got != "<pre>&lt;</pre>" {
		t.Errorf("target content = %q, want normalized", got)
	}
}

func TestProcessFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := ProcessFile(filepath.Join(t.TempDir(), "missing.html"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrReadFile) {
		t.Errorf("error = %v, want ErrReadFile", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestProcessFile_Directory(t *testing.T) {
	t.Parallel()

	_, err := ProcessFile(t.TempDir())
	if !errors.Is(err, ErrReadFile) {
		t.Errorf("error = %v, want ErrReadFile", err)
	}
}

func TestProcessFile_ReadOnly(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}

	dir := t.TempDir()
	path := writeTestFile(t, dir, "ro.html", "<pre>&amp;lt;</pre>", 0o444)

	_, err := ProcessFile(path)
	if !errors.Is(err, ErrWriteFile) {
		t.Fatalf("error = %v, want ErrWriteFile", err)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("error = %v, want os.ErrPermission in chain", err)
	}
	if got := readTestFile(t, path); got != "<pre>&amp;lt;</pre>" {
		t.Errorf("read-only file was modified: %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestCheckFile - Dry run
// ---------------------------------------------------------------------------

func TestCheckFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "<pre>&amp;gt;</pre>"
	path := writeTestFile(t, dir, "check.html", content, 0o644)

	result, err := CheckFile(path)
	if err != nil {
		t.Fatalf("CheckFile() error = %v", err)
	}
	if result.Output != "<pre>&gt;</pre>" {
		t.Errorf("Output = %q", result.Output)
	}
	if got := readTestFile(t, path); got != content {
		t.Errorf("CheckFile modified the file: %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestProcessFiles - Ordered batch, stop at first error
// ---------------------------------------------------------------------------

func TestProcessFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.html", "<pre>&amp;lt;</pre>", 0o644)
	b := writeTestFile(t, dir, "b.html", "<pre>&amp;gt;</pre>", 0o644)

	var done []string
	err := ProcessFiles([]string{a, b}, func(path string, r Result) {
		done = append(done, path)
	})
	if err != nil {
		t.Fatalf("ProcessFiles() error = %v", err)
	}
	if len(done) != 2 || done[0] != a || done[1] != b {
		t.Errorf("callback order = %v, want [%s %s]", done, a, b)
	}
	if got := readTestFile(t, a); got != "<pre>&lt;</pre>" {
		t.Errorf("a.html = %q", got)
	}
	if got := readTestFile(t, b); got != "<pre>&gt;</pre>" {
		t.Errorf("b.html = %q", got)
	}
}

func TestProcessFiles_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeTestFile(t, dir, "first.html", "<pre>&amp;lt;</pre>", 0o644)
	missing := filepath.Join(dir, "missing.html")
	last := writeTestFile(t, dir, "last.html", "<pre>&amp;lt;</pre>", 0o644)

	var done []string
	err := ProcessFiles([]string{first, missing, last}, func(path string, _ Result) {
		done = append(done, path)
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want os.ErrNotExist", err)
	}
	if len(done) != 1 || done[0] != first {
		t.Errorf("processed = %v, want only %s", done, first)
	}
	if got := readTestFile(t, last); got != "<pre>&amp;lt;</pre>" {
		t.Errorf("file after the failure was modified: %q", got)
	}
}

func TestProcessFiles_NoFiles(t *testing.T) {
	t.Parallel()

	if err := ProcessFiles(nil, nil); !errors.Is(err, ErrNoFiles) {
		t.Errorf("error = %v, want ErrNoFiles", err)
	}
}
