package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// testDeps returns dependencies writing to buffers with an empty environment.
func testDeps(env map[string]string) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return env[k] },
		Environ: func() []string {
			out := make([]string, 0, len(env))
			for k, v := range env {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return deps, &stdout, &stderr
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestDefaultDeps(t *testing.T) {
	t.Parallel()

	deps := DefaultDeps()
	if deps.Stdout != os.Stdout || deps.Stderr != os.Stderr {
		t.Error("DefaultDeps() should use process stdout/stderr")
	}
	if deps.Getenv == nil || deps.Environ == nil {
		t.Error("DefaultDeps() should set environment accessors")
	}
}
