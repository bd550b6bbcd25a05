package sitefix

import (
	"fmt"
	"os"

	"github.com/alnah/go-sitefix/internal/fileutil"
)

// CheckFile reads path and reports what ProcessFile would change,
// without writing anything.
func CheckFile(path string) (Result, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	return Transform(string(data)), nil
}

// ProcessFile normalizes the code blocks of path and overwrites it in place.
// The file must be readable and writable. No backup is kept. A file with
// nothing to normalize is left untouched on disk.
func ProcessFile(path string) (Result, error) {
	result, err := CheckFile(path)
	if err != nil {
		return Result{}, err
	}

	if err := fileutil.CheckWritable(path); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	if !result.Changed() {
		return result, nil
	}

	if err := fileutil.WriteFileAtomic(path, []byte(result.Output)); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	return result, nil
}

// ProcessFiles runs ProcessFile on each path in order and stops at the first
// error. onDone, if non-nil, is called after each file succeeds.
func ProcessFiles(paths []string, onDone func(path string, r Result)) error {
	if len(paths) == 0 {
		return ErrNoFiles
	}

	for _, path := range paths {
		result, err := ProcessFile(path)
		if err != nil {
			return err
		}
		if onDone != nil {
			onDone(path, result)
		}
	}
	return nil
}
