package sitefix

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoFiles   = errors.New("at least one file is required")
	ErrReadFile  = errors.New("failed to read file")
	ErrWriteFile = errors.New("failed to write file")
)
