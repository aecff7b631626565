package store

import "errors"

// Sentinel errors returned by the file stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBundleNotFound is returned when a requested bundle does not exist in
	// the published bundle directory.
	ErrBundleNotFound = errors.New("bundle was not found")

	// ErrInvalidBundleName is returned for names that would escape the bundle
	// directory (empty, ".", "..", or containing a path separator).
	ErrInvalidBundleName = errors.New("invalid bundle name")

	// ErrConfigNotConfigured is returned by the publisher when no /login
	// payload file was configured.
	ErrConfigNotConfigured = errors.New("config file is not configured")

	// ErrWritingFile is returned when a file could not be written or moved
	// into place.
	ErrWritingFile = errors.New("failed to write file")
)
