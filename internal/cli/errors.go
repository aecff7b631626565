package cli

import "errors"

var (
	// ErrCommandFailed is returned when the backup tool exits non-zero or
	// cannot be started. Its output has already been forwarded.
	ErrCommandFailed = errors.New("backup tool command failed")

	// ErrMissingServer is returned by sync when --server is not given.
	ErrMissingServer = errors.New("--server is required")

	// ErrMissingCredentials is returned by sync when the username is empty
	// or no password could be obtained.
	ErrMissingCredentials = errors.New("--username and a password are required")
)
