package service

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestFetch wraps every failure to obtain a usable manifest:
	// transport errors, non-2xx responses, malformed lines and required
	// bundles the server does not list.
	ErrManifestFetch = errors.New("manifest fetch failed")

	// ErrMalformedManifest is wrapped (together with ErrManifestFetch) when
	// a manifest line is not "<name>:<checksum>".
	ErrMalformedManifest = errors.New("malformed manifest line")

	// ErrIntegrity is matched by every *IntegrityError.
	ErrIntegrity = errors.New("bundle integrity check failed")

	ErrConfigFetch    = errors.New("config fetch failed")
	ErrBundleDownload = errors.New("bundle download failed")
	ErrWrongPassword  = errors.New("wrong username or password")

	ErrNoBundlesConfigured = errors.New("no required bundles configured")

	// ErrInvalidSyncRequest wraps a validators error for a server key,
	// credentials or bundle list that cannot be synchronized.
	ErrInvalidSyncRequest = errors.New("invalid sync request")
)

// IntegrityError reports a bundle whose downloaded content does not hash to
// the checksum published in the manifest.
type IntegrityError struct {
	Bundle   string
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("bundle %s: checksum %s does not match manifest %s", e.Bundle, e.Actual, e.Expected)
}

// Is makes errors.Is(err, ErrIntegrity) true for any *IntegrityError.
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}
