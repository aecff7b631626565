package store

import (
	"io"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// BundleCache is the local directory of previously downloaded bundles. Each
// file is named by its bundle identifier.
type BundleCache interface {
	// Path returns the local path of the named bundle whether or not it
	// exists yet.
	Path(name string) string

	// Checksum returns the hex MD5 of the cached bundle. ok is false when the
	// bundle is not cached.
	Checksum(name string) (sum string, ok bool, err error)

	// Write replaces the cached bundle with the content of r.
	Write(name string, r io.Reader) error
}

// ConfigFileStore is the single local configuration file fetched from the
// server on first sync.
type ConfigFileStore interface {
	// Exists reports whether the configuration file is already present.
	Exists() (bool, error)

	// Save stores the content of r verbatim as the configuration file.
	Save(r io.Reader) error
}
