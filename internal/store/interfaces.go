package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/stoq-client/models"
)

// BundleSource is the publisher's read-only view of the bundles it serves.
type BundleSource interface {
	// Manifest computes the current name → checksum mapping of every
	// published bundle.
	Manifest(ctx context.Context) (models.Manifest, error)

	// Open returns the named bundle's content and modification time.
	// Returns ErrBundleNotFound for unknown names and ErrInvalidBundleName for
	// names that are not a single path element.
	Open(name string) (io.ReadSeekCloser, time.Time, error)

	// Config returns the payload served at /login.
	Config() ([]byte, error)
}
