package service

import (
	"context"
	"io"
	"time"
)

// BundleService serves the publisher side of the sync protocol.
type BundleService interface {
	// Listing returns the current manifest in the /md5sum wire format.
	Listing(ctx context.Context) ([]byte, error)

	// OpenBundle returns the named bundle for streaming. The caller closes it.
	OpenBundle(ctx context.Context, name string) (io.ReadSeekCloser, time.Time, error)

	// LoginConfig returns the configuration payload handed to clients on
	// first sync.
	LoginConfig(ctx context.Context) ([]byte, error)
}
