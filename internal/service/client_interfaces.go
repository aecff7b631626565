package service

import (
	"context"

	"github.com/MKhiriev/stoq-client/models"
)

// ClientSyncService makes the local bundle cache match a server's manifest.
type ClientSyncService interface {
	// Synchronize authenticates against server with creds, fetches the
	// client configuration if it is not stored yet, fetches the manifest and
	// brings every required bundle up to date, strictly one after another.
	//
	// Failures are reported as wrapped ErrManifestFetch, *IntegrityError
	// (matching ErrIntegrity), ErrConfigFetch, ErrBundleDownload or
	// ErrWrongPassword. Nothing is retried.
	Synchronize(ctx context.Context, server models.ServerKey, creds models.Credentials) (models.SyncResult, error)
}
