// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the sync client to talk to a
// bundle server.
//
// The primary abstraction is [BundleServerAdapter], which decouples the sync
// service from HTTP. An adapter is bound to one server and one set of
// credentials; [Factory] produces a fresh adapter for every sync attempt so
// credentials never outlive the attempt that used them.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/stoq-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bundle_adapter_mock.go -package=mock

// BundleServerAdapter defines authenticated communication with one bundle
// server. Every request carries the credentials the adapter was built with.
type BundleServerAdapter interface {
	// FetchConfig downloads the client configuration served at /login and
	// returns the body verbatim.
	FetchConfig(ctx context.Context) ([]byte, error)

	// FetchManifest downloads the raw /md5sum listing. Parsing is left to the
	// caller.
	FetchManifest(ctx context.Context) ([]byte, error)

	// FetchBundle opens a streaming download of /eggs/<name>. The caller must
	// close the returned reader.
	FetchBundle(ctx context.Context, name string) (io.ReadCloser, error)
}

// Factory builds a [BundleServerAdapter] for a single sync attempt.
type Factory func(server models.ServerKey, creds models.Credentials) (BundleServerAdapter, error)
