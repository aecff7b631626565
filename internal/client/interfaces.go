// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/stoq-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Picker lets the operator choose a server and synchronize against it.
type Picker interface {
	Pick(ctx context.Context) (models.SyncResult, error)
}

// Launcher starts the synchronized application and waits for it.
type Launcher interface {
	Launch(ctx context.Context, result models.SyncResult) error
}
