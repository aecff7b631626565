// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/stoq-client/internal/adapter"
	"github.com/MKhiriev/stoq-client/internal/app"
	"github.com/MKhiriev/stoq-client/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error, keeping the transport error in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrWrongPassword, err)

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgBundleNotFound {
			return fmt.Errorf("%w: %w", store.ErrBundleNotFound, err)
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "not found: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
