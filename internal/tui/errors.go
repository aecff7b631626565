// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/stoq-client/internal/service"
)

// humanizeSyncError renders a sync failure for the operator. The picker stays
// open after it so the operator can retry.
func humanizeSyncError(err error) string {
	if err == nil {
		return ""
	}

	var integrityErr *service.IntegrityError
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong username or password"
	case errors.As(err, &integrityErr):
		return fmt.Sprintf("Bundle %s is corrupted on the server (checksum %s, expected %s)",
			integrityErr.Bundle, integrityErr.Actual, integrityErr.Expected)
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or server unreachable"
	}

	return err.Error()
}
