// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Manifest maps a bundle name to the hex MD5 checksum the server publishes
// for it. It is fetched on every sync attempt and never persisted.
type Manifest map[string]string

// Checksum returns the published checksum for name and whether it is listed.
func (m Manifest) Checksum(name string) (string, bool) {
	sum, ok := m[name]
	return sum, ok
}

// SyncResult describes the verified local bundle set after a successful
// synchronization.
type SyncResult struct {
	// AttemptID correlates log lines of one sync attempt.
	AttemptID string

	// ExecutablePath is the local path of the designated executable bundle.
	ExecutablePath string

	// SearchPaths lists every verified bundle path in required-bundle order.
	// They are prepended to the module search path on launch.
	SearchPaths []string

	// Downloaded names the bundles that were fetched during this attempt.
	// Cache hits are not listed.
	Downloaded []string
}

// Credentials are supplied by the operator for a single sync attempt.
type Credentials struct {
	Username string
	Password string
}
