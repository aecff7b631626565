// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// bundle publisher handlers and by the sync client when it interprets the
// publisher's error responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place keeps the wording identical on both ends.
package app

const (
	// MsgInvalidLoginPassword is returned when the Basic Auth credentials are
	// missing or do not match the configured user.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgBundleNotFound is returned when /eggs/{name} names a bundle that is
	// not in the published directory.
	MsgBundleNotFound = "bundle was not found"

	// MsgInvalidBundleName is returned when the requested bundle name is not
	// a single path element.
	MsgInvalidBundleName = "invalid bundle name"

	// MsgConfigNotAvailable is returned by /login when the publisher has no
	// client configuration to hand out.
	MsgConfigNotAvailable = "client config is not available"
)
