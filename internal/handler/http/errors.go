// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the Basic authentication middleware. Callers can
// match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is logged when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is logged when the "Authorization" header
	// is present but is not a well-formed Basic credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidCredentials is logged when the username or password does not
	// match the configured user.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
