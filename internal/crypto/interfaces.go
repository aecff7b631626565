// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential encodings shared by the sync client
// and the bundle publisher.
//
// Scheme:
//
//	transmitted = EncodePassword(scheme, password)   (client, per request)
//	stored      = HashPassword(transmitted, cost)    (publisher setup, once)
//	ok          = ComparePassword(stored, received)  (publisher, per request)
//
// The md5 scheme only keeps the clear text password off the wire. The
// transmitted value is a replayable secret, which is why the publisher keeps
// a bcrypt hash of it rather than the value itself.
package crypto
