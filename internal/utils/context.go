// Package utils provides general-purpose helper utilities used across the
// client and the publisher: context keys, checksums and id generation.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AttemptIDCtxKey is the key used to store the sync attempt id in the
// context. The HTTP adapter forwards it as the X-Trace-ID header.
var AttemptIDCtxKey = contextKey("attemptID")

// WithAttemptID returns a copy of ctx carrying attemptID.
func WithAttemptID(ctx context.Context, attemptID string) context.Context {
	return context.WithValue(ctx, AttemptIDCtxKey, attemptID)
}

// GetAttemptIDFromContext retrieves the sync attempt id from the context.
//
// Returns ok == false when the value is missing or not a string.
func GetAttemptIDFromContext(ctx context.Context) (string, bool) {
	attemptID, ok := ctx.Value(AttemptIDCtxKey).(string)
	return attemptID, ok && attemptID != ""
}

// NewID returns a time-ordered UUIDv7 string, falling back to a random v4.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
