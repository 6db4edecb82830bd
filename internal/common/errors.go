// Package common defines shared constants and sentinel errors used across
// the ChargeCLI client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session-level errors.
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrOperationInFlight = errors.New("operation already in flight")

	// Token-store errors.
	ErrSessionCorrupted = errors.New("persisted session corrupted")

	// OAuth callback errors.
	ErrCallbackMalformed = errors.New("callback parameters malformed")
)
