package types

import "errors"

// Config validation errors.
var (
	ErrBaseDirEmpty    = errors.New("base dir must not be empty")
	ErrProfileEmpty    = errors.New("profile name must not be empty")
	ErrAuthModeUnknown = errors.New("unknown auth mode")
	ErrEndpointEmpty   = errors.New("sync endpoint must not be empty")
)

// Store errors.
var (
	// ErrProfileNotFound is returned when a named profile record does not
	// exist in the store.
	ErrProfileNotFound = errors.New("profile not found")
)

// Authentication errors. All three are terminal for a run; the tool never
// retries or falls back to another strategy.
var (
	// ErrInvalidCredentials means the sync service rejected the login
	// (HTTP 401 or 403).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrServiceFailure means the sync service was unreachable or returned
	// an unexpected status.
	ErrServiceFailure = errors.New("sync service failure")

	// ErrProtocolMismatch means the response decoded but did not contain
	// the expected key field.
	ErrProtocolMismatch = errors.New("unexpected sync service response")
)
