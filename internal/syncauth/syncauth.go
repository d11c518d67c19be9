// Package syncauth obtains the sync token (hkey) that authorizes a profile
// against the AnkiWeb sync service. Three strategies implement the same
// logical contract and are selected at startup: a zstd-compressed JSON
// exchange matching the current service, a legacy form-encoded exchange, and
// a local derivation that needs no network at all.
package syncauth

import (
	"context"
	"fmt"

	"github.com/sebbacon/anki-sprite/pkg/types"
)

// DefaultEndpoint is the production sync service.
const DefaultEndpoint = "https://sync.ankiweb.net"

// hostKeyPath is the login resource on the sync service.
const hostKeyPath = "/sync/hostKey"

// Authenticator exchanges credentials for a sync token. The token is opaque
// and stored verbatim.
type Authenticator interface {
	HostKey(ctx context.Context, username, password string) (string, error)
}

// New returns the Authenticator for the configured auth mode.
func New(cfg types.Config) (Authenticator, error) {
	switch cfg.AuthMode {
	case types.AuthModeRemote:
		return NewRemoteAuth(cfg.SyncEndpoint)
	case types.AuthModeForm:
		return NewFormAuth(cfg.SyncEndpoint), nil
	case types.AuthModeDerive:
		return DeriveAuth{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrAuthModeUnknown, cfg.AuthMode)
	}
}
