// Package types defines the Config struct and standard errors shared by the
// anki-sprite store, fetcher, and CLI packages.
package types

// Config holds everything a bootstrap run needs: where the preferences
// store lives, which profile to prepare, and how to obtain a sync key.
type Config struct {
	// BaseDir is the Anki base directory containing prefs21.db.
	BaseDir string `json:"base_dir" yaml:"base_dir"`

	// Profile is the user profile record name. Defaults to "User 1".
	Profile string `json:"profile" yaml:"profile"`

	// AuthMode selects the sync-key strategy: remote, form, or derive.
	AuthMode string `json:"auth_mode" yaml:"auth_mode"`

	// SyncEndpoint is the base URL of the sync service. Ignored by the
	// derive mode.
	SyncEndpoint string `json:"sync_endpoint" yaml:"sync_endpoint"`

	// Username and Password are the AnkiWeb credentials. Both empty means
	// the run skips authentication and writes a credential-less profile.
	Username string `json:"-" yaml:"-"`
	Password string `json:"-" yaml:"-"`
}

// Supported auth modes.
const (
	AuthModeRemote = "remote"
	AuthModeForm   = "form"
	AuthModeDerive = "derive"
)

// knownAuthModes lists the modes that Validate accepts.
var knownAuthModes = map[string]bool{
	AuthModeRemote: true,
	AuthModeForm:   true,
	AuthModeDerive: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.BaseDir == "" {
		return ErrBaseDirEmpty
	}
	if c.Profile == "" {
		return ErrProfileEmpty
	}
	if !knownAuthModes[c.AuthMode] {
		return ErrAuthModeUnknown
	}
	if c.AuthMode != AuthModeDerive && c.SyncEndpoint == "" {
		return ErrEndpointEmpty
	}
	return nil
}

// HasCredentials reports whether both credential fields are set. Absence of
// either is the no-op path, not an error.
func (c Config) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}
