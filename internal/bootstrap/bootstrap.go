// Package bootstrap runs the one-shot profile setup: it owns the store
// lifecycle end to end and invokes the credential fetcher between the
// _global write and the final user-record write.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sebbacon/anki-sprite/internal/prefs"
	"github.com/sebbacon/anki-sprite/internal/syncauth"
	"github.com/sebbacon/anki-sprite/pkg/types"
)

// Run prepares the preferences store per cfg. On return the store exists,
// _global is normalized, and the named user record exists; if credentials
// were supplied and the exchange succeeded, the user record carries the sync
// token. Any error is fatal to the run; nothing is retried.
func Run(ctx context.Context, cfg types.Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := prefs.Open(cfg.BaseDir)
	if err != nil {
		return err
	}
	defer store.Close()

	now := time.Now()

	if err := ensureGlobal(store, cfg.Profile, now, log); err != nil {
		return err
	}

	user, err := loadOrDefaultUser(store, cfg.Profile, now, log)
	if err != nil {
		return err
	}

	if cfg.HasCredentials() {
		auth, err := syncauth.New(cfg)
		if err != nil {
			return err
		}
		key, err := auth.HostKey(ctx, cfg.Username, cfg.Password)
		if err != nil {
			// The user record is deliberately not written on a failed
			// exchange; _global has already been normalized and saved.
			return fmt.Errorf("obtaining sync key: %w", err)
		}
		prefs.ApplyCredentials(user, cfg.Username, key)
		log.Info().
			Str("profile", cfg.Profile).
			Str("user", cfg.Username).
			Str("mode", cfg.AuthMode).
			Msg("sync credentials configured")
	} else {
		log.Info().Msg("credentials not provided, skipping sync setup")
	}

	if err := store.Save(cfg.Profile, user); err != nil {
		return err
	}

	log.Info().
		Str("path", store.Path()).
		Str("profile", cfg.Profile).
		Msg("preferences store ready")
	return nil
}

// ensureGlobal loads or creates the _global record, applies the per-run
// invariants, and writes it back.
func ensureGlobal(store *prefs.Store, profileName string, now time.Time, log zerolog.Logger) error {
	global, err := store.Load(prefs.GlobalProfileName)
	switch {
	case errors.Is(err, types.ErrProfileNotFound):
		gp, err := prefs.DefaultGlobalProfile(profileName, now)
		if err != nil {
			return err
		}
		global = gp.Record()
		log.Info().Msg("creating new _global profile")
	case err != nil:
		return err
	default:
		log.Info().Msg("found existing _global profile")
	}

	prefs.NormalizeGlobal(global, profileName)
	return store.Save(prefs.GlobalProfileName, global)
}

// loadOrDefaultUser loads the named user record or builds the default one.
func loadOrDefaultUser(store *prefs.Store, profileName string, now time.Time, log zerolog.Logger) (prefs.Record, error) {
	user, err := store.Load(profileName)
	switch {
	case errors.Is(err, types.ErrProfileNotFound):
		log.Info().Str("profile", profileName).Msg("creating new user profile")
		return prefs.DefaultUserProfile(now).Record(), nil
	case err != nil:
		return nil, err
	}
	log.Info().Str("profile", profileName).Msg("found existing user profile")
	return user, nil
}
