package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		BaseDir:      "/tmp/anki",
		Profile:      "User 1",
		AuthMode:     AuthModeRemote,
		SyncEndpoint: "https://sync.example.com",
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid remote config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("empty base dir", func(t *testing.T) {
		cfg := validConfig()
		cfg.BaseDir = ""
		assert.ErrorIs(t, cfg.Validate(), ErrBaseDirEmpty)
	})

	t.Run("empty profile", func(t *testing.T) {
		cfg := validConfig()
		cfg.Profile = ""
		assert.ErrorIs(t, cfg.Validate(), ErrProfileEmpty)
	})

	t.Run("unknown auth mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.AuthMode = "oauth"
		assert.ErrorIs(t, cfg.Validate(), ErrAuthModeUnknown)
	})

	t.Run("remote mode requires endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.SyncEndpoint = ""
		assert.ErrorIs(t, cfg.Validate(), ErrEndpointEmpty)
	})

	t.Run("derive mode needs no endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.AuthMode = AuthModeDerive
		cfg.SyncEndpoint = ""
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_HasCredentials(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.HasCredentials())

	cfg.Username = "user@example.com"
	assert.False(t, cfg.HasCredentials(), "username alone is not enough")

	cfg.Password = "secret"
	assert.True(t, cfg.HasCredentials())

	cfg.Username = ""
	assert.False(t, cfg.HasCredentials(), "password alone is not enough")
}
