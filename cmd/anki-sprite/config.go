// Config loading for the anki-sprite CLI. The config.yaml is optional; the
// credential pair always comes from the environment so secrets never land
// on disk.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/sebbacon/anki-sprite/internal/prefs"
	"github.com/sebbacon/anki-sprite/internal/syncauth"
	"github.com/sebbacon/anki-sprite/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBaseDir  = "base_dir"
	cfgKeyProfile  = "profile"
	cfgKeyAuthMode = "auth_mode"
	cfgKeyEndpoint = "sync_endpoint"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# anki-sprite configuration

# Profile record to prepare
profile: "User 1"

# Sync-key strategy: remote (compressed JSON login), form (legacy
# form-encoded login), or derive (local, no network)
auth_mode: remote

# Sync service base URL
sync_endpoint: https://sync.ankiweb.net

# Anki base directory (optional; overridable by --base flag or $ANKI_BASE)
# base_dir:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyProfile, prefs.DefaultProfileName)
	v.SetDefault(cfgKeyAuthMode, types.AuthModeRemote)
	v.SetDefault(cfgKeyEndpoint, syncauth.DefaultEndpoint)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// credentials is the AnkiWeb credential pair read from the environment:
// ANKIWEB_USERNAME and ANKIWEB_PASSWORD. Both must be present and non-empty
// to attempt authentication.
type credentials struct {
	Username string `envconfig:"ANKIWEB_USERNAME"`
	Password string `envconfig:"ANKIWEB_PASSWORD"`
}

// loadCredentials reads the credential pair from the environment.
func loadCredentials() (credentials, error) {
	var c credentials
	if err := envconfig.Process("", &c); err != nil {
		return credentials{}, fmt.Errorf("read credentials: %w", err)
	}
	c.Username = strings.TrimSpace(c.Username)
	c.Password = strings.TrimSpace(c.Password)
	return c, nil
}

// buildConfig assembles the run configuration from flags, the loaded
// config.yaml, and the environment.
func buildConfig() (types.Config, error) {
	v := fileConfig

	baseDir, err := resolveBaseDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve base dir: %w", err)
	}

	profile := flagProfile
	if profile == "" {
		profile = v.GetString(cfgKeyProfile)
	}

	creds, err := loadCredentials()
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		BaseDir:      baseDir,
		Profile:      profile,
		AuthMode:     v.GetString(cfgKeyAuthMode),
		SyncEndpoint: v.GetString(cfgKeyEndpoint),
		Username:     creds.Username,
		Password:     creds.Password,
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
