// Package paths resolves the Anki base directory and the tool's own
// configuration directory.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// BaseDirName is the directory Anki keeps its per-user data in.
const BaseDirName = "Anki2"

// ConfigDirName is the directory for this tool's optional config.yaml.
const ConfigDirName = "anki-sprite"

// Environment variable names for directory overrides. ANKI_BASE matches the
// variable the Anki application itself honors.
const (
	EnvBaseDir   = "ANKI_BASE"
	EnvConfigDir = "ANKI_SPRITE_CONFIG_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultBaseDir returns the platform-specific default Anki base directory.
//
// Linux:   $XDG_DATA_HOME/Anki2 (fallback ~/.local/share/Anki2)
// macOS:   ~/Library/Application Support/Anki2
// Windows: %APPDATA%/Anki2
func DefaultBaseDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, BaseDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", BaseDirName), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, BaseDirName), nil
	}
}

// DefaultConfigDir returns the platform-specific default configuration
// directory for the tool itself.
//
// Linux:   $XDG_CONFIG_HOME/anki-sprite (fallback ~/.config/anki-sprite)
// macOS:   ~/Library/Application Support/anki-sprite
// Windows: %APPDATA%/anki-sprite
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, ConfigDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", ConfigDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, ConfigDirName), nil
	}
}

// ResolveBaseDir returns the Anki base directory following the precedence
// chain: flag > config.yaml base_dir > ANKI_BASE env > DefaultBaseDir().
func ResolveBaseDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvBaseDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultBaseDir()
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ANKI_SPRITE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}
