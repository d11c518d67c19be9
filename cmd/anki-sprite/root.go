// Root command for the anki-sprite CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sebbacon/anki-sprite/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagBaseDir   string
	flagProfile   string
)

// fileConfig holds the loaded config.yaml values. Set by PersistentPreRunE
// so all subcommands can use it.
var fileConfig *viper.Viper

var rootCmd = &cobra.Command{
	Use:     "anki-sprite",
	Short:   "anki-sprite prepares an Anki preferences store before first run",
	Version: version,
	Long: `anki-sprite pre-populates Anki's prefs21.db so the application starts
with a ready-made profile, skipping the first-run wizard. When the
ANKIWEB_USERNAME and ANKIWEB_PASSWORD environment variables are both set,
it also obtains a sync key and pre-authenticates the profile.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		fileConfig, err = loadConfig(configDir)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagBaseDir, "base", "", "Anki base directory (default: platform data dir, or $ANKI_BASE)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "profile name (default: \"User 1\")")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(showCmd)
}

// resolveBaseDir returns the Anki base directory following the precedence:
// --base flag > config.yaml base_dir > ANKI_BASE env > platform default.
func resolveBaseDir() (string, error) {
	return paths.ResolveBaseDir(flagBaseDir, fileConfig.GetString(cfgKeyBaseDir))
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > ANKI_SPRITE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// newLogger returns the stderr logger used by commands. Stdout stays
// reserved for command output.
func newLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
