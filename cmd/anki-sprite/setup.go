// Setup command: the one-shot bootstrap run.
package main

import (
	"github.com/spf13/cobra"

	"github.com/sebbacon/anki-sprite/internal/bootstrap"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the preferences store",
	Long: `Setup ensures prefs21.db exists with a normalized _global record and the
named user profile. When ANKIWEB_USERNAME and ANKIWEB_PASSWORD are both set,
it obtains a sync key and writes the sync credentials into the profile;
otherwise it writes a credential-less profile and still exits 0.

Example:
  anki-sprite setup
  ANKIWEB_USERNAME=user@example.com ANKIWEB_PASSWORD=secret anki-sprite setup`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	return bootstrap.Run(cmd.Context(), cfg, newLogger())
}
