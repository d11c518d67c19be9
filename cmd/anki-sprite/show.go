// Show command prints a stored profile record as JSON for verification.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sebbacon/anki-sprite/internal/prefs"
	"github.com/sebbacon/anki-sprite/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a stored profile record as JSON",
	Long: `Show decodes a profile record from prefs21.db and prints it as JSON.
Without an argument it prints the configured user profile; pass _global to
inspect the process-wide settings record.

Example:
  anki-sprite show
  anki-sprite show _global`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	baseDir, err := resolveBaseDir()
	if err != nil {
		return fmt.Errorf("resolve base dir: %w", err)
	}

	name := flagProfile
	if name == "" {
		name = fileConfig.GetString(cfgKeyProfile)
	}
	if len(args) == 1 {
		name = args[0]
	}

	store, err := prefs.Open(baseDir)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Load(name)
	if err != nil {
		if errors.Is(err, types.ErrProfileNotFound) {
			return fmt.Errorf("profile %q not found in %s", name, store.Path())
		}
		return err
	}

	output, err := json.MarshalIndent(rec.JSONView(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	fmt.Println(string(output))
	return nil
}
