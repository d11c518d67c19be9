package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the tool version reported by the version command and --version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("anki-sprite v" + version)
	},
}
