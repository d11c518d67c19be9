// Package main provides the anki-sprite CLI, a one-shot bootstrap tool that
// pre-populates Anki's preferences store before its first run.
package main

import (
	"fmt"
	"os"
)

// Exit codes: success (including the no-credentials path) is 0, any fatal
// failure is 1.
const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "anki-sprite:", err)
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
