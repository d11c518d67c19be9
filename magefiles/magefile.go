//go:build mage

// Package main provides build targets for the anki-sprite project using Mage.
//
// Usage:
//
//	mage build     Compile the anki-sprite binary to bin/
//	mage test      Run all tests
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install anki-sprite to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

const (
	binaryName = "anki-sprite"
	binaryDir  = "bin"
	cmdDir     = "./cmd/anki-sprite"
)

// Build compiles the anki-sprite binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install installs the anki-sprite binary to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", cmdDir)
}
