//go:build mage

// Package main contains Mage build targets for figma-converter developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Default is the target run when mage is invoked with no arguments.
var Default = All

const (
	binDir  = "bin"
	binName = "figma-converter"
	cmdPkg  = "./cmd/figma-converter"
)

// All runs vet, the test suite, and a build, in that order.
func All() {
	mg.SerialDeps(Vet, Test, Build)
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Vet runs go vet across the module.
func Vet() error {
	return runGo("vet", "./...")
}

// Test runs the full test suite.
func Test() error {
	return runGo("test", "./...")
}

// Clean removes the binary directory and any generated output.
func Clean() error {
	if err := os.RemoveAll(binDir); err != nil {
		return fmt.Errorf("removing %s: %w", binDir, err)
	}
	if err := os.RemoveAll("output"); err != nil {
		return fmt.Errorf("removing output: %w", err)
	}
	fmt.Println("Cleaned build artifacts.")
	return nil
}

// runGo invokes the go tool with stdout and stderr attached.
func runGo(args ...string) error {
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go %s: %w", args[0], err)
	}
	return nil
}
