//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/dkoosis/catchable/internal/magetasks"
)

// Default target - full QA pass
var Default = QA

func init() {
	if err := magetasks.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

// QA runs linters, the race detector and the examples
func QA() error {
	magetasks.PrintH1Header("catchable Quality Assurance")
	if err := magetasks.LintAll(); err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}
	if err := magetasks.TestRace(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	if err := magetasks.TestExamples(); err != nil {
		return fmt.Errorf("examples failed: %w", err)
	}

	magetasks.PrintSuccess("QA complete!")
	return nil
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() error {
	return magetasks.LintAll()
}

// Format checks code formatting
func (Lint) Format() error {
	return magetasks.LintFormat()
}

// Vet runs go vet
func (Lint) Vet() error {
	return magetasks.LintVet()
}

// Staticcheck runs staticcheck
func (Lint) Staticcheck() error {
	return magetasks.LintStaticcheck()
}

// Golangci runs golangci-lint
func (Lint) Golangci() error {
	return magetasks.LintGolangci()
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return magetasks.TestAll()
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return magetasks.TestCoverage()
}

// Race runs tests with race detector
func (Test) Race() error {
	return magetasks.TestRace()
}

// Examples runs the runnable examples
func (Test) Examples() error {
	return magetasks.TestExamples()
}
