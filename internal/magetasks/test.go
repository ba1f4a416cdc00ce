package magetasks

import "path/filepath"

// TestAll runs all tests.
func TestAll() error {
	return Run("Tests", "go", "test", "./...")
}

// TestRace runs tests with the race detector.
func TestRace() error {
	return Run("Race Detector", "go", "test", "-race", "./...")
}

// TestExamples runs only the runnable examples.
func TestExamples() error {
	return Run("Examples", "go", "test", "-run", "^Example", "./...")
}

// TestCoverage runs tests with coverage and prints the per-function summary.
func TestCoverage() error {
	profile := filepath.Join(ProjectRoot, CoverProfile)
	if err := Run("Test Coverage", "go", "test", "-coverprofile="+profile, "./..."); err != nil {
		return err
	}
	return Run("Coverage Summary", "go", "tool", "cover", "-func="+profile)
}
