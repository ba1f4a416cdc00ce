package magetasks

import (
	"io"
	"os"
)

var (
	// ModulePath is the Go module path.
	ModulePath = "github.com/dkoosis/catchable"

	// CoverProfile is where TestCoverage writes its profile, relative to ProjectRoot.
	CoverProfile = "coverage.out"

	// ProjectRoot is the root directory of the project.
	ProjectRoot string

	// Out receives task headers and command output.
	Out io.Writer = os.Stdout
)

// Initialize sets up the magetasks package.
// Call this from the Magefile init() function.
func Initialize() error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	ProjectRoot = root
	return nil
}
