package magetasks

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrUnformatted is returned by LintFormat when gofmt would rewrite files.
var ErrUnformatted = errors.New("files need gofmt")

// LintAll runs every linter and reports all failures together.
func LintAll() error {
	var errs []error
	for _, lint := range []func() error{LintFormat, LintVet, LintStaticcheck, LintGolangci} {
		if err := lint(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LintFormat checks that gofmt has nothing to change.
func LintFormat() error {
	PrintH2Header("Go Format")

	cmd := exec.Command("gofmt", "-l", ".")
	cmd.Dir = ProjectRoot
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = Out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}

	files := unformatted(out.String())
	if len(files) > 0 {
		PrintError(fmt.Sprintf("%d file(s) need formatting", len(files)))
		for _, f := range files {
			fmt.Fprintf(Out, "  %s\n", f)
		}
		return fmt.Errorf("%w: %s", ErrUnformatted, strings.Join(files, ", "))
	}

	PrintSuccess("Go Format passed")
	return nil
}

// unformatted parses gofmt -l output, ignoring the read-only example pack.
func unformatted(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "_") {
			continue
		}
		files = append(files, line)
	}
	return files
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck when it is installed.
func LintStaticcheck() error {
	return RunOptional("Staticcheck", "go install honnef.co/go/tools/cmd/staticcheck@latest",
		"staticcheck", "./...")
}

// LintGolangci runs golangci-lint when it is installed.
func LintGolangci() error {
	return RunOptional("Golangci-lint", "go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		"golangci-lint", "run",
		"--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard",
		"--timeout=5m",
		"./...")
}
