// Package magetasks provides the test and lint tasks behind the catchable Magefile.
//
// Every task shells out to the Go toolchain or a linter and streams its
// output to [Out]. Optional linters that are not installed produce a warning
// instead of failing the run.
package magetasks
