package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/temirov/brandbot/cmd/cli"
	"github.com/temirov/brandbot/internal/audit"
)

const (
	exitErrorTemplateConstant = "%v\n"
	exitCodeSuccessConstant   = 0
	exitCodeFailureConstant   = 1
)

// main executes the brandbot command-line application.
func main() {
	os.Exit(exitCodeForError(cli.Execute(), os.Stderr))
}

// exitCodeForError reports executionError on errorOutput and returns the process exit code.
// Audit findings are already rendered in the report, so only the status is returned for them.
func exitCodeForError(executionError error, errorOutput io.Writer) int {
	if executionError == nil {
		return exitCodeSuccessConstant
	}
	if !errors.Is(executionError, audit.ErrBrandIssuesFound) {
		fmt.Fprintf(errorOutput, exitErrorTemplateConstant, executionError)
	}
	return exitCodeFailureConstant
}
