package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/cwbudde/go-lox/cmd/lox/cmd"
)

// TestMain lets testscript re-exec this test binary as the "lox" command
// for every script under testdata/script, exercising the same exit-code
// mapping main() uses without spawning a separately built binary.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"lox": runLoxForTest,
	}))
}

func runLoxForTest() int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *cmd.ExitCodeError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, exitErr.Error())
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, err)
	return 1
}

func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
