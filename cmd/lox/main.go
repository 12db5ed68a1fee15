// Command lox is the entry point for the tree-walking interpreter: it
// wires cobra's Execute() to the process exit code for each failure
// class. os.Exit is called only here.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/cmd/lox/cmd"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		os.Exit(0)
	}

	var exitErr *cmd.ExitCodeError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, exitErr.Error())
		os.Exit(exitErr.Code)
	}

	// Anything else (bad flags, unknown subcommand) is a usage error. The
	// root command silences cobra's own error printing, so print it here.
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
