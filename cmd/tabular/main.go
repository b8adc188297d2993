package main

import (
	"errors"
	"fmt"
	"os"

	"tabular/internal/errs"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		// A failed verification already printed its verdict on stdout.
		if !errors.Is(err, errs.ErrVerifyFailed) {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(errs.ExitCode(err))
	}
}
