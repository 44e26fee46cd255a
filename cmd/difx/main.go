package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/lysShub/difx-go"
)

// ERROR_SUCCESS_REBOOT_REQUIRED
const exitRebootRequired = 3010

func main() {
	cmd := NewDIFxCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errRebootRequired) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errRebootRequired):
		return exitRebootRequired
	default:
		var e *difx.DriverPackageError
		if errors.As(err, &e) {
			return 1
		}
		return 2
	}
}
