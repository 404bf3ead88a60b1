package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/ifj25c/internal/cerr"
	"github.com/cwbudde/ifj25c/internal/driver"
)

func runCompile(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	output, err := driver.Compile(string(source), trace)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(os.Stdout, output)
	return err
}

// exitCodeFor maps a returned error to the process exit code of spec §6:
// a *cerr.Error carries its phase-specific code directly; anything else
// (e.g. a file-read failure) is an internal error.
func exitCodeFor(err error) int {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		return int(ce.Code)
	}
	return int(cerr.Internal)
}
