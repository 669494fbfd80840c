// Command extprune deletes files with a given extension from a directory tree.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/extprune/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by the linker
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		if !errors.Is(err, cli.ErrDeletionFailed) {
			fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		}

		os.Exit(1)
	}
}
