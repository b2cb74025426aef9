// Command hio is the Hiolang toolchain CLI: run, compile, lib, and repl.
package main

import (
	"os"

	"github.com/hyperaprog/hio/cmd/hio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
