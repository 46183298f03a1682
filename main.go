// fastgen – FastAPI project generator.
// Scaffolds projects from embedded template trees and layers optional
// service overlays (deployment, OAuth) onto them.
package main

import (
	"os"

	"github.com/fastgen-io/fastgen/cmd"
	"github.com/fastgen-io/fastgen/internal/output"
	_ "github.com/fastgen-io/fastgen/schemas"
)

func main() {
	if err := cmd.Execute(); err != nil {
		output.PrintError(err)
		os.Exit(1)
	}
}
