// Command gregdex builds and queries the recipe reference dataset.
package main

import (
	"os"

	"github.com/gregdex/gregdex/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
