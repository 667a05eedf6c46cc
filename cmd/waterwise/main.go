// Command waterwise is the WaterWise CLI: water usage tracking,
// footprint lookups, and conservation suggestions.
package main

import (
	"os"

	"github.com/waterwise/waterwise/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
