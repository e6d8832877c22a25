// Command slackspace reports how much disk space is lost to partially filled
// clusters below a directory.
package main

import (
	"os"

	"github.com/idelchi/slackspace/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by the linker
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		os.Exit(1)
	}
}
