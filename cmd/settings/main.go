// Settings is a terminal rendition of a sectioned settings screen.
//
// Usage:
//
//	settings [command] [flags]
//
// Running without arguments launches the interactive list.
package main

import (
	"os"

	"github.com/idilsaglam/settings/internal/cli"
	"github.com/idilsaglam/settings/internal/ui"
)

func main() {
	if err := cli.NewRootCmd(nil).Execute(); err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
}
