// @MX:ANCHOR: only entry point of the scaffolder binary; exits 1 on any command error.
package main

import (
	"os"

	"github.com/studio-scaffolder/scaffolder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
