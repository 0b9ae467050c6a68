// Package main provides the sluice CLI entrypoint.
//
// Usage:
//
//	sluice encode strings a bb ccc > out.bin
//	sluice decode strings --input out.bin
//
// Exit codes:
//   - 0: success
//   - 1: usage or configuration error
//   - 2: stream or codec error
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/sluice/cli/cmd"
	"github.com/justapithecus/sluice/log"
)

// commit is stamped at build time via -ldflags "-X main.commit=...".
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:  "sluice",
		Usage: "Encode, decode and inspect build-protocol wire streams",
		Commands: []*cli.Command{
			cmd.EncodeCommand(),
			cmd.DecodeCommand(),
			cmd.VersionCommand(commit),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.NewLogger("cli").Sugar().Errorf("sluice: %v", err)
		os.Exit(1)
	}
}
