package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

// Version is the canonical sluice version.
const Version = "0.1.0"

// VersionResponse is the response for the version command.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// VersionCommand returns the version command. It must not touch any
// stream.
func VersionCommand(commit string) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(c *cli.Context) error {
			resp := VersionResponse{Version: Version, Commit: commit}
			data, err := json.Marshal(resp)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
