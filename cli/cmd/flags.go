// Package cmd provides CLI commands for the sluice binary.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/sluice/cli/config"
	"github.com/justapithecus/sluice/metrics"
)

// Shared flags across encode/decode commands.
var (
	// ConfigFlag points at a sluice.yaml file providing flag defaults.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to sluice.yaml config file",
	}

	// MaxLenFlag bounds decoded string lengths.
	MaxLenFlag = &cli.IntFlag{
		Name:  "max-len",
		Usage: "Maximum decoded string length in bytes",
	}

	// StatsFlag dumps a transfer metrics snapshot to stderr after the
	// command finishes.
	StatsFlag = &cli.BoolFlag{
		Name:  "stats",
		Usage: "Dump transfer metrics as JSON to stderr",
	}

	// InputFlag reads the wire stream from a file instead of stdin.
	InputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Read the wire stream from a file instead of stdin",
	}

	// LogLevelFlag sets the stderr diagnostics floor.
	LogLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Minimum log level: debug, info, warn or error",
	}
)

// SharedFlags returns the flags common to every stream command.
func SharedFlags() []cli.Flag {
	return []cli.Flag{
		ConfigFlag,
		StatsFlag,
		LogLevelFlag,
	}
}

// loadConfig resolves the effective configuration: file values (if
// --config was given) overridden by explicitly set flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Normalize()

	if c.IsSet("max-len") {
		cfg.MaxStringLen = c.Int("max-len")
	}
	if c.IsSet("stats") {
		cfg.Stats = c.Bool("stats")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// dumpStats writes the metrics snapshot as one JSON object on stderr.
func dumpStats(collector *metrics.Collector) {
	snap := collector.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, string(data))
}
