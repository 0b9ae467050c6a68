package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/sluice/iox"
	"github.com/justapithecus/sluice/metrics"
	"github.com/justapithecus/sluice/stream"
	"github.com/justapithecus/sluice/wire"
)

// EncodeCommand returns the encode command. Each subcommand wire-encodes
// its arguments to stdout; output is raw bytes, so pipe it somewhere.
func EncodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Wire-encode values to stdout",
		Subcommands: []*cli.Command{
			{
				Name:      "int",
				Usage:     "Encode unsigned integers, one 8-byte field each",
				ArgsUsage: "<n>...",
				Flags:     SharedFlags(),
				Action:    encodeIntAction,
			},
			{
				Name:      "string",
				Usage:     "Encode strings, one padded field each",
				ArgsUsage: "<s>...",
				Flags:     SharedFlags(),
				Action:    encodeStringAction,
			},
			{
				Name:      "strings",
				Usage:     "Encode a count-prefixed string collection",
				ArgsUsage: "<s>...",
				Flags:     SharedFlags(),
				Action:    encodeStringsAction,
			},
		},
	}
}

func encodeIntAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("encode int: at least one value required", 1)
	}
	values := make([]uint64, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return cli.Exit(fmt.Sprintf("encode int: invalid value %q: %v", arg, err), 1)
		}
		values = append(values, n)
	}
	return withStdoutSink(c, func(dst stream.Sink) error {
		for _, n := range values {
			if err := wire.WriteUint64(dst, n); err != nil {
				return err
			}
		}
		return nil
	})
}

func encodeStringAction(c *cli.Context) error {
	return withStdoutSink(c, func(dst stream.Sink) error {
		for _, arg := range c.Args().Slice() {
			if err := wire.WriteString(dst, arg); err != nil {
				return err
			}
		}
		return nil
	})
}

func encodeStringsAction(c *cli.Context) error {
	return withStdoutSink(c, func(dst stream.Sink) error {
		return wire.WriteStrings(dst, c.Args().Slice())
	})
}

// withStdoutSink runs fn against a descriptor sink on stdout, flushes,
// and converts the sink's health flag into the command's exit status.
func withStdoutSink(c *cli.Context, fn func(dst stream.Sink) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fdSink := newFdSink(int(os.Stdout.Fd()), cfg)
	defer iox.DiscardErr(fdSink.Flush)
	collector := metrics.NewCollector("fd", "stdout")

	var dst stream.Sink = fdSink
	if cfg.Stats {
		dst = stream.NewInstrumentedSink(fdSink, collector)
	}

	if err := fn(dst); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if err := dst.Flush(); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if cfg.Stats {
		dumpStats(collector)
	}
	if !fdSink.Healthy() {
		return cli.Exit("encode: write to stdout failed", 2)
	}
	return nil
}
