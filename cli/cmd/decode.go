package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/sluice/cli/config"
	"github.com/justapithecus/sluice/iox"
	"github.com/justapithecus/sluice/log"
	"github.com/justapithecus/sluice/metrics"
	"github.com/justapithecus/sluice/stream"
	"github.com/justapithecus/sluice/wire"
)

// DecodeCommand returns the decode command. Each subcommand reads a wire
// stream from stdin (or --input) and prints decoded values one per line.
func DecodeCommand() *cli.Command {
	flags := append(SharedFlags(), MaxLenFlag, InputFlag)
	return &cli.Command{
		Name:  "decode",
		Usage: "Decode a wire stream and print its values",
		Subcommands: []*cli.Command{
			{
				Name:   "int",
				Usage:  "Decode 8-byte integer fields until the stream ends",
				Flags:  flags,
				Action: decodeIntAction,
			},
			{
				Name:   "string",
				Usage:  "Decode padded string fields until the stream ends",
				Flags:  flags,
				Action: decodeStringAction,
			},
			{
				Name:   "strings",
				Usage:  "Decode one count-prefixed collection as a sequence",
				Flags:  flags,
				Action: decodeStringsAction,
			},
			{
				Name:   "set",
				Usage:  "Decode one count-prefixed collection as a set",
				Flags:  flags,
				Action: decodeSetAction,
			},
		},
	}
}

func decodeIntAction(c *cli.Context) error {
	return withInputSource(c, func(src stream.Source, _ *config.Config) error {
		for {
			field, ok, err := fieldStart(src)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			n, err := wire.ReadUint64(field)
			if err != nil {
				return fieldErr(err)
			}
			fmt.Println(n)
		}
	})
}

func decodeStringAction(c *cli.Context) error {
	return withInputSource(c, func(src stream.Source, cfg *config.Config) error {
		for {
			field, ok, err := fieldStart(src)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			s, err := wire.ReadStringMax(field, cfg.MaxStringLen)
			if err != nil {
				return fieldErr(err)
			}
			fmt.Printf("%q\n", s)
		}
	})
}

func decodeStringsAction(c *cli.Context) error {
	return withInputSource(c, func(src stream.Source, _ *config.Config) error {
		ss, err := wire.ReadStrings(src)
		if err != nil {
			return err
		}
		for _, s := range ss {
			fmt.Printf("%q\n", s)
		}
		return nil
	})
}

func decodeSetAction(c *cli.Context) error {
	return withInputSource(c, func(src stream.Source, _ *config.Config) error {
		set, err := wire.ReadStringSet(src)
		if err != nil {
			return err
		}
		members := make([]string, 0, len(set))
		for s := range set {
			members = append(members, s)
		}
		sort.Strings(members)
		for _, s := range members {
			fmt.Printf("%q\n", s)
		}
		return nil
	})
}

// fieldStart peeks one byte to tell a finished stream apart from a
// truncated one. End of stream before any byte of the next field is the
// normal loop exit; once the field has begun, running dry is damage and
// must surface as an error. The consumed byte is replayed in front of
// the remaining stream.
func fieldStart(src stream.Source) (stream.Source, bool, error) {
	var head [1]byte
	err := stream.Pull(src, head[:])
	if errors.Is(err, stream.ErrEndOfStream) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &replaySource{head: head[0], rest: src}, true, nil
}

// fieldErr upgrades an end-of-stream hit inside a field into a
// truncation error; everything else passes through.
func fieldErr(err error) error {
	if errors.Is(err, stream.ErrEndOfStream) {
		return fmt.Errorf("stream truncated mid-field: %w", err)
	}
	return err
}

// replaySource yields one buffered byte before delegating to the
// wrapped source.
type replaySource struct {
	head   byte
	rest   stream.Source
	played bool
}

func (r *replaySource) Read(p []byte) (int, error) {
	if !r.played {
		if len(p) == 0 {
			return 0, nil
		}
		p[0] = r.head
		r.played = true
		return 1, nil
	}
	return r.rest.Read(p)
}

// withInputSource runs fn against a descriptor source on stdin or the
// --input file, classifying codec failures on the collector and into
// exit status 2.
func withInputSource(c *cli.Context, fn func(src stream.Source, cfg *config.Config) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fd := int(os.Stdin.Fd())
	streamID := "stdin"
	if path := c.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer iox.DiscardClose(f)
		fd = int(f.Fd())
		streamID = path
	}
	log.NewLoggerAt("cli", cfg.LogLevel).Sugar().With("stream", streamID).Debugf("decoding with buffer %d", cfg.BufferSize)

	collector := metrics.NewCollector("fd", streamID)
	var src stream.Source = newFdSource(fd, cfg)
	if cfg.Stats {
		src = stream.NewInstrumentedSource(src, collector)
	}

	runErr := fn(src, cfg)
	if runErr != nil {
		switch {
		case wire.IsStructural(runErr):
			collector.IncStructuralError()
		case wire.IsCapacity(runErr):
			collector.IncCapacityError()
		}
	}
	if cfg.Stats {
		dumpStats(collector)
	}
	if runErr != nil {
		return cli.Exit(runErr.Error(), 2)
	}
	return nil
}
