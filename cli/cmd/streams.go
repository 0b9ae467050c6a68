package cmd

import (
	"github.com/justapithecus/sluice/cli/config"
	"github.com/justapithecus/sluice/log"
	"github.com/justapithecus/sluice/stream"
)

// newFdSink builds a descriptor sink honoring the configured buffer
// size and large-transfer threshold.
func newFdSink(fd int, cfg *config.Config) *stream.FdSink {
	return stream.NewFdSinkSized(fd, cfg.BufferSize, transferWarning(cfg))
}

// newFdSource builds a descriptor source honoring the configured
// buffer size.
func newFdSource(fd int, cfg *config.Config) *stream.FdSource {
	return stream.NewFdSourceSized(fd, cfg.BufferSize, nil)
}

// transferWarning resolves the warning cell for a configured threshold.
// The default threshold keeps the process-wide cell so repeated
// commands in one process still warn once; any other value gets its
// own cell.
func transferWarning(cfg *config.Config) *stream.TransferWarning {
	if cfg.WarnThresholdBytes == config.DefaultWarnBytes {
		return stream.FdTransferWarning
	}
	return stream.NewTransferWarning(uint64(cfg.WarnThresholdBytes), log.NewLoggerAt("cli", cfg.LogLevel))
}
