package stream

import "github.com/justapithecus/sluice/log"

// DefaultWarnThreshold is the cumulative transfer size above which a
// transport emits its one-shot large-transfer warning.
const DefaultWarnThreshold = 256 << 20 // 256 MiB

// TransferWarning is a write-once warning cell shared by every transport
// of a given kind. The first time any holder's cumulative byte count
// exceeds the threshold, one diagnostic is emitted and the cell stays
// fired for the life of the process.
//
// Constructors take the cell explicitly so tests can inject a fresh one
// instead of sharing the process-wide defaults.
type TransferWarning struct {
	threshold uint64
	logger    *log.Logger
	fired     bool
}

// Process-wide warning cells, one per transport kind.
var (
	FdTransferWarning  = NewTransferWarning(DefaultWarnThreshold, log.NewLogger("stream.fd"))
	MemTransferWarning = NewTransferWarning(DefaultWarnThreshold, log.NewLogger("stream.mem"))
)

// NewTransferWarning creates a warning cell. A threshold of zero selects
// DefaultWarnThreshold.
func NewTransferWarning(threshold uint64, logger *log.Logger) *TransferWarning {
	if threshold == 0 {
		threshold = DefaultWarnThreshold
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &TransferWarning{threshold: threshold, logger: logger}
}

// Note records the holder's current cumulative byte count and emits the
// one-shot diagnostic if the threshold has been crossed. Nil-receiver
// safe.
func (w *TransferWarning) Note(total uint64) {
	if w == nil || w.fired || total <= w.threshold {
		return
	}
	w.fired = true
	w.logger.Warn("very large transfer; this may run out of memory", map[string]any{
		"bytes":     total,
		"threshold": w.threshold,
	})
}

// Fired reports whether the one-shot diagnostic has been emitted.
func (w *TransferWarning) Fired() bool {
	return w != nil && w.fired
}
