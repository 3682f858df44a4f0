// Package cwrlog adapts the teacher's internal/logging.SetupLogger to the
// CWR domain: a slog.Handler that fans out to a text console handler and,
// when reachable, a Seq structured-log sink via
// github.com/sokkalf/slog-seq — the same dependency and fan-out shape the
// teacher uses for its own RDBMS operational logging (SPEC_FULL.md §10.1).
package cwrlog

import (
	"context"
	"log/slog"
	"os"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// multiHandler forwards log records to every handler in the fan-out list.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// Setup initializes a logger for a cwrkit session and returns a cleanup
// function the caller must run on shutdown. Session-level events (file
// opened, HDR resolved, a Critical warning seen) are expected to be logged
// at Info/Warn by callers; per-field Warning-severity diagnostics belong
// at Debug, so routine per-field defaults do not flood production logs —
// operators read the structured []field.Warning list the session API
// returns for that instead (SPEC_FULL.md §10.1).
func Setup(seqEndpoint string) (*slog.Logger, func()) {
	consoleHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: false,
	})

	if seqEndpoint == "" {
		logger := slog.New(consoleHandler)
		return logger, func() {}
	}

	_, seqHandler := slogseq.NewLogger(
		seqEndpoint,
		slogseq.WithBatchSize(1),
		slogseq.WithFlushInterval(500*time.Millisecond),
		slogseq.WithHandlerOptions(&slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: false,
		}),
	)

	if seqHandler == nil {
		logger := slog.New(consoleHandler)
		return logger, func() {}
	}

	multi := &multiHandler{handlers: []slog.Handler{consoleHandler, seqHandler}}
	logger := slog.New(multi)
	return logger, func() { seqHandler.Close() }
}
