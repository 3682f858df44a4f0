// Package session wires C6 (lineio), C7 (cwrversion), C8/C9 (dispatch),
// and C3/C4 (record) behind a single Reader/Writer pair, the way the
// teacher's internal/engine.Engine wires lexer → parser → planner →
// executor behind one entry point with an Observer lifecycle hook
// (SPEC_FULL.md §2, §10.2).
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/dispatch"
	"github.com/leengari/cwrkit/internal/cwr/field"
	"github.com/leengari/cwrkit/internal/cwr/lineio"
	"github.com/leengari/cwrkit/internal/cwr/record"
)

// EventType names a phase in a parse/serialize session's lifecycle,
// generalizing the teacher's engine.EventType (lex_start ... exec_end)
// from SQL execution phases to CWR session phases.
type EventType string

const (
	EventSessionOpened EventType = "session_opened"
	EventLineRead      EventType = "line_read"
	EventRecordParsed  EventType = "record_parsed"
	EventHDRResolved   EventType = "hdr_resolved"
	EventRecordWritten EventType = "record_written"
	EventSessionClosed EventType = "session_closed"
)

// Event is one lifecycle occurrence, tagged with the session's
// correlation ID the way engine.Event carries a TxID.
type Event struct {
	Type      EventType
	SessionID string
	Timestamp time.Time
	Data      any
}

// Observer receives Events as a session progresses. Copied in shape from
// engine.Observer.
type Observer interface {
	OnEvent(Event)
}

// LoggingObserver logs every event through log/slog with structured
// fields, matching engine.LoggingObserver field-for-field in spirit.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver builds a LoggingObserver over logger, or
// slog.Default() if logger is nil.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (lo *LoggingObserver) OnEvent(e Event) {
	level := slog.LevelDebug
	switch e.Type {
	case EventSessionOpened, EventSessionClosed, EventHDRResolved:
		level = slog.LevelInfo
	}
	lo.Logger.Log(context.Background(), level, "cwr_session",
		"event", e.Type,
		"session_id", e.SessionID,
		"timestamp", e.Timestamp,
		"data", e.Data,
	)
}

// IOError wraps an underlying stream error encountered by a session,
// following engine.ConstraintError's structured-error-value pattern
// (SPEC_FULL.md §10.3): a stream-level failure is the one thing that
// aborts a parse session outright (spec.md §7).
type IOError struct {
	SessionID string
	Err       error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cwr session %s: I/O error: %v", e.SessionID, e.Err)
}
func (e *IOError) Unwrap() error { return e.Err }

// Session owns one parse or serialize pass over a single CWR byte stream.
// It is not safe for concurrent use (spec.md §5); host applications
// achieve parallelism only across independent Sessions/files.
type Session struct {
	ID       string
	resolver *cwrversion.Resolver
	observer Observer
}

// Option configures a new Session.
type Option func(*Session)

// WithVersionOverride pins the session's active CWR version, the highest
// precedence source per spec.md §4.7.
func WithVersionOverride(v cwrversion.Version) Option {
	return func(s *Session) { s.resolver = cwrversion.NewResolver(&v) }
}

// WithObserver attaches an Observer; the default is a LoggingObserver over
// slog.Default().
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

// New starts a session, generating a UUID correlation ID the way the
// teacher's transaction.Transaction.ID does for WAL/observer events
// (SPEC_FULL.md §11).
func New(opts ...Option) *Session {
	s := &Session{ID: uuid.New().String()}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = cwrversion.NewResolver(nil)
	}
	if s.observer == nil {
		s.observer = NewLoggingObserver(nil)
	}
	s.emit(EventSessionOpened, nil)
	return s
}

func (s *Session) emit(t EventType, data any) {
	s.observer.OnEvent(Event{Type: t, SessionID: s.ID, Timestamp: time.Now(), Data: data})
}

// Version returns the session's currently active CWR version.
func (s *Session) Version() cwrversion.Version { return s.resolver.Active() }

// LineResult is one parsed line, surfaced by ParseAll/ParseStream with its
// 1-based source line number alongside the dispatch.Result.
type LineResult struct {
	LineNumber int
	Record     record.Record
	Warnings   []field.Warning
}

// ParseStream reads src line by line via lineio.Reader, dispatches each
// line through C8, and invokes yield with the result in input order
// (spec.md §5's ordering guarantee). It stops and returns an *IOError on
// any stream-level read failure other than a clean EOF; per-record
// problems never stop the stream (spec.md §7).
func (s *Session) ParseStream(src io.Reader, yield func(LineResult) error) error {
	reader := lineio.New(src)
	for {
		n, line, lineWarnings, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &IOError{SessionID: s.ID, Err: err}
		}
		s.emit(EventLineRead, n)

		res := dispatch.Dispatch(s.resolver, line)
		warnings := append(lineWarnings, res.Warnings...)
		if res.Record.Tag == "HDR" {
			s.emit(EventHDRResolved, s.resolver.Active())
		}
		s.emit(EventRecordParsed, res.Record.Tag)

		if err := yield(LineResult{LineNumber: n, Record: res.Record, Warnings: warnings}); err != nil {
			return err
		}
	}
	return nil
}

// ParseAll drains ParseStream into a slice, for callers small enough to
// materialize the whole file; large files should use ParseStream directly
// to stay in constant memory (spec.md §5).
func (s *Session) ParseAll(src io.Reader) ([]LineResult, error) {
	var results []LineResult
	err := s.ParseStream(src, func(lr LineResult) error {
		results = append(results, lr)
		return nil
	})
	return results, err
}

// NewWriter opens a dispatch.Writer over dst at the session's currently
// active version, emitting an EventRecordWritten for each record the
// caller writes through it.
func (s *Session) NewWriter(dst io.Writer) *SessionWriter {
	return &SessionWriter{session: s, w: dispatch.NewWriter(dst, s.Version())}
}

// SessionWriter adapts dispatch.Writer with session-level observer events.
type SessionWriter struct {
	session *Session
	w       *dispatch.Writer
}

// WriteRecord formats and writes rec, emitting EventRecordWritten on
// success.
func (sw *SessionWriter) WriteRecord(rec record.Record) error {
	if err := sw.w.WriteRecord(rec); err != nil {
		return err
	}
	sw.session.emit(EventRecordWritten, rec.Tag)
	return nil
}

// Flush flushes buffered output.
func (sw *SessionWriter) Flush() error { return sw.w.Flush() }

// Close emits EventSessionClosed. Resource release (closing the
// underlying stream) is the caller's responsibility, per spec.md §5 —
// Session only owns its internal buffers and version state.
func (s *Session) Close() {
	s.emit(EventSessionClosed, nil)
}
