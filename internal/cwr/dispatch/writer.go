package dispatch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/record"
)

// Writer is the inverse of Dispatch: it serializes an ordered stream of
// typed records to a byte sink in the order given, terminating each line
// with CR/LF. It does not check the HDR..GRH/GRT..TRL file framing: records
// are written as supplied, whatever their order. It follows
// the teacher's WAL writer shape (internal/wal/writer.go: encode payload,
// write it, advance position) generalized from a binary log format to a
// CRLF-delimited text one.
type Writer struct {
	w       *bufio.Writer
	version cwrversion.Version
}

// NewWriter wraps sink for CWR output at the given version. The version
// controls which version-gated trailing fields record.Format populates;
// it is independent of whatever version an upstream Dispatch resolved,
// letting a caller re-target a file at a different CWR version on write.
func NewWriter(sink io.Writer, v cwrversion.Version) *Writer {
	return &Writer{w: bufio.NewWriter(sink), version: v}
}

// WriteRecord formats rec and appends it to the stream with a CRLF
// terminator. It returns an OverflowOnFormat error (via dispatch.Write)
// without writing any bytes for that record if a field overflows its
// column width — the caller must fix the value before retrying,
// per spec.md §4.9's "no truncation is performed silently".
func (w *Writer) WriteRecord(rec record.Record) error {
	line, err := Write(rec, w.version)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(line); err != nil {
		return fmt.Errorf("dispatch: write record %s: %w", rec.Tag, err)
	}
	if _, err := w.w.Write([]byte("\r\n")); err != nil {
		return fmt.Errorf("dispatch: write line terminator for %s: %w", rec.Tag, err)
	}
	return nil
}

// WriteAll writes every record in records in order, stopping at the first
// error. Per spec.md §4.9, a writer operating from an already-well-framed
// record stream (HDR first, groups bracketed by GRH/GRT, TRL last) emits
// records in order without reordering; framing correctness is the
// caller's responsibility to supply, not this Writer's to enforce, since
// the core does not validate cross-record structure (spec.md §1 — that is
// a host-layer concern).
func (w *Writer) WriteAll(records []record.Record) error {
	for _, rec := range records {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered output to the underlying sink.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// FrameCounts summarizes a closed group or file for GRT/TRL re-framing:
// the number of transactions and total records seen. A caller that wants
// the writer to recompute these (rather than pass through verbatim
// caller-supplied values, per spec.md §4.9) builds one from the record
// stream it is about to write.
type FrameCounts struct {
	GroupCount       int
	TransactionCount int
	RecordCount      int
}

// CountFrame tallies records into a FrameCounts: one transaction per
// transaction-header tag (AGR, NWR, REV, ISW, EXC, ACK) plus every record
// (including framing records) toward RecordCount, and one group per GRH
// seen, per spec.md §6's GLOSSARY definitions of Transaction/Group/File.
func CountFrame(records []record.Record) FrameCounts {
	var fc FrameCounts
	for _, rec := range records {
		fc.RecordCount++
		switch rec.Tag {
		case "GRH":
			fc.GroupCount++
		case "AGR", "NWR", "REV", "ISW", "EXC", "ACK":
			fc.TransactionCount++
		}
	}
	return fc
}
