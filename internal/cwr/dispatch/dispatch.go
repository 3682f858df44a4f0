// Package dispatch implements C8 (record dispatcher) and C9 (record
// writer): the state machine that reads a 3-character tag off each line
// from lineio.Reader and routes it to the right record.Descriptor, and its
// inverse that serializes a typed record.Record back to a fixed-width
// line. This mirrors the teacher's wal.RecordType tagged-enum dispatch in
// internal/wal/reader.go's decodeRecord type switch, generalized from a
// binary WAL record-type byte to a 3-ASCII-character CWR tag.
package dispatch

import (
	"fmt"

	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/field"
	"github.com/leengari/cwrkit/internal/cwr/record"
)

// Result is the (typed record, warnings) tuple C8 produces for one line,
// per spec.md §4.8's dispatcher guarantee: every input line produces
// exactly one output tuple.
type Result struct {
	Record   record.Record
	Warnings []field.Warning
}

// Dispatch resolves line's leading tag to a record.Descriptor and parses
// it at the given version, updating resolver first if the tag is HDR
// (spec.md §4.8 step 3). It never returns an error: unrecognized tags and
// truncated lines yield a placeholder Record plus a Critical warning
// rather than aborting the stream (spec.md §7's TruncatedLine/UnknownTag
// handling).
func Dispatch(resolver *cwrversion.Resolver, line []byte) Result {
	if len(line) < 3 {
		return Result{
			Record:   record.Record{Tag: string(line)},
			Warnings: []field.Warning{field.CriticalF("record_type", "Record Type", string(line), "truncated line: shorter than the 3-byte tag")},
		}
	}

	tag := string(line[0:3])
	desc, ok := record.ByTag(tag)
	if !ok {
		return Result{
			Record:   record.Record{Tag: tag},
			Warnings: []field.Warning{field.CriticalF("record_type", "Record Type", tag, "unrecognized record type %q", tag)},
		}
	}

	if tag == "HDR" {
		hdrWarnings := resolver.ObserveHDR(line)
		rec, warnings := record.Parse(desc, line, resolver.Active())
		return Result{Record: rec, Warnings: append(hdrWarnings, warnings...)}
	}

	rec, warnings := record.Parse(desc, line, resolver.Active())
	return Result{Record: rec, Warnings: warnings}
}

// Write serializes rec back to a fixed-width line at version v by looking
// up its descriptor from rec.Tag. It returns an error (never a silent
// truncation) if the tag is unrecognized or any field overflows its
// column width, per spec.md §4.9/§7 OverflowOnFormat.
func Write(rec record.Record, v cwrversion.Version) ([]byte, error) {
	desc, ok := record.ByTag(rec.Tag)
	if !ok {
		return nil, fmt.Errorf("dispatch: cannot write unrecognized record tag %q", rec.Tag)
	}
	return record.Format(desc, rec, v)
}
