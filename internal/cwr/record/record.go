// Package record implements C3 (record schema) and C4 (generic parse/format
// engine). Every CWR record tag is described declaratively as an ordered
// list of FieldDescriptors; Parse and Format are a single pair of
// table-driven functions that work for all ~40 tags, per the "table-driven
// interpreter" option spec.md §9 recommends over per-record generated code.
package record

import (
	"fmt"

	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/field"
)

// Presence classifies whether a field must, may conditionally, or may
// optionally be present.
type Presence int

const (
	Mandatory Presence = iota
	Conditional
	Optional
)

// FieldDescriptor is the compile-time description of one column range
// within one record tag (spec.md §3 "Field descriptor").
type FieldDescriptor struct {
	Name       string
	Title      string
	Start      int
	Length     int
	Codec      field.Codec
	Presence   Presence
	MinVersion cwrversion.Version
}

func (fd FieldDescriptor) end() int { return fd.Start + fd.Length }

// Descriptor is the compile-time description of one record tag: its
// 3-letter tag and ordered field list (spec.md §3 "Record schema").
type Descriptor struct {
	Tag    string
	Fields []FieldDescriptor
}

// LineLength is the total line length for this record at the given
// version: the highest (start+length) among fields whose MinVersion is at
// or below v, since later-version fields extend the line rightward
// (spec.md §4.3).
func (d *Descriptor) LineLength(v cwrversion.Version) int {
	max := 0
	for _, fd := range d.Fields {
		if fd.MinVersion > v {
			continue
		}
		if e := fd.end(); e > max {
			max = e
		}
	}
	return max
}

// Values is the parsed field-name -> decoded-value bag for one record.
// Concrete value types are whatever the field's Codec produces: string-ish
// field.Alpha, int64, field.Date, field.Time, bool, field.Flag,
// field.Share, or a lookup.* code type.
type Values map[string]any

// Record is one parsed CWR line: its tag, the common prefix sequence
// numbers (zero for framing records, which have no prefix field), and its
// decoded field values.
type Record struct {
	Tag            string
	TransactionSeq int64
	RecordSeq      int64
	Values         Values
}

// Get returns the raw decoded value for name, and whether it was present.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// Parse decodes one fixed-width line against desc at version v, producing
// a Record and the ordered list of Warnings collected along the way. Parse
// never fails outright: fields whose slice is too short or malformed are
// defaulted and warned about, never aborted (spec.md §4.4, §7). Fields whose
// MinVersion is newer than v are skipped: they get no entry in Values and
// no warning.
func Parse(desc *Descriptor, line []byte, v cwrversion.Version) (Record, []field.Warning) {
	var warnings []field.Warning
	values := make(Values, len(desc.Fields))

	for _, fd := range desc.Fields {
		if fd.MinVersion > v {
			continue
		}
		slice := sliceField(line, fd)
		value, w := fd.Codec.Parse(slice, fd.Name, fd.Title)
		warnings = append(warnings, w...)
		values[fd.Name] = value
	}

	rec := Record{Values: values}
	if a, ok := values["record_type"].(field.Alpha); ok {
		rec.Tag = a.Trimmed
	} else {
		rec.Tag = desc.Tag
	}
	if n, ok := values["transaction_sequence_num"].(int64); ok {
		rec.TransactionSeq = n
	}
	if n, ok := values["record_sequence_num"].(int64); ok {
		rec.RecordSeq = n
	}
	if rec.Tag != desc.Tag {
		warnings = append(warnings, field.CriticalF("record_type", "Record Type", rec.Tag,
			"parsed tag %q does not match expected record variant %q", rec.Tag, desc.Tag))
	}
	return rec, warnings
}

// sliceField returns the raw bytes for fd within line, tolerating lines
// shorter than the field's declared end (short read yields a partial or
// empty slice; the codec itself emits the ShortField warning).
func sliceField(line []byte, fd FieldDescriptor) []byte {
	if fd.Start >= len(line) {
		return nil
	}
	end := fd.end()
	if end > len(line) {
		end = len(line)
	}
	return line[fd.Start:end]
}

// Format re-serializes rec against desc at version v into a fixed-width
// line. Fields missing from rec.Values fall back to their codec's default.
// Format aborts with an error (never truncates silently) the moment any
// field overflows its declared column width, per spec.md §4.9/§7.
func Format(desc *Descriptor, rec Record, v cwrversion.Version) ([]byte, error) {
	length := desc.LineLength(v)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = ' '
	}

	for _, fd := range desc.Fields {
		if fd.MinVersion > v {
			continue
		}
		value, ok := rec.Values[fd.Name]
		if !ok {
			value = fd.Codec.Default()
		}
		out, err := fd.Codec.Format(value)
		if err != nil {
			return nil, fmt.Errorf("record %s: field %s: %w", desc.Tag, fd.Name, err)
		}
		if len(out) != fd.Length {
			return nil, fmt.Errorf("record %s: field %s: codec produced %d bytes, expected %d", desc.Tag, fd.Name, len(out), fd.Length)
		}
		copy(buf[fd.Start:fd.end()], out)
	}
	return buf, nil
}
