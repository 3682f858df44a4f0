// Package lookup implements the CWR closed-set lookup-table fields: agreement
// type, title type, writer designation, publisher type, language code,
// currency code, character set, and the rest of the enumerations bound to a
// single-column CWR code. Each table is a distinct Go string type so a
// field's Go type tells you which table it was validated against,
// generalizing the teacher's single-table engine.ColumnType
// (internal/engine/column.go) to roughly thirty domain tables.
package lookup

import (
	"fmt"
	"strings"

	"github.com/leengari/cwrkit/internal/cwr/field"
)

// Code is implemented by every closed-set lookup type generated below.
type Code interface {
	~string
}

// table holds a lookup type's valid code set and default (unknown) value,
// shared by every generated Parse/Format pair via the generic helpers
// below.
type table[T Code] struct {
	valid   map[T]bool
	def     T
	name    string // e.g. "AgreementType", used only in error/debug text
}

func newTable[T Code](def T, codes ...T) table[T] {
	t := table[T]{valid: make(map[T]bool, len(codes)), def: def,
		name: strings.TrimPrefix(fmt.Sprintf("%T", def), "lookup.")}
	for _, c := range codes {
		t.valid[c] = true
	}
	t.valid[def] = true
	return t
}

// parse trims the slice and checks it against the table's valid set
// (case-sensitive, per spec.md §4.1). A miss warns and returns the table's
// default.
func (t table[T]) parse(slice []byte, name, title string) (T, []field.Warning) {
	raw := string(slice)
	trimmed := T(strings.TrimSpace(raw))
	if t.valid[trimmed] {
		return trimmed, nil
	}
	return t.def, []field.Warning{field.Malformed(name, title, raw, "unrecognized "+t.name+" code")}
}

// format pads the code's canonical string to width with trailing spaces;
// a code longer than width is an overflow.
func (t table[T]) format(v T, width int) (string, error) {
	s := string(v)
	if len(s) > width {
		return "", &field.OverflowError{Value: s, Length: width}
	}
	return s + strings.Repeat(" ", width-len(s)), nil
}

// Codec adapts a lookup table to the field.Codec interface used by the
// record engine, parameterized once per table (not once per field use).
type Codec[T Code] struct {
	Table table[T]
	Width int
}

func (c Codec[T]) Parse(slice []byte, name, title string) (any, []field.Warning) {
	v, w := c.Table.parse(slice, name, title)
	return v, w
}
func (c Codec[T]) Format(v any) (string, error) { return c.Table.format(v.(T), c.Width) }
func (c Codec[T]) Default() any                 { return c.Table.def }
func (c Codec[T]) Length() int                  { return c.Width }
