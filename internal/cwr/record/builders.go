package record

import (
	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/field"
)

// The helpers below keep the ~40 schema declarations in schema_*.go
// terse and column-aligned, the way the teacher declares Column{...}
// literals in its schema package rather than hand-writing a parser per
// table.

func alphaF(name, title string, start, length int, presence Presence) FieldDescriptor {
	return FieldDescriptor{Name: name, Title: title, Start: start, Length: length, Codec: field.AlphaCodec{Len: length}, Presence: presence}
}

func numF(name, title string, start, length int, presence Presence) FieldDescriptor {
	return FieldDescriptor{Name: name, Title: title, Start: start, Length: length, Codec: field.NumericCodec{Len: length}, Presence: presence}
}

func dateF(name, title string, start int, presence Presence) FieldDescriptor {
	return FieldDescriptor{Name: name, Title: title, Start: start, Length: 8, Codec: field.DateCodec{}, Presence: presence}
}

func timeF(name, title string, start int, presence Presence) FieldDescriptor {
	return FieldDescriptor{Name: name, Title: title, Start: start, Length: 6, Codec: field.TimeCodec{}, Presence: presence}
}

func boolF(name, title string, start int, presence Presence) FieldDescriptor {
	return FieldDescriptor{Name: name, Title: title, Start: start, Length: 1, Codec: field.BooleanCodec{}, Presence: presence}
}

func flagF(name, title string, start int, presence Presence) FieldDescriptor {
	return FieldDescriptor{Name: name, Title: title, Start: start, Length: 1, Codec: field.FlagCodec{}, Presence: presence}
}

func shareF(name, title string, start int, presence Presence) FieldDescriptor {
	return FieldDescriptor{Name: name, Title: title, Start: start, Length: 5, Codec: field.ShareCodec{}, Presence: presence}
}

func codeF(name, title string, start int, presence Presence, codec field.Codec) FieldDescriptor {
	return FieldDescriptor{Name: name, Title: title, Start: start, Length: codec.Length(), Codec: codec, Presence: presence}
}

// versioned marks a field as absent before minVersion (spec.md §4.3's
// "version-gated optional trailing fields").
func versioned(fd FieldDescriptor, minVersion cwrversion.Version) FieldDescriptor {
	fd.MinVersion = minVersion
	fd.Presence = Optional
	return fd
}

// transactionPrefix is the common 19-byte prefix shared by every
// transaction/detail record: record_type(3) at col 0, transaction_seq(8)
// at col 3, record_seq(8) at col 11 (spec.md §3, §4.3).
func transactionPrefix() []FieldDescriptor {
	return []FieldDescriptor{
		alphaF("record_type", "Record Type", 0, 3, Mandatory),
		numF("transaction_sequence_num", "Transaction Sequence Number", 3, 8, Mandatory),
		numF("record_sequence_num", "Record Sequence Number", 11, 8, Mandatory),
	}
}

const prefixEnd = 19

// newDetailDescriptor builds a transaction/detail record descriptor from
// its tag and the fields following the common prefix.
func newDetailDescriptor(tag string, fields ...FieldDescriptor) *Descriptor {
	return &Descriptor{Tag: tag, Fields: append(transactionPrefix(), fields...)}
}

// cursor lays out a record's field-after-field column positions without
// making every schema hand-compute offsets — it tracks "where the next
// field starts" the way a bufio.Writer tracks "where the next byte goes".
// Version-gated fields still advance the cursor: the column they would
// occupy is reserved even when the field itself is absent at an earlier
// version, which is what lets a later version's fields "extend the line
// rightward" at a fixed starting column.
type cursor struct{ pos int }

func newCursor(start int) *cursor { return &cursor{pos: start} }

func (c *cursor) field(fd FieldDescriptor) FieldDescriptor {
	fd.Start = c.pos
	c.pos += fd.Length
	return fd
}

func (c *cursor) alpha(name, title string, length int, presence Presence) FieldDescriptor {
	return c.field(alphaF(name, title, 0, length, presence))
}
func (c *cursor) num(name, title string, length int, presence Presence) FieldDescriptor {
	return c.field(numF(name, title, 0, length, presence))
}
func (c *cursor) date(name, title string, presence Presence) FieldDescriptor {
	return c.field(dateF(name, title, 0, presence))
}
func (c *cursor) time(name, title string, presence Presence) FieldDescriptor {
	return c.field(timeF(name, title, 0, presence))
}
func (c *cursor) boolean(name, title string, presence Presence) FieldDescriptor {
	return c.field(boolF(name, title, 0, presence))
}
func (c *cursor) flag(name, title string, presence Presence) FieldDescriptor {
	return c.field(flagF(name, title, 0, presence))
}
func (c *cursor) share(name, title string, presence Presence) FieldDescriptor {
	return c.field(shareF(name, title, 0, presence))
}
func (c *cursor) code(name, title string, presence Presence, codec field.Codec) FieldDescriptor {
	return c.field(codeF(name, title, 0, presence, codec))
}
