package field

// Codec is the parse/format pair for one field descriptor. Parse returns a
// decoded value (boxed as any — the concrete type is whatever the codec
// produces: Alpha, int64, Date, Time, bool, Flag, Share, or a lookup code
// type) plus any Warnings. Format is the inverse; it returns an error only
// for OverflowOnFormat (spec.md §7) — it never truncates silently.
type Codec interface {
	Parse(slice []byte, name, title string) (any, []Warning)
	Format(value any) (string, error)
	Default() any
	Length() int
}

// AlphaCodec is a left-justified, space-padded alphanumeric field.
type AlphaCodec struct{ Len int }

func (c AlphaCodec) Parse(slice []byte, name, title string) (any, []Warning) {
	v, w := ParseAlpha(slice, name, title, c.Len)
	return v, w
}
func (c AlphaCodec) Format(v any) (string, error) { return FormatAlpha(v.(Alpha), c.Len) }
func (c AlphaCodec) Default() any                 { return Alpha{} }
func (c AlphaCodec) Length() int                  { return c.Len }

// NumericCodec is a right-justified, zero-padded unsigned decimal field.
type NumericCodec struct{ Len int }

func (c NumericCodec) Parse(slice []byte, name, title string) (any, []Warning) {
	v, w := ParseNumeric(slice, name, title, c.Len)
	return v, w
}
func (c NumericCodec) Format(v any) (string, error) { return FormatNumeric(v.(int64), c.Len) }
func (c NumericCodec) Default() any                 { return int64(0) }
func (c NumericCodec) Length() int                  { return c.Len }

// DateCodec is a fixed 8-byte YYYYMMDD field.
type DateCodec struct{}

func (c DateCodec) Parse(slice []byte, name, title string) (any, []Warning) {
	v, w := ParseDate(slice, name, title)
	return v, w
}
func (c DateCodec) Format(v any) (string, error) { return FormatDate(v.(Date)) }
func (c DateCodec) Default() any                 { return ZeroDate }
func (c DateCodec) Length() int                  { return 8 }

// TimeCodec is a fixed 6-byte HHMMSS field.
type TimeCodec struct{}

func (c TimeCodec) Parse(slice []byte, name, title string) (any, []Warning) {
	v, w := ParseTime(slice, name, title)
	return v, w
}
func (c TimeCodec) Format(v any) (string, error) { return FormatTime(v.(Time)) }
func (c TimeCodec) Default() any                 { return ZeroTime }
func (c TimeCodec) Length() int                  { return 6 }

// BooleanCodec is a fixed 1-byte Y/N field.
type BooleanCodec struct{}

func (c BooleanCodec) Parse(slice []byte, name, title string) (any, []Warning) {
	v, w := ParseBoolean(slice, name, title)
	return v, w
}
func (c BooleanCodec) Format(v any) (string, error) { return FormatBoolean(v.(bool)) }
func (c BooleanCodec) Default() any                 { return false }
func (c BooleanCodec) Length() int                  { return 1 }

// FlagCodec is a fixed 1-byte Y/N/U field.
type FlagCodec struct{}

func (c FlagCodec) Parse(slice []byte, name, title string) (any, []Warning) {
	v, w := ParseFlag(slice, name, title)
	return v, w
}
func (c FlagCodec) Format(v any) (string, error) { return FormatFlag(v.(Flag)) }
func (c FlagCodec) Default() any                 { return FlagUnknown }
func (c FlagCodec) Length() int                  { return 1 }

// ShareCodec is a fixed 5-byte percentage field.
type ShareCodec struct{}

func (c ShareCodec) Parse(slice []byte, name, title string) (any, []Warning) {
	v, w := ParseShare(slice, name, title)
	return v, w
}
func (c ShareCodec) Format(v any) (string, error) { return FormatShare(v.(Share)) }
func (c ShareCodec) Default() any                 { return Share(0) }
func (c ShareCodec) Length() int                  { return 5 }
