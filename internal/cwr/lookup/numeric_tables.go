package lookup

import (
	"fmt"

	"github.com/leengari/cwrkit/internal/cwr/field"
)

// TISCode is a CISAC TIS (Territory Information System) numeric code. The
// real TIS table has several thousand entries (countries, regions, and
// historical aggregates); rather than hardcode an unmaintainable full
// enumeration, this is a range-validated numeric domain type — see
// DESIGN.md "TIS/Society numeric tables".
type TISCode int

const TISWorld TISCode = 2136 // CISAC's "World" aggregate territory

// ParseTISCode parses a 4-digit TIS code, warning on a value outside the
// valid 0000..9999 range.
func ParseTISCode(slice []byte, name, title string) (TISCode, []field.Warning) {
	n, warnings := field.ParseNumeric(slice, name, title, 4)
	if n < 0 || n > 9999 {
		warnings = append(warnings, field.Malformed(name, title, string(slice), "TIS code out of range 0000..9999"))
		return 0, warnings
	}
	return TISCode(n), warnings
}

func FormatTISCode(v TISCode) (string, error) {
	if v < 0 || v > 9999 {
		return "", &field.OverflowError{Value: fmt.Sprintf("%d", v), Length: 4}
	}
	return field.FormatNumeric(int64(v), 4)
}

// TISCodec adapts ParseTISCode/FormatTISCode to field.Codec.
type TISCodec struct{}

func (TISCodec) Parse(slice []byte, name, title string) (any, []field.Warning) {
	v, w := ParseTISCode(slice, name, title)
	return v, w
}
func (TISCodec) Format(v any) (string, error) { return FormatTISCode(v.(TISCode)) }
func (TISCodec) Default() any                 { return TISCode(0) }
func (TISCodec) Length() int                  { return 4 }

// SocietyCode is a CISAC collective-management-society numeric code. Like
// TISCode, the full table (hundreds of historical and active societies)
// is reconstructed here as a range check rather than a hardcoded
// enumeration.
type SocietyCode int

// ParseSocietyCode parses a 3-digit society code, warning on a value
// outside 000..999; a blank field parses to 000.
func ParseSocietyCode(slice []byte, name, title string) (SocietyCode, []field.Warning) {
	n, warnings := field.ParseNumeric(slice, name, title, 3)
	if n < 0 || n > 999 {
		warnings = append(warnings, field.Malformed(name, title, string(slice), "society code out of range 000..999"))
		return 0, warnings
	}
	return SocietyCode(n), warnings
}

func FormatSocietyCode(v SocietyCode) (string, error) {
	if v < 0 || v > 999 {
		return "", &field.OverflowError{Value: fmt.Sprintf("%d", v), Length: 3}
	}
	return field.FormatNumeric(int64(v), 3)
}

// SocietyCodec adapts ParseSocietyCode/FormatSocietyCode to field.Codec.
type SocietyCodec struct{}

func (SocietyCodec) Parse(slice []byte, name, title string) (any, []field.Warning) {
	v, w := ParseSocietyCode(slice, name, title)
	return v, w
}
func (SocietyCodec) Format(v any) (string, error) { return FormatSocietyCode(v.(SocietyCode)) }
func (SocietyCodec) Default() any                 { return SocietyCode(0) }
func (SocietyCodec) Length() int                  { return 3 }

// WorksCount bounds the number of works referenced by a transaction header
// to the 1..99999 range CWR allows.
type WorksCount int

func ParseWorksCount(slice []byte, name, title string) (WorksCount, []field.Warning) {
	n, warnings := field.ParseNumeric(slice, name, title, 5)
	if n < 1 || n > 99999 {
		warnings = append(warnings, field.Malformed(name, title, string(slice), "works count out of range 1..99999"))
		return 0, warnings
	}
	return WorksCount(n), warnings
}

func FormatWorksCount(v WorksCount) (string, error) {
	if v < 0 || v > 99999 {
		return "", &field.OverflowError{Value: fmt.Sprintf("%d", v), Length: 5}
	}
	return field.FormatNumeric(int64(v), 5)
}

// WorksCountCodec adapts ParseWorksCount/FormatWorksCount to field.Codec.
type WorksCountCodec struct{}

func (WorksCountCodec) Parse(slice []byte, name, title string) (any, []field.Warning) {
	v, w := ParseWorksCount(slice, name, title)
	return v, w
}
func (WorksCountCodec) Format(v any) (string, error) { return FormatWorksCount(v.(WorksCount)) }
func (WorksCountCodec) Default() any                 { return WorksCount(0) }
func (WorksCountCodec) Length() int                  { return 5 }
