package field

import (
	"fmt"
	"strings"
)

// Alpha is a fixed-length alphanumeric field value. Trimmed holds the
// presentation value (trailing blanks stripped); Raw retains the exact
// source slice so Format can reproduce non-standard trailing whitespace
// byte-for-byte instead of always re-padding from the trimmed form (see
// DESIGN.md, "trailing-whitespace fidelity").
type Alpha struct {
	Trimmed string
	Raw     string
}

// String returns the presentation (trimmed) value.
func (a Alpha) String() string { return a.Trimmed }

// ParseAlpha takes the slice as-is, preserving internal characters, and
// derives the trimmed presentation value by stripping trailing ASCII
// spaces. A slice shorter than declaredLen is reported with ShortField and
// defaulted to the zero Alpha rather than returned as a partial value
// (spec.md §4.1, "Error kinds" ShortField: emit Warning, default, continue).
func ParseAlpha(slice []byte, name, title string, declaredLen int) (Alpha, []Warning) {
	if len(slice) < declaredLen {
		return Alpha{}, []Warning{ShortField(name, title, string(slice))}
	}
	raw := string(slice)
	return Alpha{
		Trimmed: strings.TrimRight(raw, " "),
		Raw:     raw,
	}, nil
}

// FormatAlpha left-justifies and space-pads to length. If the caller's raw
// slice is itself a legal padding of the trimmed value (same trimmed form,
// length equal to the declared width) it is reproduced verbatim, preserving
// non-standard internal-trailing-space layouts on round trip; otherwise the
// trimmed value is re-padded from scratch. Overflow (trimmed value longer
// than length) is a caller error — the writer must not silently truncate.
func FormatAlpha(v Alpha, length int) (string, error) {
	if len(v.Raw) == length && strings.TrimRight(v.Raw, " ") == v.Trimmed {
		return v.Raw, nil
	}
	if len(v.Trimmed) > length {
		return "", &OverflowError{Value: v.Trimmed, Length: length}
	}
	return v.Trimmed + strings.Repeat(" ", length-len(v.Trimmed)), nil
}

// OverflowError is returned by Format when a value is longer than its
// declared column width. The writer must surface this to its caller rather
// than truncate silently (spec.md §7, OverflowOnFormat).
type OverflowError struct {
	Value  string
	Length int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("value %q exceeds declared field length %d", e.Value, e.Length)
}
