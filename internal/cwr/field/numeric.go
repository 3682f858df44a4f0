package field

import (
	"strconv"
	"strings"
)

// ParseNumeric trims leading zeros and parses the remainder as a decimal
// integer. A slice containing any non-digit (other than the padding
// itself) is malformed: it warns and defaults to zero. A slice shorter
// than declaredLen is reported with ShortField and defaulted to zero
// without attempting to parse the partial bytes (spec.md §4.1, "Error
// kinds" ShortField: emit Warning, default, continue).
func ParseNumeric(slice []byte, name, title string, declaredLen int) (int64, []Warning) {
	if len(slice) < declaredLen {
		return 0, []Warning{ShortField(name, title, string(slice))}
	}
	var warnings []Warning
	raw := string(slice)
	trimmed := strings.TrimLeft(raw, " ")
	if trimmed == "" {
		return 0, warnings
	}
	if strings.TrimLeft(trimmed, "-0123456789") != "" {
		warnings = append(warnings, Malformed(name, title, raw, "not a valid unsigned integer"))
		return 0, warnings
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		warnings = append(warnings, Malformed(name, title, raw, "not a valid unsigned integer"))
		return 0, warnings
	}
	if n < 0 {
		warnings = append(warnings, Malformed(name, title, raw, "negative value in numeric field"))
		return 0, warnings
	}
	return n, warnings
}

// FormatNumeric right-justifies and zero-fills to length. Overflow (the
// value needs more digits than the column allows) is an error: the writer
// never silently truncates the most significant digits.
func FormatNumeric(v int64, length int) (string, error) {
	if v < 0 {
		return "", &OverflowError{Value: strconv.FormatInt(v, 10), Length: length}
	}
	s := strconv.FormatInt(v, 10)
	if len(s) > length {
		return "", &OverflowError{Value: s, Length: length}
	}
	return strings.Repeat("0", length-len(s)) + s, nil
}
