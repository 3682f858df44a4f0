package field

import "fmt"

// Share is a 5-digit percentage with two implied decimal places: the raw
// integer 5000 represents 50.00%. Valid range is 0..10000 inclusive.
type Share int

const (
	ShareMin Share = 0
	ShareMax Share = 10000
)

// Percent returns the share as a float64 percentage (e.g. 50.00).
func (s Share) Percent() float64 { return float64(s) / 100 }

func (s Share) String() string { return fmt.Sprintf("%.2f%%", s.Percent()) }

// ParseShare parses a 5-digit zero-padded share. Out-of-range values warn
// and default to zero.
func ParseShare(slice []byte, name, title string) (Share, []Warning) {
	n, warnings := ParseNumeric(slice, name, title, 5)
	if n < int64(ShareMin) || n > int64(ShareMax) {
		warnings = append(warnings, Malformed(name, title, string(slice), "share out of range 0..10000"))
		return 0, warnings
	}
	return Share(n), warnings
}

// FormatShare zero-fills to 5 digits; a Share outside the valid range is a
// caller error surfaced as overflow rather than silently clamped.
func FormatShare(v Share) (string, error) {
	if v < ShareMin || v > ShareMax {
		return "", &OverflowError{Value: v.String(), Length: 5}
	}
	return FormatNumeric(int64(v), 5)
}
