package field

import (
	"fmt"
	"strconv"
)

// Time is a CWR HHMMSS time-of-day or duration value.
type Time struct {
	Hour, Minute, Second int
	Zero                 bool
}

// String renders HHMMSS, or "000000" for the zero sentinel.
func (t Time) String() string {
	if t.Zero {
		return "000000"
	}
	return fmt.Sprintf("%02d%02d%02d", t.Hour, t.Minute, t.Second)
}

// ZeroTime is the canonical zero/absent sentinel.
var ZeroTime = Time{Zero: true}

// ParseTime accepts a 6-byte HHMMSS slice, validating HH<24, MM<60, SS<60.
func ParseTime(slice []byte, name, title string) (Time, []Warning) {
	var warnings []Warning
	raw := string(slice)
	if len(slice) < 6 {
		warnings = append(warnings, ShortField(name, title, raw))
		return ZeroTime, warnings
	}
	if raw == "000000" {
		return ZeroTime, warnings
	}
	h, errH := strconv.Atoi(raw[0:2])
	m, errM := strconv.Atoi(raw[2:4])
	s, errS := strconv.Atoi(raw[4:6])
	if errH != nil || errM != nil || errS != nil || h >= 24 || m >= 60 || s >= 60 {
		warnings = append(warnings, Malformed(name, title, raw, "not a valid HHMMSS time"))
		return ZeroTime, warnings
	}
	return Time{Hour: h, Minute: m, Second: s}, warnings
}

// FormatTime always produces exactly 6 bytes; it cannot overflow.
func FormatTime(v Time) (string, error) {
	return v.String(), nil
}
