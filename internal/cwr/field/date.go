package field

import (
	"fmt"
	"strconv"
)

// Date is a CWR YYYYMMDD date. Zero reports the all-zeros "absent" sentinel.
type Date struct {
	Year, Month, Day int
	Zero             bool
}

// String renders YYYYMMDD, or "00000000" for the absent sentinel.
func (d Date) String() string {
	if d.Zero {
		return "00000000"
	}
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// ZeroDate is the canonical "absent" sentinel value.
var ZeroDate = Date{Zero: true}

// ParseDate accepts an 8-byte YYYYMMDD slice. An all-zeros slice parses to
// the absent sentinel without warning — that is the documented "no date"
// convention, not a malformed value. Any other unparsable value warns and
// yields the sentinel so the rest of the record remains inspectable.
func ParseDate(slice []byte, name, title string) (Date, []Warning) {
	var warnings []Warning
	raw := string(slice)
	if len(slice) < 8 {
		warnings = append(warnings, ShortField(name, title, raw))
		return ZeroDate, warnings
	}
	if raw == "00000000" {
		return ZeroDate, warnings
	}
	year, errY := strconv.Atoi(raw[0:4])
	month, errM := strconv.Atoi(raw[4:6])
	day, errD := strconv.Atoi(raw[6:8])
	if errY != nil || errM != nil || errD != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		warnings = append(warnings, Malformed(name, title, raw, "not a valid YYYYMMDD date"))
		return ZeroDate, warnings
	}
	return Date{Year: year, Month: month, Day: day}, warnings
}

// FormatDate always produces exactly 8 bytes; it cannot overflow.
func FormatDate(v Date) (string, error) {
	return v.String(), nil
}
