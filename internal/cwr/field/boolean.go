package field

// ParseBoolean accepts exactly "Y" or "N"; anything else warns and
// defaults to false.
func ParseBoolean(slice []byte, name, title string) (bool, []Warning) {
	var warnings []Warning
	raw := string(slice)
	switch raw {
	case "Y":
		return true, warnings
	case "N":
		return false, warnings
	default:
		warnings = append(warnings, Malformed(name, title, raw, "boolean field must be Y or N"))
		return false, warnings
	}
}

// FormatBoolean renders "Y" or "N". It cannot overflow.
func FormatBoolean(v bool) (string, error) {
	if v {
		return "Y", nil
	}
	return "N", nil
}

// Flag is a tri-state Y/N/U (unknown) indicator, used where CWR
// distinguishes "explicitly no" from "not asserted".
type Flag byte

const (
	FlagYes     Flag = 'Y'
	FlagNo      Flag = 'N'
	FlagUnknown Flag = 'U'
)

func (f Flag) String() string { return string(rune(f)) }

// ParseFlag accepts "Y", "N", or "U"; anything else warns and defaults to
// FlagUnknown.
func ParseFlag(slice []byte, name, title string) (Flag, []Warning) {
	var warnings []Warning
	raw := string(slice)
	switch raw {
	case "Y":
		return FlagYes, warnings
	case "N":
		return FlagNo, warnings
	case "U":
		return FlagUnknown, warnings
	default:
		warnings = append(warnings, Malformed(name, title, raw, "flag field must be Y, N, or U"))
		return FlagUnknown, warnings
	}
}

// FormatFlag renders the single flag byte. It cannot overflow.
func FormatFlag(v Flag) (string, error) {
	return v.String(), nil
}
