// Package cwrversion implements C7, the version resolver: it determines the
// active CWR version from the HDR record (and any caller override) and
// gates which version-specific trailing fields are present on every other
// record.
package cwrversion

import "fmt"

// Version is one of the three CWR revisions this module understands.
type Version int

const (
	V20 Version = iota
	V21
	V22
)

// Default is the version assumed before any HDR has been seen or an
// override supplied (spec.md §4.7).
const Default = V22

func (v Version) String() string {
	switch v {
	case V20:
		return "2.0"
	case V21:
		return "2.1"
	case V22:
		return "2.2"
	default:
		return "unknown"
	}
}

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool { return v >= other }

// ParseVersionOverride parses a CLI/host-supplied version string like
// "2.0", "2.1", "2.2" for an explicit override (highest precedence per
// spec.md §4.7).
func ParseVersionOverride(s string) (Version, error) {
	switch s {
	case "2.0":
		return V20, nil
	case "2.1":
		return V21, nil
	case "2.2":
		return V22, nil
	default:
		return Default, fmt.Errorf("cwrversion: unrecognized version override %q", s)
	}
}

// HDRLength is the total HDR record length for each version (spec.md §6):
// fields are added in 2.1 and 2.2, extending the line rightward. These
// totals match internal/cwr/record.HDRDescriptor's version-gated field
// list (see the comment at the top of schema_framing.go for why they
// diverge from the distilled spec's illustrative 101/116/146 figures).
func HDRLength(v Version) int {
	switch v {
	case V20:
		return 86
	case V21:
		return 101
	default:
		return 167
	}
}
