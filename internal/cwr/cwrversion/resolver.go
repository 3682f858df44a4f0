package cwrversion

import (
	"strconv"
	"strings"

	"github.com/leengari/cwrkit/internal/cwr/field"
)

// Resolver tracks the active CWR version for one parse session. Precedence
// (highest to lowest, per spec.md §4.7): explicit caller override >
// HDR-declared version > length-inferred version. The resolver is
// idempotent once set: a later HDR that disagrees only produces a warning,
// it never changes the already-active version.
type Resolver struct {
	active   Version
	resolved bool
	override bool
}

// NewResolver starts a resolver at Default; if override is non-nil, it is
// locked in immediately and no HDR content can change it.
func NewResolver(override *Version) *Resolver {
	r := &Resolver{active: Default}
	if override != nil {
		r.active = *override
		r.resolved = true
		r.override = true
	}
	return r
}

// Active returns the currently active version.
func (r *Resolver) Active() Version { return r.active }

// ObserveHDR inspects a raw HDR line and adopts its declared version if the
// resolver has not already been pinned by an explicit override. The
// "Version" field added in 2.2 sits at 0-based 101:104, right after the
// 15-byte character set (record.HDRDescriptor's layout); the "Revision"
// field after it (104:107) is not read. When the Version field is absent or
// unparseable, the version is inferred from the observed line length: a
// short line implies 2.0/2.1.
func (r *Resolver) ObserveHDR(line []byte) []field.Warning {
	var warnings []field.Warning
	detected := inferFromLength(len(line))
	if len(line) >= 104 {
		if v, ok := parseDeclaredVersion(line[101:104]); ok {
			detected = v
		}
	}

	if r.override {
		return warnings
	}
	if !r.resolved {
		r.active = detected
		r.resolved = true
		return warnings
	}
	if detected != r.active {
		warnings = append(warnings, field.Warning{
			Field:       "version",
			Title:       "Version",
			Source:      string(line),
			Severity:    field.Warning,
			Description: "a later HDR declares a different CWR version; retaining the first-resolved version " + r.active.String(),
		})
	}
	return warnings
}

// parseDeclaredVersion parses the 3-byte Version column: "2.0"/"2.1"/"2.2"
// and the digit forms "020"/"021"/"022" (or "20"/"21"/"22" once blanks and
// leading zeros are trimmed) map to one of the three supported versions;
// anything else is reported as not-present.
func parseDeclaredVersion(slice []byte) (Version, bool) {
	s := strings.TrimSpace(string(slice))
	switch s {
	case "2.0", "020", "2.0.":
		return V20, true
	case "2.1", "021":
		return V21, true
	case "2.2", "022":
		return V22, true
	default:
		if n, err := strconv.Atoi(strings.TrimLeft(s, "0")); err == nil {
			switch n {
			case 20:
				return V20, true
			case 21:
				return V21, true
			case 22:
				return V22, true
			}
		}
		return Default, false
	}
}

// inferFromLength falls back to CWR's historical HDR lengths when the
// Version column is absent (2.0 files do not carry it at all).
func inferFromLength(n int) Version {
	switch {
	case n >= HDRLength(V22):
		return V22
	case n >= HDRLength(V21):
		return V21
	default:
		return V20
	}
}
