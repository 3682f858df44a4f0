package field

import "fmt"

// Warning is a structured diagnostic attached to one field within one line.
// Warnings never abort parsing; they are collected per line and returned
// alongside the (possibly partially-defaulted) record value.
type Warning struct {
	Field       string   // field name, e.g. "agreement_start_date"
	Title       string   // human title, e.g. "Agreement Start Date"
	Source      string   // raw source slice that failed to parse
	Severity    Severity
	Description string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s (%s): %s (source=%q)", w.Severity, w.Field, w.Title, w.Description, w.Source)
}

// ShortField builds the Warning emitted when a field's slice is shorter
// than its declared column width (the line was truncated).
func ShortField(name, title, source string) Warning {
	return Warning{
		Field:       name,
		Title:       title,
		Source:      source,
		Severity:    Warning,
		Description: "field slice shorter than declared length",
	}
}

// Malformed builds the Warning emitted when a codec rejects a slice outright.
func Malformed(name, title, source, reason string) Warning {
	return Warning{
		Field:       name,
		Title:       title,
		Source:      source,
		Severity:    Warning,
		Description: reason,
	}
}

// CriticalF builds a Critical-severity warning for record-level failures
// (unrecognized tag, truncated line) that have no single field to blame.
func CriticalF(name, title, source, format string, args ...any) Warning {
	return Warning{
		Field:       name,
		Title:       title,
		Source:      source,
		Severity:    Critical,
		Description: fmt.Sprintf(format, args...),
	}
}
