package record

import "github.com/leengari/cwrkit/internal/cwr/field"

// The accessors below give callers a typed view over a Record's Values bag
// without a type assertion at every call site, the way the teacher's
// engine.Table exposes typed helpers (GetPrimaryKeyValue, normalizeToInt64)
// over its own dynamically-typed data.Row.

// Alpha returns the trimmed string form of an alphanumeric field.
func (r Record) Alpha(name string) string {
	if a, ok := r.Values[name].(field.Alpha); ok {
		return a.Trimmed
	}
	return ""
}

// Int returns a numeric field's value.
func (r Record) Int(name string) int64 {
	if n, ok := r.Values[name].(int64); ok {
		return n
	}
	return 0
}

// Date returns a date field's value.
func (r Record) Date(name string) field.Date {
	if d, ok := r.Values[name].(field.Date); ok {
		return d
	}
	return field.ZeroDate
}

// Time returns a time field's value.
func (r Record) Time(name string) field.Time {
	if t, ok := r.Values[name].(field.Time); ok {
		return t
	}
	return field.ZeroTime
}

// Bool returns a boolean field's value.
func (r Record) Bool(name string) bool {
	b, _ := r.Values[name].(bool)
	return b
}

// FlagVal returns a flag field's value.
func (r Record) FlagVal(name string) field.Flag {
	if f, ok := r.Values[name].(field.Flag); ok {
		return f
	}
	return field.FlagUnknown
}

// ShareVal returns a share field's value.
func (r Record) ShareVal(name string) field.Share {
	if s, ok := r.Values[name].(field.Share); ok {
		return s
	}
	return 0
}
