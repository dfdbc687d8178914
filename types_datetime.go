package crowdfund

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// DateTimeFormat is the input format for project times: minute granularity,
// 24-hour clock, no seconds.
const DateTimeFormat = "2006-01-02 15:04"

// dateTimeStorageFormat is the format used when a parsed value is persisted.
// It matches ISO-8601 without a zone, the format found in existing ledger
// files.
const dateTimeStorageFormat = "2006-01-02T15:04:05"

// dateTimePattern is checked before parsing, so that "2024-1-1 10:00" is
// rejected as a format error rather than accepted leniently.
var dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)

// DateTime represents a project time with minute granularity.
//
// A DateTime is either parsed (a real calendar value) or raw (a
// pattern-valid string that was never calendar-checked). The edit path
// stores raw values; see Ledger.Edit.
type DateTime struct {
	t   time.Time
	raw string
}

// ParseDateTime parses a "YYYY-MM-DD HH:MM" string into a calendar value.
// It fails with ErrInvalidFormat when the pattern does not match, and with
// ErrInvalidDate when the pattern matches but the calendar value does not
// exist (month 13, day 31 of February, hour 25...).
func ParseDateTime(s string) (DateTime, error) {
	if !dateTimePattern.MatchString(s) {
		return DateTime{}, fmt.Errorf("date-time %q want format %q: %w", s, DateTimeFormat, ErrInvalidFormat)
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("date-time %q: %w", s, ErrInvalidDate)
	}
	return DateTime{t: t}, nil
}

// RawDateTime validates s against the date-time pattern and keeps it as an
// unparsed string. No calendar check is performed.
func RawDateTime(s string) (DateTime, error) {
	if !dateTimePattern.MatchString(s) {
		return DateTime{}, fmt.Errorf("date-time %q want format %q: %w", s, DateTimeFormat, ErrInvalidFormat)
	}
	return DateTime{raw: s}, nil
}

// MustParseDateTime is like ParseDateTime but panics on error.
func MustParseDateTime(s string) DateTime {
	d, err := ParseDateTime(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// IsRaw reports whether d holds an unparsed string.
func (d DateTime) IsRaw() bool { return d.raw != "" }

// IsZero reports whether d is the zero value.
func (d DateTime) IsZero() bool { return d.raw == "" && d.t.IsZero() }

// Time returns the calendar value. For a raw DateTime it is a best-effort
// parse of the stored string (zero time if the string is not a calendar
// value).
func (d DateTime) Time() time.Time {
	if d.raw != "" {
		t, _ := time.Parse(DateTimeFormat, d.raw)
		return t
	}
	return d.t
}

// Before reports whether d is strictly earlier than x.
func (d DateTime) Before(x DateTime) bool { return d.Time().Before(x.Time()) }

// Equal reports whether two DateTimes hold the same value in the same form.
func (d DateTime) Equal(x DateTime) bool {
	return d.raw == x.raw && d.t.Equal(x.t)
}

// String formats the value in the input format. A raw value is returned
// verbatim.
func (d DateTime) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.t.Format(DateTimeFormat)
}

// MarshalJSON writes a parsed value in the ISO-8601 storage format, and a
// raw value as-is. This asymmetry reproduces the ledger files written by
// the original system, where edited times are stored unparsed.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.raw != "" {
		return json.Marshal(d.raw)
	}
	return json.Marshal(d.t.Format(dateTimeStorageFormat))
}

// UnmarshalJSON accepts both storage forms, so a ledger written by either
// the create path or the edit path loads back losslessly.
func (d *DateTime) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if t, err := time.Parse(dateTimeStorageFormat, str); err == nil {
		*d = DateTime{t: t}
		return nil
	}
	if dateTimePattern.MatchString(str) {
		*d = DateTime{raw: str}
		return nil
	}
	return fmt.Errorf("date-time %q is neither %q nor %q: %w", str, dateTimeStorageFormat, DateTimeFormat, ErrInvalidFormat)
}

var _ json.Marshaler = (*DateTime)(nil)
var _ json.Unmarshaler = (*DateTime)(nil)
