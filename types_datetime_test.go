package crowdfund

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseDateTime(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "2024-01-01 10:00"},
		{name: "end of year", input: "2024-12-31 23:59"},
		{name: "single digit month", input: "2024-1-01 10:00", wantErr: ErrInvalidFormat},
		{name: "date only", input: "2024-01-01", wantErr: ErrInvalidFormat},
		{name: "with seconds", input: "2024-01-01 10:00:00", wantErr: ErrInvalidFormat},
		{name: "T separator", input: "2024-01-01T10:00", wantErr: ErrInvalidFormat},
		{name: "month 13", input: "2024-13-01 10:00", wantErr: ErrInvalidDate},
		{name: "day 32", input: "2024-01-32 10:00", wantErr: ErrInvalidDate},
		{name: "hour 25", input: "2024-01-01 25:00", wantErr: ErrInvalidDate},
		{name: "empty", input: "", wantErr: ErrInvalidFormat},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseDateTime(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseDateTime(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateTime(%q) error = %v, want nil", tc.input, err)
			}
			if d.IsRaw() {
				t.Errorf("ParseDateTime(%q) produced a raw value", tc.input)
			}
			if got := d.String(); got != tc.input {
				t.Errorf("String() = %q, want %q", got, tc.input)
			}
		})
	}
}

func TestRawDateTime(t *testing.T) {
	// The raw form checks only the pattern: a calendar-impossible value is
	// accepted and stored verbatim. This matches the edit path of the
	// ledger file format.
	d, err := RawDateTime("2024-13-01 10:00")
	if err != nil {
		t.Fatalf("RawDateTime() error = %v, want nil", err)
	}
	if !d.IsRaw() {
		t.Fatal("RawDateTime() want a raw value")
	}
	if got := d.String(); got != "2024-13-01 10:00" {
		t.Errorf("String() = %q, want the verbatim input", got)
	}

	if _, err := RawDateTime("not a date"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("RawDateTime(invalid) error = %v, want ErrInvalidFormat", err)
	}
}

func TestDateTimeMarshalForms(t *testing.T) {
	// A parsed value serializes in ISO-8601 storage form, a raw value
	// serializes verbatim. Both forms must load back losslessly.
	testCases := []struct {
		name string
		in   DateTime
		want string
	}{
		{name: "parsed", in: MustParseDateTime("2024-01-01 10:00"), want: `"2024-01-01T10:00:00"`},
		{name: "raw", in: mustRaw("2024-06-15 08:30"), want: `"2024-06-15 08:30"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tc.want {
				t.Errorf("Marshal() = %s, want %s", data, tc.want)
			}

			var back DateTime
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !back.Equal(tc.in) {
				t.Errorf("round trip = %v, want %v", back, tc.in)
			}
		})
	}
}

func TestDateTimeBefore(t *testing.T) {
	early := MustParseDateTime("2024-01-01 09:00")
	late := MustParseDateTime("2024-01-01 10:00")
	if !early.Before(late) {
		t.Error("09:00 should be before 10:00")
	}
	if late.Before(early) {
		t.Error("10:00 should not be before 09:00")
	}
	if early.Before(early) {
		t.Error("Before must be strict")
	}
}

func mustRaw(s string) DateTime {
	d, err := RawDateTime(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}
