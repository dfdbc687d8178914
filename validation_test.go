package crowdfund

import (
	"errors"
	"testing"
)

func TestCheckPhone(t *testing.T) {
	testCases := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "010 prefix", phone: "01012345678", valid: true},
		{name: "011 prefix", phone: "01112345678", valid: true},
		{name: "012 prefix", phone: "01212345678", valid: true},
		{name: "013 prefix", phone: "01312345678", valid: false},
		{name: "too short", phone: "0101234567", valid: false},
		{name: "too long", phone: "010123456789", valid: false},
		{name: "not starting with 01", phone: "02012345678", valid: false},
		{name: "letters", phone: "010abcd5678", valid: false},
		{name: "empty", phone: "", valid: false},
		{name: "leading space", phone: " 01012345678", valid: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckPhone(tc.phone)
			if tc.valid && err != nil {
				t.Errorf("CheckPhone(%q) = %v, want nil", tc.phone, err)
			}
			if !tc.valid {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("CheckPhone(%q) = %v, want ErrInvalidFormat", tc.phone, err)
				}
			}
		})
	}
}

func TestCheckEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "simple", email: "a@x.com", valid: true},
		{name: "dotted local part", email: "first.last@example.org", valid: true},
		{name: "digits and underscore", email: "user_01@mail.co", valid: true},
		{name: "subdomain", email: "a@mail.example.com", valid: true},
		{name: "missing at", email: "a.x.com", valid: false},
		{name: "missing tld", email: "a@x", valid: false},
		{name: "one letter tld", email: "a@x.c", valid: false},
		{name: "empty", email: "", valid: false},
		{name: "space inside", email: "a b@x.com", valid: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckEmail(tc.email)
			if tc.valid && err != nil {
				t.Errorf("CheckEmail(%q) = %v, want nil", tc.email, err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("CheckEmail(%q) = %v, want ErrInvalidFormat", tc.email, err)
			}
		})
	}
}

func TestCheckName(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "letters only", value: "Ada", wantErr: nil},
		{name: "blank", value: "   ", wantErr: ErrEmpty},
		{name: "empty", value: "", wantErr: ErrEmpty},
		{name: "digits", value: "Ada2", wantErr: ErrInvalidFormat},
		{name: "space inside", value: "Ada Byron", wantErr: ErrInvalidFormat},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckName("first name", tc.value)
			if tc.wantErr == nil && err != nil {
				t.Errorf("CheckName(%q) = %v, want nil", tc.value, err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("CheckName(%q) = %v, want %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Money
		wantErr error
	}{
		{name: "integer", input: "100", want: EGP(100)},
		{name: "decimal", input: "250000.50", want: EGP(250000.50)},
		{name: "negative accepted", input: "-5", want: EGP(-5)}, // sign is deliberately unchecked
		{name: "not a number", input: "abc", wantErr: ErrInvalidNumber},
		{name: "blank", input: "  ", wantErr: ErrEmpty},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMoney(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseMoney(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) error = %v, want nil", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseMoney(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
