package crowdfund

import (
	"fmt"
	"regexp"
	"strings"
)

// Field validators are pure: they take an input string and return a
// descriptive error, never prompting. The interactive shell wraps them in
// its own re-prompt loop; one-shot commands and tests call them directly
// and fail once.

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._]+@[A-Za-z0-9.]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^01[0-2]\d{8}$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z]+$`)
)

// CheckRequired verifies that s is not blank after trimming whitespace.
// The value is stored as typed, not trimmed.
func CheckRequired(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s: %w", field, ErrEmpty)
	}
	return nil
}

// CheckName verifies a first or last name: non-blank, letters only.
func CheckName(field, s string) error {
	if err := CheckRequired(field, s); err != nil {
		return err
	}
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s %q must contain letters only: %w", field, s, ErrInvalidFormat)
	}
	return nil
}

// CheckEmail verifies the local@domain.tld shape of an email address.
func CheckEmail(s string) error {
	if !emailPattern.MatchString(s) {
		return fmt.Errorf("email %q: %w", s, ErrInvalidFormat)
	}
	return nil
}

// CheckPhone verifies an Egyptian mobile number: exactly 11 digits,
// starting with 010, 011 or 012.
func CheckPhone(s string) error {
	if !phonePattern.MatchString(s) {
		return fmt.Errorf("phone %q want 11 digits starting with 010, 011 or 012: %w", s, ErrInvalidFormat)
	}
	return nil
}

// CheckPassword verifies that a password is not blank. No other policy is
// enforced, matching the source system.
func CheckPassword(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("password: %w", ErrEmpty)
	}
	return nil
}
