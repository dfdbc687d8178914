package crowdfund

import "errors"

// Sentinel errors returned by validators and store operations. They are
// always wrapped with context, so callers match them with errors.Is.
var (
	// ErrInvalidFormat reports an input that does not match its expected
	// shape (name, email, phone, or date-time pattern).
	ErrInvalidFormat = errors.New("invalid format")
	// ErrEmpty reports a required field that is blank after trimming.
	ErrEmpty = errors.New("required field is empty")
	// ErrDuplicateAccount reports a registration attempt with an email that
	// is already registered.
	ErrDuplicateAccount = errors.New("email already registered")
	// ErrInvalidCredentials reports a failed authentication. The same error
	// covers an unknown email and a wrong password, so callers cannot learn
	// whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotAuthenticated reports an operation that requires a logged-in
	// identity when there is none.
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrInvalidNumber reports an amount that does not parse as a number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidTimeRange reports a project whose start time is not
	// strictly before its end time.
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	// ErrOutOfRange reports a project position outside the ledger.
	ErrOutOfRange = errors.New("project position out of range")
	// ErrForbidden reports an operation on a project owned by someone else.
	ErrForbidden = errors.New("permission denied")
	// ErrInvalidDate reports a date-time that matches the expected pattern
	// but is not a valid calendar value (e.g. month 13).
	ErrInvalidDate = errors.New("invalid calendar date")
)
