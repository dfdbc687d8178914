package crowdfund

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Account is a registered user identity with contact details and a
// credential. The password is stored as typed; see CredentialVerifier.
type Account struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	MobilePhone string `json:"mobile_phone"`
}

// NewAccount builds an Account, validating every field. Password
// confirmation (typing it twice) is a prompting concern and happens in the
// CLI, not here.
func NewAccount(firstName, lastName, email, password, phone string) (Account, error) {
	if err := CheckName("first name", firstName); err != nil {
		return Account{}, err
	}
	if err := CheckName("last name", lastName); err != nil {
		return Account{}, err
	}
	if err := CheckEmail(email); err != nil {
		return Account{}, err
	}
	if err := CheckPassword(password); err != nil {
		return Account{}, err
	}
	if err := CheckPhone(phone); err != nil {
		return Account{}, err
	}
	return Account{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Password:    password,
		MobilePhone: phone,
	}, nil
}

// CredentialVerifier compares a stored credential with a presented one.
// The registry default is plain equality for compatibility with existing
// account files; swapping in a hashed scheme is a single substitution here.
type CredentialVerifier interface {
	Verify(stored, presented string) bool
}

// PlainVerifier verifies credentials by byte equality.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, presented string) bool { return stored == presented }

// Registry holds all registered accounts, indexed by email.
type Registry struct {
	accounts map[string]Account
	verifier CredentialVerifier
}

// NewRegistry creates an empty registry with the plain credential verifier.
func NewRegistry() *Registry {
	return &Registry{
		accounts: make(map[string]Account),
		verifier: PlainVerifier{},
	}
}

// Register inserts a new account. An email can only ever be registered
// once: a duplicate attempt fails and leaves the existing record unchanged.
func (r *Registry) Register(a Account) error {
	if _, ok := r.accounts[a.Email]; ok {
		return fmt.Errorf("%q: %w", a.Email, ErrDuplicateAccount)
	}
	r.accounts[a.Email] = a
	return nil
}

// Authenticate looks up an email and verifies the presented password.
// Unknown email and wrong password return the same error, so a caller
// cannot probe for account existence.
func (r *Registry) Authenticate(email, password string) (Account, error) {
	a, ok := r.accounts[email]
	if !ok || !r.verifier.Verify(a.Password, password) {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

// Lookup returns the account registered with this email.
func (r *Registry) Lookup(email string) (Account, bool) {
	a, ok := r.accounts[email]
	return a, ok
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int { return len(r.accounts) }

// Accounts iterates over registered accounts, sorted by email.
func (r *Registry) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		emails := slices.Collect(maps.Keys(r.accounts))
		slices.Sort(emails)
		for _, email := range emails {
			if !yield(r.accounts[email]) {
				return
			}
		}
	}
}
