package crowdfund

// EGP is a helper for tests to create money in the ledger currency from a const.
func EGP(v float64) Money { return M(v, DefaultCurrency) }

// memStore is an in-memory Store that counts writes, so tests can assert
// the write-through policy (exactly one save per successful mutation, none
// on failure).
type memStore struct {
	accountSaves int
	projectSaves int
}

func (m *memStore) SaveAccounts(*Registry) error { m.accountSaves++; return nil }
func (m *memStore) SaveProjects(*Ledger) error   { m.projectSaves++; return nil }

// newTestSession builds a session over empty stores.
func newTestSession() (*Session, *memStore) {
	store := &memStore{}
	return NewSession(NewRegistry(), NewLedger(), store), store
}

// mustAccount is a helper for tests to build a valid account.
func mustAccount(email, password string) Account {
	a, err := NewAccount("Ada", "Lovelace", email, password, "01012345678")
	if err != nil {
		panic(err.Error())
	}
	return a
}
