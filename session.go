package crowdfund

import (
	"fmt"
	"iter"
)

// Store persists the two collections. Each method rewrites the whole
// backing document.
type Store interface {
	SaveAccounts(*Registry) error
	SaveProjects(*Ledger) error
}

// Session owns the account registry, the project ledger, and the single
// optional identity of the running process. Every mutating operation
// writes the affected store through immediately, so the backing files
// always reflect the in-memory state.
type Session struct {
	registry *Registry
	ledger   *Ledger
	store    Store
	identity string // email of the logged-in account, or ""
}

// NewSession creates a session over existing collections with no identity.
func NewSession(registry *Registry, ledger *Ledger, store Store) *Session {
	return &Session{registry: registry, ledger: ledger, store: store}
}

// Registry exposes the account registry for read-only uses (listing,
// rendering).
func (s *Session) Registry() *Registry { return s.registry }

// Ledger exposes the project ledger for read-only uses.
func (s *Session) Ledger() *Ledger { return s.ledger }

// Identity returns the logged-in email, if any.
func (s *Session) Identity() (string, bool) {
	return s.identity, s.identity != ""
}

// Register inserts a validated account and persists the account store.
func (s *Session) Register(a Account) error {
	if err := s.registry.Register(a); err != nil {
		return err
	}
	if err := s.store.SaveAccounts(s.registry); err != nil {
		return fmt.Errorf("could not save accounts: %w", err)
	}
	return nil
}

// Login authenticates and sets the session identity. A successful login
// silently replaces any prior identity; a failed one leaves it untouched.
func (s *Session) Login(email, password string) error {
	a, err := s.registry.Authenticate(email, password)
	if err != nil {
		return err
	}
	s.identity = a.Email
	return nil
}

// CreateProject validates, appends and persists a new project owned by the
// session identity, and returns its 1-based position. On any validation
// failure nothing is appended and nothing is written.
func (s *Session) CreateProject(title, details string, target Money, start, end DateTime) (int, error) {
	owner, ok := s.Identity()
	if !ok {
		return 0, ErrNotAuthenticated
	}
	p, err := NewProject(owner, title, details, target, start, end)
	if err != nil {
		return 0, err
	}
	position := s.ledger.Append(p)
	if err := s.store.SaveProjects(s.ledger); err != nil {
		return 0, fmt.Errorf("could not save projects: %w", err)
	}
	return position, nil
}

// ProjectView is one entry of a listing: the project at a position, and
// whether the session identity owns it.
type ProjectView struct {
	Project Project
	Owned   bool
}

// ListProjects enumerates the full ledger with 1-based positions. Entries
// owned by other accounts are still yielded (with Owned false) so that the
// positions shown are valid arguments to EditProject and DeleteProject;
// the caller renders them as a permission notice, never silently skips.
func (s *Session) ListProjects() (iter.Seq2[int, ProjectView], error) {
	owner, ok := s.Identity()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return func(yield func(int, ProjectView) bool) {
		for position, p := range s.ledger.Projects() {
			if !yield(position, ProjectView{Project: p, Owned: p.OwnerEmail == owner}) {
				return
			}
		}
	}, nil
}

// EditProject applies a patch to the project at a 1-based position and
// persists the ledger. Only non-blank patch fields overwrite.
func (s *Session) EditProject(position int, patch Patch) (Project, error) {
	owner, ok := s.Identity()
	if !ok {
		return Project{}, ErrNotAuthenticated
	}
	p, err := s.ledger.Edit(owner, position, patch)
	if err != nil {
		return Project{}, err
	}
	if err := s.store.SaveProjects(s.ledger); err != nil {
		return Project{}, fmt.Errorf("could not save projects: %w", err)
	}
	return p, nil
}

// DeleteProject removes the project at a 1-based position and persists the
// ledger.
func (s *Session) DeleteProject(position int) error {
	owner, ok := s.Identity()
	if !ok {
		return ErrNotAuthenticated
	}
	if err := s.ledger.Delete(owner, position); err != nil {
		return err
	}
	if err := s.store.SaveProjects(s.ledger); err != nil {
		return fmt.Errorf("could not save projects: %w", err)
	}
	return nil
}
