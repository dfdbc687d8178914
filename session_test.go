package crowdfund

import (
	"errors"
	"testing"
)

func TestSession_RegisterThenLogin(t *testing.T) {
	s, store := newTestSession()

	if err := s.Register(mustAccount("a@x.com", "p1")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if store.accountSaves != 1 {
		t.Errorf("accountSaves = %d, want 1", store.accountSaves)
	}

	if err := s.Login("a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, ok := s.Identity(); ok {
		t.Fatal("failed login must not set an identity")
	}

	if err := s.Login("a@x.com", "p1"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if id, ok := s.Identity(); !ok || id != "a@x.com" {
		t.Errorf("Identity() = %q, %v, want a@x.com, true", id, ok)
	}
}

func TestSession_LoginReplacesIdentity(t *testing.T) {
	s, _ := newTestSession()
	for _, email := range []string{"a@x.com", "b@x.com"} {
		if err := s.Register(mustAccount(email, "p")); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Login("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if err := s.Login("b@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if id, _ := s.Identity(); id != "b@x.com" {
		t.Errorf("Identity() = %q, want the later login to replace the prior one", id)
	}
}

func TestSession_CreateRequiresLogin(t *testing.T) {
	s, store := newTestSession()
	_, err := s.CreateProject("T", "D", EGP(100),
		MustParseDateTime("2024-01-01 10:00"), MustParseDateTime("2024-06-01 10:00"))
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("CreateProject() error = %v, want ErrNotAuthenticated", err)
	}
	if store.projectSaves != 0 {
		t.Errorf("projectSaves = %d, want 0", store.projectSaves)
	}
}

func TestSession_CreateInvalidRangeWritesNothing(t *testing.T) {
	s, store := newTestSession()
	if err := s.Register(mustAccount("a@x.com", "p1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Login("a@x.com", "p1"); err != nil {
		t.Fatal(err)
	}

	_, err := s.CreateProject("T", "D", EGP(100),
		MustParseDateTime("2024-01-01 10:00"), MustParseDateTime("2024-01-01 09:00"))
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("CreateProject() error = %v, want ErrInvalidTimeRange", err)
	}
	if s.Ledger().Len() != 0 {
		t.Errorf("ledger length = %d, want 0 after failed creation", s.Ledger().Len())
	}
	if store.projectSaves != 0 {
		t.Errorf("projectSaves = %d, want 0 after failed creation", store.projectSaves)
	}
}

func TestSession_WriteThrough(t *testing.T) {
	s, store := newTestSession()
	if err := s.Register(mustAccount("a@x.com", "p1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Login("a@x.com", "p1"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.CreateProject("T", "D", EGP(100),
		MustParseDateTime("2024-01-01 10:00"), MustParseDateTime("2024-06-01 10:00")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.EditProject(1, Patch{Title: "T2"}); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteProject(1); err != nil {
		t.Fatal(err)
	}

	// One whole-file write per successful mutation.
	if store.projectSaves != 3 {
		t.Errorf("projectSaves = %d, want 3", store.projectSaves)
	}

	// A failed edit adds none.
	if _, err := s.EditProject(1, Patch{Title: "gone"}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("EditProject(empty ledger) error = %v, want ErrOutOfRange", err)
	}
	if store.projectSaves != 3 {
		t.Errorf("projectSaves = %d, want still 3", store.projectSaves)
	}
}

func TestSession_ListKeepsFullLedgerPositions(t *testing.T) {
	s, _ := newTestSession()
	for _, email := range []string{"a@x.com", "b@x.com"} {
		if err := s.Register(mustAccount(email, "p")); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.Login("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateProject("by a", "D", EGP(1),
		MustParseDateTime("2024-01-01 10:00"), MustParseDateTime("2024-06-01 10:00")); err != nil {
		t.Fatal(err)
	}
	if err := s.Login("b@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateProject("by b", "D", EGP(1),
		MustParseDateTime("2024-01-01 10:00"), MustParseDateTime("2024-06-01 10:00")); err != nil {
		t.Fatal(err)
	}

	if err := s.Login("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	views, err := s.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}

	// Every entry advances the position, owned or not: positions refer to
	// the full two-item ledger.
	var owned, total int
	for position, view := range views {
		total++
		if view.Owned {
			owned++
			if position != 1 || view.Project.Title != "by a" {
				t.Errorf("owned entry at position %d (%q), want position 1 (by a)", position, view.Project.Title)
			}
		}
	}
	if total != 2 || owned != 1 {
		t.Errorf("total = %d owned = %d, want 2 and 1", total, owned)
	}
}

func TestSession_ListRequiresLogin(t *testing.T) {
	s, _ := newTestSession()
	if _, err := s.ListProjects(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("ListProjects() error = %v, want ErrNotAuthenticated", err)
	}
}
