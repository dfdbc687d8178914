// Package cmd implements the CLI application to manage crowdfunding
// projects and the accounts that own them.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/crowdfund"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var usersFile = flag.String("users-file", "users.json", "Path to the accounts file (JSON object keyed by email)")
var projectsFile = flag.String("projects-file", "projects.json", "Path to the projects file (JSON array)")

// Commands lists every subcommand of the cfs tool. A main package
// registers them all on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&shellCmd{},
	&registerCmd{},
	&loginCmd{},
	&createCmd{},
	&projectsCmd{},
	&editCmd{},
	&deleteCmd{},
	&fmtCmd{},
	&queryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// fileStore persists both stores by rewriting their whole backing file
// after every mutation.
type fileStore struct {
	usersPath    string
	projectsPath string
}

func newFileStore() *fileStore {
	return &fileStore{usersPath: *usersFile, projectsPath: *projectsFile}
}

func (s *fileStore) SaveAccounts(registry *crowdfund.Registry) error {
	var buf bytes.Buffer
	if err := crowdfund.EncodeAccounts(&buf, registry); err != nil {
		return err
	}
	return os.WriteFile(s.usersPath, buf.Bytes(), 0644)
}

func (s *fileStore) SaveProjects(ledger *crowdfund.Ledger) error {
	var buf bytes.Buffer
	if err := crowdfund.EncodeProjects(&buf, ledger); err != nil {
		return err
	}
	return os.WriteFile(s.projectsPath, buf.Bytes(), 0644)
}

// loadRegistry reads the accounts file. A missing file is an empty
// registry, not an error.
func loadRegistry(path string) (*crowdfund.Registry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, accounts file does not exist, starting with an empty registry")
		return crowdfund.NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open accounts file %q: %w", path, err)
	}
	defer f.Close()
	return crowdfund.DecodeAccounts(f)
}

// loadLedger reads the projects file. A missing file is an empty ledger,
// not an error.
func loadLedger(path string) (*crowdfund.Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, projects file does not exist, starting with an empty ledger")
		return crowdfund.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open projects file %q: %w", path, err)
	}
	defer f.Close()
	return crowdfund.DecodeProjects(f)
}

// openSession loads both stores and wraps them in a session backed by the
// file store, so every mutation writes through to disk.
func openSession() (*crowdfund.Session, error) {
	registry, err := loadRegistry(*usersFile)
	if err != nil {
		return nil, err
	}
	ledger, err := loadLedger(*projectsFile)
	if err != nil {
		return nil, err
	}
	return crowdfund.NewSession(registry, ledger, newFileStore()), nil
}

// authenticate logs the session in from an -email flag and a password
// prompt, for the one-shot commands.
func authenticate(s *crowdfund.Session, email string, p *prompter) error {
	if email == "" {
		return errors.New("missing -email flag")
	}
	password, err := p.Secret("Password: ")
	if err != nil {
		return err
	}
	return s.Login(email, password)
}

// printMarkdown renders markdown for the terminal. If rendering fails the
// raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
