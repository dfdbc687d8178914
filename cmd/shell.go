package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/crowdfund"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive menu session" }
func (*shellCmd) Usage() string {
	return `cfs shell

  Starts the interactive session: a numbered menu to register, log in, and
  create, view, edit or delete projects. State is saved after every change.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	shell := &Shell{session: session, p: newStdPrompter(), out: os.Stdout}
	if err := shell.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Shell is the interactive menu session over one crowdfund session.
type Shell struct {
	session *crowdfund.Session
	p       *prompter
	out     io.Writer
}

const menu = `1. Register
2. Login
3. Create Project
4. View Projects
5. Edit Project
6. Delete Project
7. Exit
`

// Run loops on the menu until the user exits or input ends. Data errors
// never terminate the loop: they are printed and the menu is shown again.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.p.Line("Choose: ")
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.register()
		case "2":
			err = s.login()
		case "3":
			err = s.create()
		case "4":
			err = s.view()
		case "5":
			err = s.edit()
		case "6":
			err = s.delete()
		case "7":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please choose from 1 to 7.")
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// register walks through the registration prompts. Format errors re-prompt
// in place; a duplicate email aborts the operation.
func (s *Shell) register() error {
	firstName, err := s.p.Ask("First Name: ", func(v string) error { return crowdfund.CheckName("first name", v) })
	if err != nil {
		return err
	}
	lastName, err := s.p.Ask("Last Name: ", func(v string) error { return crowdfund.CheckName("last name", v) })
	if err != nil {
		return err
	}
	email, err := s.p.Ask("Email: ", crowdfund.CheckEmail)
	if err != nil {
		return err
	}
	if _, ok := s.session.Registry().Lookup(email); ok {
		fmt.Fprintln(s.out, "Email already registered")
		return nil
	}
	password, err := s.p.SecretCheck("Password: ", crowdfund.CheckPassword)
	if err != nil {
		return err
	}
	for {
		confirm, err := s.p.Secret("Confirm Password: ")
		if err != nil {
			return err
		}
		if confirm == password {
			break
		}
		fmt.Fprintln(s.out, "Passwords don't match")
		password, err = s.p.SecretCheck("Password: ", crowdfund.CheckPassword)
		if err != nil {
			return err
		}
	}
	phone, err := s.p.Ask("Phone: ", crowdfund.CheckPhone)
	if err != nil {
		return err
	}

	account, err := crowdfund.NewAccount(firstName, lastName, email, password, phone)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	if err := s.session.Register(account); err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	fmt.Fprintln(s.out, "Registration successful.")
	return nil
}

func (s *Shell) login() error {
	email, err := s.p.Line("Email: ")
	if err != nil {
		return err
	}
	password, err := s.p.Secret("Password: ")
	if err != nil {
		return err
	}
	if err := s.session.Login(email, password); err != nil {
		fmt.Fprintln(s.out, "Invalid email or password.")
		return nil
	}
	fmt.Fprintln(s.out, "Login successful.")
	return nil
}

func (s *Shell) create() error {
	if _, ok := s.session.Identity(); !ok {
		fmt.Fprintln(s.out, "Please log in before creating a project.")
		return nil
	}

	title, err := s.p.Ask("Enter project title: ", func(v string) error { return crowdfund.CheckRequired("title", v) })
	if err != nil {
		return err
	}
	details, err := s.p.Ask("Enter project details: ", func(v string) error { return crowdfund.CheckRequired("details", v) })
	if err != nil {
		return err
	}
	var target crowdfund.Money
	_, err = s.p.Ask("Enter total target: ", func(v string) error {
		m, err := crowdfund.ParseMoney(v)
		if err != nil {
			return err
		}
		target = m
		return nil
	})
	if err != nil {
		return err
	}
	start, err := s.askDateTime("Enter start time (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return err
	}
	end, err := s.askDateTime("Enter end time (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return err
	}

	position, err := s.session.CreateProject(title, details, target, start, end)
	if errors.Is(err, crowdfund.ErrInvalidTimeRange) {
		// The whole creation fails: nothing is appended, nothing written.
		fmt.Fprintln(s.out, "Start time should be before End time.")
		return nil
	}
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	fmt.Fprintf(s.out, "Project %d created successfully.\n", position)
	return nil
}

// askDateTime re-prompts until the input is a pattern-valid calendar value.
func (s *Shell) askDateTime(label string) (crowdfund.DateTime, error) {
	var d crowdfund.DateTime
	_, err := s.p.Ask(label, func(v string) error {
		parsed, err := crowdfund.ParseDateTime(v)
		if err != nil {
			return err
		}
		d = parsed
		return nil
	})
	return d, err
}

func (s *Shell) view() error {
	views, err := s.session.ListProjects()
	if err != nil {
		fmt.Fprintln(s.out, "Please log in before viewing projects.")
		return nil
	}
	empty := true
	for position, view := range views {
		empty = false
		if !view.Owned {
			fmt.Fprintf(s.out, "You don't have permission to view project %d.\n", position)
			continue
		}
		p := view.Project
		fmt.Fprintf(s.out, "Project %d:\n", position)
		fmt.Fprintf(s.out, "    Title: %s\n", p.Title)
		fmt.Fprintf(s.out, "    Details: %s\n", p.Details)
		fmt.Fprintf(s.out, "    Total Target: %s\n", p.TotalTarget)
		fmt.Fprintf(s.out, "    Start Time: %s\n", p.StartTime)
		fmt.Fprintf(s.out, "    End Time: %s\n", p.EndTime)
	}
	if empty {
		fmt.Fprintln(s.out, "No projects available.")
	}
	return nil
}

// askPosition re-prompts until the input is a position inside the ledger.
func (s *Shell) askPosition(verb string) (int, error) {
	label := fmt.Sprintf("Enter the position of the project you want to %s: ", verb)
	return s.p.AskInt(label, func(n int) error {
		_, err := s.session.Ledger().Get(n)
		return err
	})
}

func (s *Shell) edit() error {
	identity, ok := s.session.Identity()
	if !ok {
		fmt.Fprintln(s.out, "Please log in before editing a project.")
		return nil
	}
	position, err := s.askPosition("edit")
	if err != nil {
		return err
	}
	project, err := s.session.Ledger().Get(position)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	if project.OwnerEmail != identity {
		fmt.Fprintf(s.out, "You do not have permission to edit project %d.\n", position)
		return nil
	}

	// Blank input keeps the stored value; non-blank input is validated in
	// place.
	var patch crowdfund.Patch
	if patch.Title, err = s.p.Line("Enter new project title (blank to keep): "); err != nil {
		return err
	}
	if patch.Details, err = s.p.Line("Enter new project details (blank to keep): "); err != nil {
		return err
	}
	optional := func(check func(string) error) func(string) error {
		return func(v string) error {
			if v == "" {
				return nil
			}
			return check(v)
		}
	}
	if patch.TotalTarget, err = s.p.Ask("Enter new total target (blank to keep): ", optional(func(v string) error {
		_, err := crowdfund.ParseMoney(v)
		return err
	})); err != nil {
		return err
	}
	rawDate := func(v string) error {
		_, err := crowdfund.RawDateTime(v)
		return err
	}
	if patch.StartTime, err = s.p.Ask("Enter new start time (blank to keep): ", optional(rawDate)); err != nil {
		return err
	}
	if patch.EndTime, err = s.p.Ask("Enter new end time (blank to keep): ", optional(rawDate)); err != nil {
		return err
	}

	if _, err := s.session.EditProject(position, patch); err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	fmt.Fprintln(s.out, "Project edited successfully.")
	return nil
}

func (s *Shell) delete() error {
	if _, ok := s.session.Identity(); !ok {
		fmt.Fprintln(s.out, "Please log in before deleting a project.")
		return nil
	}
	position, err := s.askPosition("delete")
	if err != nil {
		return err
	}
	if err := s.session.DeleteProject(position); err != nil {
		if errors.Is(err, crowdfund.ErrForbidden) {
			fmt.Fprintf(s.out, "You don't have permission to delete project %d.\n", position)
			return nil
		}
		fmt.Fprintln(s.out, err)
		return nil
	}
	fmt.Fprintln(s.out, "Project deleted successfully.")
	return nil
}
