package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	email    string
	position int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an owned project" }
func (*deleteCmd) Usage() string {
	return `cfs delete -email <email> -i <position>

  Prompts for the password, then removes the project at the 1-based
  ledger position. Later projects shift down by one position. Only the
  owner can delete a project.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email of the owner account.")
	f.IntVar(&c.position, "i", 0, "1-based position of the project in the full ledger.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := authenticate(session, c.email, newStdPrompter()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := session.DeleteProject(c.position); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Project deleted successfully.")
	return subcommands.ExitSuccess
}
