package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfund"
	"github.com/google/subcommands"
)

type editCmd struct {
	email    string
	position int
	patch    crowdfund.Patch
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit fields of an owned project" }
func (*editCmd) Usage() string {
	return `cfs edit -email <email> -i <position> [-title <title>] [-details <details>] [-target <amount>] [-start "YYYY-MM-DD HH:MM"] [-end "YYYY-MM-DD HH:MM"]

  Prompts for the password, then overwrites the given fields of the
  project at the 1-based ledger position. Omitted fields keep their
  stored value. Only the owner can edit a project.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email of the owner account.")
	f.IntVar(&c.position, "i", 0, "1-based position of the project in the full ledger.")
	f.StringVar(&c.patch.Title, "title", "", "New title.")
	f.StringVar(&c.patch.Details, "details", "", "New details.")
	f.StringVar(&c.patch.TotalTarget, "target", "", "New total target.")
	f.StringVar(&c.patch.StartTime, "start", "", "New start time.")
	f.StringVar(&c.patch.EndTime, "end", "", "New end time.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := authenticate(session, c.email, newStdPrompter()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if _, err := session.EditProject(c.position, c.patch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Project edited successfully.")
	return subcommands.ExitSuccess
}
