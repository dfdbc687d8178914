package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfund"
	"github.com/google/subcommands"
)

type createCmd struct {
	email   string
	title   string
	details string
	target  string
	start   string
	end     string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new project" }
func (*createCmd) Usage() string {
	return `cfs create -email <email> -title <title> -details <details> -target <amount> -start "YYYY-MM-DD HH:MM" -end "YYYY-MM-DD HH:MM"

  Prompts for the password, then creates a project owned by the account.
  The start time must be strictly before the end time.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email of the owner account.")
	f.StringVar(&c.title, "title", "", "Project title.")
	f.StringVar(&c.details, "details", "", "Project details.")
	f.StringVar(&c.target, "target", "", "Total funding target.")
	f.StringVar(&c.start, "start", "", "Start time, minute granularity.")
	f.StringVar(&c.end, "end", "", "End time, minute granularity.")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := crowdfund.ParseMoney(c.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	start, err := crowdfund.ParseDateTime(c.start)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	end, err := crowdfund.ParseDateTime(c.end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := authenticate(session, c.email, newStdPrompter()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	position, err := session.CreateProject(c.title, c.details, target, start, end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Project %d created successfully.\n", position)
	return subcommands.ExitSuccess
}
