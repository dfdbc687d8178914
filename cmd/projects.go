package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/crowdfund/renderer"
	"github.com/google/subcommands"
)

type projectsCmd struct {
	email string
}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "list the projects in the ledger" }
func (*projectsCmd) Usage() string {
	return `cfs projects -email <email>

  Prompts for the password, then lists the full ledger. Projects owned by
  other accounts appear as a permission notice, so the positions shown are
  the ones edit and delete accept.
`
}

func (c *projectsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email of the viewing account.")
}

func (c *projectsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := authenticate(session, c.email, newStdPrompter()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	views, err := session.ListProjects()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Projects(views))
	return subcommands.ExitSuccess
}
