package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the accounts and projects files in canonical form"
}
func (*fmtCmd) Usage() string {
	return `cfs fmt

  Reads both files and writes them back in canonical form: accounts keyed
  in sorted email order, projects with a stable field order. Raw edited
  times are preserved verbatim, so formatting never changes what a record
  means.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry, err := loadRegistry(*usersFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := loadLedger(*projectsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store := newFileStore()
	if err := store.SaveAccounts(registry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveProjects(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s and %s.\n", *usersFile, *projectsFile)
	return subcommands.ExitSuccess
}
