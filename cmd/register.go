package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct{}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new account" }
func (*registerCmd) Usage() string {
	return `cfs register

  Registers a new account interactively: name, email, password (typed
  twice) and mobile phone. An email can only be registered once.
`
}

func (*registerCmd) SetFlags(f *flag.FlagSet) {}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	shell := &Shell{session: session, p: newStdPrompter(), out: os.Stdout}
	if err := shell.register(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
