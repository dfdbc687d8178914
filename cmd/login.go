package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	email string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "check credentials for an account" }
func (*loginCmd) Usage() string {
	return `cfs login -email <email>

  Prompts for the password and checks the credentials. The exit status
  reports success or failure; the message never reveals whether the email
  is registered.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email of the account.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := authenticate(session, c.email, newStdPrompter()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Login successful.")
	return subcommands.ExitSuccess
}
