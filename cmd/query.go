package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	path string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query against the projects file" }
func (*queryCmd) Usage() string {
	return `cfs query -p <jsonpath>

  Evaluates a JSONPath expression against the projects file and prints the
  result as JSON. Useful for ad-hoc inspection without opening the file.

Usage Examples:
# All project titles.
$ cfs query -p '$[*].title'
# Targets of the first two projects.
$ cfs query -p '$[:2].total_target'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "p", "$", "JSONPath expression to evaluate.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := os.ReadFile(*projectsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read projects file %q: %v\n", *projectsFile, err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "could not parse projects file %q: %v\n", *projectsFile, err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(c.path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not evaluate %q: %v\n", c.path, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
