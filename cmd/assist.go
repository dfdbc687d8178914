package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistModel is the Gemini model used to draft project pitches.
const assistModel = "gemini-2.5-flash"

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "draft a project pitch with the AI assistant" }
func (*assistCmd) Usage() string {
	return `cfs assist <idea>

  Asks Gemini to draft a project title, details and a plausible funding
  target from a one-line idea. The draft is only printed: nothing is
  written to the ledger until you create the project yourself.

  Requires Gemini credentials in the environment (GEMINI_API_KEY).
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing the project idea to draft from.")
		return subcommands.ExitUsageError
	}
	idea := strings.Join(f.Args(), " ")

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	prompt := fmt.Sprintf(`Draft a crowdfunding project pitch in markdown from this idea: %q.
Give a short title, a paragraph of details, and a funding target in EGP.
Format it as:
# <title>
<details>
Target: <amount> EGP`, idea)

	result, err := client.Models.GenerateContent(ctx, assistModel, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating draft:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(result.Text())

	return subcommands.ExitSuccess
}
