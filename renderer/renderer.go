// Package renderer renders crowdfund records to markdown strings, ready to
// be printed raw or through a terminal markdown renderer.
package renderer

import (
	"fmt"
	"iter"
	"strings"

	"github.com/etnz/crowdfund"
)

// Project renders a single project as a markdown section titled with its
// ledger position.
func Project(position int, p crowdfund.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Project %d: %s\n\n", position, p.Title)
	fmt.Fprintf(&b, "- Details: %s\n", p.Details)
	fmt.Fprintf(&b, "- Total Target: %s\n", p.TotalTarget)
	fmt.Fprintf(&b, "- Start Time: %s\n", p.StartTime)
	fmt.Fprintf(&b, "- End Time: %s\n", p.EndTime)
	return b.String()
}

// Projects renders a full listing. Entries not owned by the viewer are
// rendered as a permission notice, and every entry advances the position,
// so the positions shown are valid for edit and delete.
func Projects(views iter.Seq2[int, crowdfund.ProjectView]) string {
	var b strings.Builder
	b.WriteString("# Projects\n\n")
	empty := true
	for position, view := range views {
		empty = false
		if !view.Owned {
			fmt.Fprintf(&b, "You don't have permission to view project %d.\n\n", position)
			continue
		}
		b.WriteString(Project(position, view.Project))
		b.WriteString("\n")
	}
	if empty {
		b.WriteString("No projects available.\n")
	}
	return b.String()
}

// Accounts renders the registry as a markdown table. Credentials are never
// rendered.
func Accounts(registry *crowdfund.Registry) string {
	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	b.WriteString("| Email | Name | Phone |\n")
	b.WriteString("|---|---|---|\n")
	for a := range registry.Accounts() {
		fmt.Fprintf(&b, "| %s | %s %s | %s |\n", a.Email, a.FirstName, a.LastName, a.MobilePhone)
	}
	return b.String()
}
