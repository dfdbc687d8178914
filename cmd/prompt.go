package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// prompter reads validated fields from a console. The validation functions
// are pure; the prompter only owns the re-prompt loop, so the same
// validators serve the shell, the one-shot commands, and the tests.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
	// secret reads a line without echo. nil falls back to a plain read,
	// which is what tests and piped input get.
	secret func() (string, error)
}

// newPrompter builds a prompter over arbitrary streams, with no hidden
// password input.
func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// newStdPrompter builds a prompter on the process terminal. Passwords are
// read without echo when stdin is a terminal.
func newStdPrompter() *prompter {
	p := newPrompter(os.Stdin, os.Stdout)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		p.secret = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Println()
			return string(b), err
		}
	}
	return p
}

// Line prints the label and reads one raw line.
func (p *prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// Ask reads a line and re-prompts until check accepts it.
func (p *prompter) Ask(label string, check func(string) error) (string, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if err := check(line); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return line, nil
	}
}

// AskInt reads an integer and re-prompts until check accepts it.
func (p *prompter) AskInt(label string, check func(int) error) (int, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		if err := check(n); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return n, nil
	}
}

// Secret prints the label and reads a line without echo when possible.
func (p *prompter) Secret(label string) (string, error) {
	if p.secret == nil {
		return p.Line(label)
	}
	fmt.Fprint(p.out, label)
	return p.secret()
}

// SecretCheck reads a hidden line and re-prompts until check accepts it.
func (p *prompter) SecretCheck(label string, check func(string) error) (string, error) {
	for {
		line, err := p.Secret(label)
		if err != nil {
			return "", err
		}
		if err := check(line); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return line, nil
	}
}
