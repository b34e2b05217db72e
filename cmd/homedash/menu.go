package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter reads answers from the user, one line at a time
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints prompt and returns the next input line as typed, without its line
// ending. ok is false once input is exhausted.
func (p *prompter) ask(prompt string) (answer string, ok bool) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// menuItem is one numbered menu option
type menuItem struct {
	label string
	run   func(p *prompter)
}

// menu is a numbered list of options with a final exit option
type menu struct {
	header  string // Printed above the options
	footer  string // Printed below the options, may be empty
	items   []menuItem
	exit    string // Label of the exit option
	prompt  string
	goodbye string
	invalid string
}

// run shows the menu until the exit option is chosen or input runs out
func (m *menu) run(p *prompter) {
	exitNum := len(m.items) + 1
	for {
		m.show(p.out, exitNum)

		choice, ok := p.ask(m.prompt)
		if !ok {
			return
		}
		choice = strings.TrimSpace(choice)

		if choice == fmt.Sprint(exitNum) {
			fmt.Fprintln(p.out, m.goodbye)
			return
		}

		item, found := m.lookup(choice)
		if !found {
			fmt.Fprintln(p.out, m.invalid)
			continue
		}
		item.run(p)
	}
}

func (m *menu) lookup(choice string) (menuItem, bool) {
	for i, item := range m.items {
		if choice == fmt.Sprint(i+1) {
			return item, true
		}
	}
	return menuItem{}, false
}

func (m *menu) show(w io.Writer, exitNum int) {
	fmt.Fprint(w, m.header)
	for i, item := range m.items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item.label)
	}
	fmt.Fprintf(w, "%d. %s\n", exitNum, m.exit)
	fmt.Fprint(w, m.footer)
}
