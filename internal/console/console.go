// Package console implements the interactive, menu-driven front end of the
// glossary. It owns all prompting and validation of user input (including the
// part-of-speech choice) and calls into the glossary package for everything
// else.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/mrlokans/glossary/internal/audit"
	"github.com/mrlokans/glossary/internal/glossary"
)

// errEndOfInput unwinds any prompt loop when the input is exhausted.
var errEndOfInput = errors.New("end of input")

type command struct {
	label string
	run   func(*Console) error
}

// Console runs the main menu loop over a glossary.
type Console struct {
	glossary *glossary.Glossary
	in       *bufio.Scanner
	out      io.Writer
	auditor  *audit.Auditor
	commands []command
}

func New(g *glossary.Glossary, in io.Reader, out io.Writer) *Console {
	c := &Console{
		glossary: g,
		in:       bufio.NewScanner(in),
		out:      out,
	}
	c.commands = []command{
		{"Get metadata", (*Console).showMetadata},
		{"Get words in range", (*Console).showRange},
		{"Get word", (*Console).showWord},
		{"Get first word", (*Console).showFirst},
		{"Get last word", (*Console).showLast},
		{"Get parts of speech", (*Console).showPartsOfSpeech},
		{"Update definition", (*Console).updateDefinition},
		{"Delete definition", (*Console).deleteDefinition},
		{"Add new definition", (*Console).addDefinition},
		{"Save dictionary", (*Console).save},
		{"Quit", nil},
	}
	return c
}

// WithAuditor records every change and save made through the menu.
func (c *Console) WithAuditor(a *audit.Auditor) *Console {
	c.auditor = a
	return c
}

// Run shows the main menu until the user quits or input ends.
func (c *Console) Run() error {
	defer c.flushAudit()

	for {
		c.println(TitleStyle.Render("Main menu"))
		for i, cmd := range c.commands {
			c.printf("%d.\t%s\n", i+1, cmd.label)
		}
		c.prompt("\nSelect an option: ")

		choice, err := c.readInt()
		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case choice == len(c.commands):
			return nil
		case choice >= 1 && choice < len(c.commands):
			if err := c.commands[choice-1].run(c); err != nil {
				if errors.Is(err, errEndOfInput) {
					return nil
				}
				return err
			}
		default:
			c.println("\n" + ErrorStyle.Render("Invalid selection"))
		}
		c.println("")
	}
}

func (c *Console) flushAudit() {
	if c.auditor == nil {
		return
	}
	if _, err := c.auditor.Flush(); err != nil {
		log.Printf("Failed to write audit file: %v", err)
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errEndOfInput
	}
	return strings.TrimSuffix(c.in.Text(), "\r"), nil
}

// readInt returns -1 for anything that is not an integer.
func (c *Console) readInt() (int, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return -1, nil
	}
	return n, nil
}

func (c *Console) ask(question string) (string, error) {
	c.prompt(question)
	return c.readLine()
}

// prompt styles a single-line question; leading newlines are written as-is so
// lipgloss does not pad them.
func (c *Console) prompt(s string) {
	text := strings.TrimLeft(s, "\n")
	fmt.Fprint(c.out, s[:len(s)-len(text)]+PromptStyle.Render(text))
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printLines(lines []string) {
	for _, line := range lines {
		c.println(line)
	}
}
