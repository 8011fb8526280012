package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/google/shlex"
	"golang.org/x/term"
)

const (
	UseCommand  = "$use"  // This is used in interactive mode to indicate that a set of sub-commands should be pushed to the invocation stack.
	BackCommand = "$back" // This is used in interactive mode to indicate that the last element on the invocation stack should be popped.
)

// InteractiveQuitCommands is a slice of strings that should escape from interactive mode.
var InteractiveQuitCommands = []string{"quit", "x"}

// RespondInteractive will launch an interactive "shell" version of the [CommandSet] if the configured interactive flag is the first argument, indicating that the user is requesting interactive mode.
// This allows printing usage and calling sub-commands.
// Lines are split into arguments with shell quoting rules, so "greet 'John Doe'" passes a single argument.
// Returns false if interactive mode was not requested by the user.
//
// This loop may be interrupted with one of the [InteractiveQuitCommands].
func (s *CommandSet) RespondInteractive() bool {
	args := os.Args[1:]
	if len(args) == 0 {
		return false
	}
	if args[0] != s.Config().InteractiveFlag {
		return false
	}

	prompt := term.IsTerminal(int(os.Stdin.Fd()))
	if err := s.interactiveLoop(os.Args[0], os.Stdin, prompt); err != nil {
		s.Printer().Println("Error running command interactively:", err)
	}
	return true
}

func (s *CommandSet) interactiveLoop(command string, in io.Reader, prompt bool) error {
	var (
		commandStack [][]string
	)
	prefixCommands := func() []string {
		if len(commandStack) == 0 {
			return nil
		}
		return commandStack[len(commandStack)-1]
	}
	scanner := bufio.NewScanner(in)
	p := s.Printer()
	if prompt {
		p.Printf(`Running '%s' interactively. Enter %s to exit.
Use the %s command with one or more sub-commands to push them to the execution stack, and %s to pop and return.
`, command, strings.Join(InteractiveQuitCommands, " or "),
			UseCommand, BackCommand)
	}
	for {
		if prompt {
			if len(commandStack) > 0 {
				p.Printf("%s %s> ", s.parent, strings.Join(prefixCommands(), " "))
			} else {
				p.Printf("%s> ", s.parent)
			}
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if slices.Contains(InteractiveQuitCommands, strings.ToLower(line)) {
			return nil
		}
		segments, err := shlex.Split(line)
		if err != nil {
			p.Println("Unable to parse line:", err)
			continue
		}
		if len(segments) == 0 {
			continue
		}
		switch segments[0] {
		case UseCommand:
			newStack := append(slices.Clone(prefixCommands()), segments[1:]...)
			p.Printf("Using '%s'\n", strings.Join(newStack, " "))
			commandStack = append(commandStack, newStack)
			continue
		case BackCommand:
			if len(commandStack) == 0 {
				p.Println("Already at root command")
				continue
			}
			commandStack = commandStack[:len(commandStack)-1]
			continue
		case s.Config().InteractiveFlag:
			p.Println("Cannot run interactively twice")
			continue
		}
		segments = append(slices.Clone(prefixCommands()), segments...)
		if err := s.Exec(segments); err != nil {
			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				p.Println("Error running command:", err)
			}
		}
	}
}
