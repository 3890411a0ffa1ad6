package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// NoChoice is returned by Prompter.Choose when the user picks none of the options.
const NoChoice = -1

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

// Prompter is the interactive side of ez-init: presenting candidate profiles
// and reading a free-text path when none fits.
type Prompter interface {
	// Choose presents options and returns the selected index or NoChoice.
	Choose(title string, options []string) (int, error)
	// ReadLine asks for a line of free text.
	ReadLine(prompt string) (string, error)
}

// ReadlinePrompter implements Prompter on a terminal using readline.
type ReadlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter creates a prompter on the process terminal.
func NewReadlinePrompter() (*ReadlinePrompter, error) {
	return NewReadlinePrompterWithConfig(&readline.Config{})
}

// NewReadlinePrompterWithConfig creates a prompter with custom readline
// settings, e.g. alternative Stdin/Stdout.
func NewReadlinePrompterWithConfig(cfg *readline.Config) (*ReadlinePrompter, error) {
	cfg.InterruptPrompt = "^C"
	cfg.EOFPrompt = ""
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// Close releases the terminal.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}

// Choose prints a numbered list and reads the selection. An empty answer or
// EOF means no choice; invalid input is asked again.
func (p *ReadlinePrompter) Choose(title string, options []string) (int, error) {
	out := p.rl.Stdout()
	number := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintln(out, title)
	for i, opt := range options {
		fmt.Fprintf(out, "  %s %s\n", number(fmt.Sprintf("%d)", i+1)), opt)
	}

	prompt := fmt.Sprintf("Select a profile [1-%d], or press enter to type a path: ", len(options))
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return NoChoice, nil
			}
			return NoChoice, err
		}

		idx, err := parseChoice(line, len(options))
		if err != nil {
			fmt.Fprintln(out, color.YellowString(err.Error()))
			continue
		}
		return idx, nil
	}
}

// ReadLine reads one line of free text, trimmed of surrounding whitespace.
// EOF yields an empty string.
func (p *ReadlinePrompter) ReadLine(prompt string) (string, error) {
	line, err := p.readLine(prompt)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return line, err
}

func (p *ReadlinePrompter) readLine(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseChoice turns a 1-based answer into an index. Empty input is NoChoice.
func parseChoice(input string, n int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return NoChoice, nil
	}
	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > n {
		return NoChoice, fmt.Errorf("please enter a number between 1 and %d", n)
	}
	return choice - 1, nil
}
