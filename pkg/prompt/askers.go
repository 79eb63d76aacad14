package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// TerminalAsker asks questions with pterm's interactive printers
type TerminalAsker struct{}

// NewTerminalAsker creates an asker for an interactive terminal
func NewTerminalAsker() *TerminalAsker {
	return &TerminalAsker{}
}

// Select shows an arrow-key menu and returns the chosen option's value
func (a *TerminalAsker) Select(question string, options []Option, def string) (string, error) {
	labels := make([]string, len(options))
	defLabel := ""
	for i, o := range options {
		labels[i] = o.Label
		if o.Value == def {
			defLabel = o.Label
		}
	}

	printer := pterm.DefaultInteractiveSelect.WithOptions(labels)
	if defLabel != "" {
		printer = printer.WithDefaultOption(defLabel)
	}
	chosen, err := printer.Show(question)
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if o.Label == chosen {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("unknown option %q", chosen)
}

// Input reads one line of text. An empty line keeps def.
func (a *TerminalAsker) Input(question, def string) (string, error) {
	label := question
	if def != "" {
		label = fmt.Sprintf("%s (%s)", strings.TrimSuffix(question, ":"), def)
	}
	value, err := pterm.DefaultInteractiveTextInput.Show(label)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	return value, nil
}

// Confirm asks a yes/no question
func (a *TerminalAsker) Confirm(question string, def bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(def).Show(question)
}

// Problem prints a warning line
func (a *TerminalAsker) Problem(message string) {
	pterm.Warning.Println(message)
}

// LineAsker asks questions over plain line-based streams, for piped input
// and for terminals that cannot run the interactive printers
type LineAsker struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineAsker creates an asker reading answers from in and writing
// questions to out
func NewLineAsker(in io.Reader, out io.Writer) *LineAsker {
	return &LineAsker{in: bufio.NewReader(in), out: out}
}

// Select lists numbered options and accepts a number or a value
func (a *LineAsker) Select(question string, options []Option, def string) (string, error) {
	_, _ = fmt.Fprintln(a.out, question)
	for i, o := range options {
		marker := " "
		if o.Value == def {
			marker = "*"
		}
		_, _ = fmt.Fprintf(a.out, " %s %d) %s\n", marker, i+1, o.Label)
	}
	for {
		_, _ = fmt.Fprintf(a.out, "Choice [%s]: ", def)
		line, err := a.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return def, nil
		}
		if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(options) {
			return options[n-1].Value, nil
		}
		for _, o := range options {
			if strings.EqualFold(o.Value, line) || strings.EqualFold(o.Label, line) {
				return o.Value, nil
			}
		}
		a.Problem(fmt.Sprintf("%q is not one of the options", line))
	}
}

// Input reads one line of text. An empty line keeps def.
func (a *LineAsker) Input(question, def string) (string, error) {
	if def != "" {
		_, _ = fmt.Fprintf(a.out, "%s [%s] ", question, def)
	} else {
		_, _ = fmt.Fprintf(a.out, "%s ", question)
	}
	line, err := a.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Confirm accepts y/yes and n/no. An empty line keeps def.
func (a *LineAsker) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		_, _ = fmt.Fprintf(a.out, "%s [%s]: ", question, hint)
		line, err := a.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		a.Problem("please answer y or n")
	}
}

// Problem writes the message on its own line
func (a *LineAsker) Problem(message string) {
	_, _ = fmt.Fprintf(a.out, "  ! %s\n", message)
}

func (a *LineAsker) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
