package options

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	oerrors "github.com/pybake/cli/internal/errors"
	"github.com/pybake/cli/internal/output"
)

const maxChoiceAttempts = 3

// TerminalPrompter reads answers line by line.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

// Text implements Prompter.
func (p *TerminalPrompter) Text(prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s %s: ", output.StylePrompt.Render(prompt), output.StyleHint.Render("("+def+")"))
	} else {
		fmt.Fprintf(p.out, "%s: ", output.StylePrompt.Render(prompt))
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Choice implements Prompter. The answer may be the 1-based index or the
// choice itself.
func (p *TerminalPrompter) Choice(prompt string, choices []string, def string) (string, error) {
	defIndex := slices.Index(choices, def)
	if defIndex < 0 {
		defIndex = 0
	}

	fmt.Fprintf(p.out, "%s\n", output.StylePrompt.Render(prompt))
	for i, c := range choices {
		fmt.Fprintf(p.out, "  %s %s\n", output.StyleHint.Render(strconv.Itoa(i+1)+")"), c)
	}

	for attempt := 0; attempt < maxChoiceAttempts; attempt++ {
		fmt.Fprintf(p.out, "%s %s: ",
			output.StyleHint.Render(fmt.Sprintf("Choose from 1-%d", len(choices))),
			output.StyleHint.Render("("+strconv.Itoa(defIndex+1)+")"))

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			return choices[defIndex], nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}
		if slices.Contains(choices, answer) {
			return answer, nil
		}
		fmt.Fprintf(p.out, "%q is not a valid choice\n", answer)
	}

	return "", oerrors.NewValidationError(
		fmt.Sprintf("no valid answer after %d attempts", maxChoiceAttempts),
		"prompt", prompt,
		fmt.Sprintf("Choose one of: %s", strings.Join(choices, ", ")),
	)
}

// readLine returns the trimmed line. EOF after a partial line is accepted;
// EOF with nothing read yields an empty answer.
func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
