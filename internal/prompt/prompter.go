// Package prompt implements the blocking line prompter used by
// interactive diff sessions.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LinePrompter reads one line per question from a reader, echoing the
// prompt text to a writer first. It blocks indefinitely; there is no
// timeout or retry limit, the session is operator-attended.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a prompter over in and out; nil arguments
// default to stdin and stdout.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// AskChoice prints the prompt and returns the next input line with the
// line ending stripped. The answer is otherwise untouched; interpretation
// (defaults, case folding) is the caller's job. A read failure, including
// EOF on a closed input, is returned as an error.
func (p *LinePrompter) AskChoice(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Final unterminated line still counts as an answer.
			return strings.TrimRight(line, "\r"), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
