package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer answers a yes/no question put to the invoking human. The guard
// depends on this interface rather than on terminal I/O so tests can script
// the answer.
type Confirmer interface {
	// Confirm asks the question and reports whether the answer was
	// affirmative. End-of-input counts as a decline.
	Confirm(prompt string) bool
}

// TerminalConfirmer reads the answer from an input stream, normally stdin.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminalConfirmer creates a Confirmer bound to stdin/stdout.
func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{In: os.Stdin, Out: os.Stdout}
}

// Confirm prompts and accepts only an explicit "y" or "yes" (case-insensitive).
func (c *TerminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// StaticConfirmer always answers with a fixed response. Used for --yes and
// in tests.
type StaticConfirmer struct {
	Answer bool
}

// Confirm returns the fixed answer without prompting.
func (c *StaticConfirmer) Confirm(string) bool {
	return c.Answer
}
