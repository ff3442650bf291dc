package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads one line of user input per call
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

// terminalPrompter reads from a raw-mode terminal with line editing
type terminalPrompter struct {
	t *term.Terminal
}

func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	p.t.SetPrompt(prompt)
	return p.t.ReadLine()
}

func (p *terminalPrompter) ReadPassword(prompt string) (string, error) {
	return p.t.ReadPassword(prompt)
}

// linePrompter reads newline-terminated input, e.g. from a pipe
type linePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a Prompter that writes prompts to out and reads
// lines from in. Passwords are read like any other line.
func NewLinePrompter(in io.Reader, out io.Writer) Prompter {
	return &linePrompter{r: bufio.NewReader(in), out: out}
}

func (p *linePrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *linePrompter) ReadPassword(prompt string) (string, error) {
	return p.ReadLine(prompt)
}

// IsTerminal reports whether f is a terminal, in which case Open puts it
// into raw mode
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Open prepares stdin/stdout for the console. On a terminal, stdin is put
// into raw mode and restore must be called before exiting. Anything else
// printed while raw mode is active must go through w.
func Open(in, out *os.File) (p Prompter, w io.Writer, restore func(), err error) {
	fd := int(in.Fd())
	if !IsTerminal(in) {
		return NewLinePrompter(in, out), out, func() {}, nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to set raw mode: %w", err)
	}

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, "")
	if width, height, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(width, height)
	}

	restore = func() {
		_ = term.Restore(fd, oldState)
	}
	return &terminalPrompter{t: t}, t, restore, nil
}
