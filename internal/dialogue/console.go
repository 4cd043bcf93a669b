// internal/dialogue/console.go
package dialogue

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console is the injected text interface of the assistant. The flows never
// read the terminal directly; swapping the reader for a scripted one is what
// keeps the re-prompt-until-valid loops bounded in tests (an exhausted
// reader surfaces io.EOF and aborts the flow).
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Say writes one formatted line to the user.
func (c *Console) Say(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Prompt writes label without a newline and reads one line, trimmed of
// surrounding whitespace. Returns io.EOF when the input is exhausted.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}
