package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// LineUI implements UI with numbered line prompts for pipes and dumb terminals.
type LineUI struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineUI reads answers from in and writes prompts to out.
func NewLineUI(in io.Reader, out io.Writer) *LineUI {
	return &LineUI{in: bufio.NewReader(in), out: out}
}

// readLine returns the next trimmed line. A final unterminated line is still
// returned; after that the reader reports errInputClosed.
func (ui *LineUI) readLine() (string, error) {
	line, err := ui.in.ReadString('\n')
	if err == nil {
		return strings.TrimSpace(line), nil
	}
	if errors.Is(err, io.EOF) && line != "" {
		return strings.TrimSpace(line), nil
	}
	if errors.Is(err, io.EOF) {
		return "", errInputClosed
	}
	return "", fmt.Errorf("%w: %w", errInputClosed, err)
}

// Select prints the numbered options and reads the chosen number.
func (ui *LineUI) Select(title string, options []string, current *string) error {
	_, _ = fmt.Fprintln(ui.out, title)
	for i, option := range options {
		_, _ = fmt.Fprintf(ui.out, messages.MenuOptionLineFmt+"\n", i+1, option)
	}
	_, _ = fmt.Fprintf(ui.out, messages.MenuSelectPromptFmt, len(options))

	answer, err := ui.readLine()
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return &OptionError{Value: answer, Count: len(options)}
	}
	*current = options[n-1]
	return nil
}

// Input prints the prompt and stores the next line in value.
func (ui *LineUI) Input(title string, value *string) error {
	_, _ = fmt.Fprintf(ui.out, messages.MenuLinePromptFmt, title)
	answer, err := ui.readLine()
	if err != nil {
		return err
	}
	*value = answer
	return nil
}
