package menu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/appliance-catalog/internal/messages"
	"github.com/conn-castle/appliance-catalog/internal/terminal"
)

// UI defines the interaction methods used by the menu.
type UI interface {
	Select(title string, options []string, current *string) error
	Input(title string, value *string) error
}

// HuhUI implements UI with one single-field huh form per prompt.
// Esc answers errBack and Ctrl+C answers errCancelled.
type HuhUI struct {
	output     io.Writer
	keys       *huh.KeyMap
	isTerminal func() bool
	ctrlCAbort bool // set by abortFilter while a form runs
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI draws forms on output; nil means stderr so stdout keeps only menu text.
func NewHuhUI(output io.Writer) *HuhUI {
	if output == nil {
		output = os.Stderr
	}
	return &HuhUI{output: output, keys: menuKeyMap(), isTerminal: terminal.IsInteractive}
}

// ensureInteractive points the user at --plain when no terminal is attached.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return errors.New(messages.MenuRequiresTerminal)
	}
	return nil
}

// menuKeyMap makes Esc and Ctrl+C both quit the form; abortError tells them
// apart. Prev and Next only carry the "back" and "exit" help text.
func menuKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	exit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))
	km.Select.Prev, km.Select.Next = back, exit
	km.Input.Prev, km.Input.Next = back, exit

	// Option lists are at most four entries long.
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// hintedField re-applies the menu key map whenever huh repositions the field.
// huh turns Prev off for the first field and Next off for the last, and a
// menu prompt is always both.
type hintedField struct {
	huh.Field
	keys *huh.KeyMap
}

func (f *hintedField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

func (f *hintedField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.keys)
	return f
}

// abortFilter notes Ctrl+C presses. Interrupts become quits so the form is
// cleared from the screen before the menu prints again.
func (ui *HuhUI) abortFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			ui.ctrlCAbort = true
		}
	case tea.InterruptMsg:
		return tea.QuitMsg{}
	}
	return msg
}

// abortError maps a user abort to the menu navigation it stands for.
func (ui *HuhUI) abortError(err error) error {
	if !errors.Is(err, huh.ErrUserAborted) {
		return err
	}
	if ui.ctrlCAbort {
		return errCancelled
	}
	return errBack
}

// ask shows field as a one-field form and waits for the answer.
func (ui *HuhUI) ask(field huh.Field) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	if ui.keys == nil {
		ui.keys = menuKeyMap()
	}
	output := ui.output
	if output == nil {
		output = os.Stderr
	}

	ui.ctrlCAbort = false
	form := huh.NewForm(huh.NewGroup(&hintedField{Field: field, keys: ui.keys})).
		WithKeyMap(ui.keys).
		WithProgramOptions(
			tea.WithOutput(output),
			tea.WithReportFocus(),
			tea.WithFilter(ui.abortFilter),
		)
	return ui.abortError(runFormFunc(form))
}

// Select shows the options as a list; current holds the chosen option.
func (ui *HuhUI) Select(title string, options []string, current *string) error {
	return ui.ask(huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(current))
}

// Input shows a text prompt prefilled with *value, so a rejected answer can be corrected in place.
func (ui *HuhUI) Input(title string, value *string) error {
	return ui.ask(huh.NewInput().
		Title(title).
		Value(value))
}

// OptionError reports a line-mode selection outside the offered range.
type OptionError struct {
	Value string
	Count int
}

func (e *OptionError) Error() string {
	return fmt.Sprintf(messages.MenuInvalidOptionFmt, e.Value, e.Count)
}
