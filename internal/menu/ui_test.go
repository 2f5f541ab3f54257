package menu

import (
	"bytes"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

func TestNewHuhUI(t *testing.T) {
	var out bytes.Buffer
	ui := NewHuhUI(&out)
	assert.NotNil(t, ui)
	assert.NotNil(t, ui.isTerminal)
	assert.NotNil(t, ui.keys)
	assert.Same(t, &out, ui.output)
}

func TestNewHuhUIDefaultsToStderr(t *testing.T) {
	ui := NewHuhUI(nil)
	assert.Equal(t, os.Stderr, ui.output)
}

func TestHuhUI_FormsShareKeyMap(t *testing.T) {
	ui := NewHuhUI(&bytes.Buffer{})
	ui.isTerminal = func() bool { return true }
	keys := ui.keys
	origRunForm := runFormFunc
	t.Cleanup(func() {
		runFormFunc = origRunForm
	})

	forms := 0
	runFormFunc = func(form *huh.Form) error {
		forms++
		return nil
	}

	var res string
	require.NoError(t, ui.Select("Title", []string{"A"}, &res))
	require.NoError(t, ui.Input("Title", &res))
	assert.Equal(t, 2, forms)
	assert.Same(t, keys, ui.keys)
}

func TestMenuKeyMapDisablesFiltering(t *testing.T) {
	km := menuKeyMap()
	assert.False(t, km.Select.Filter.Enabled())
	assert.Equal(t, []string{"ctrl+c", "esc"}, km.Quit.Keys())
	assert.Equal(t, "back", km.Input.Prev.Help().Desc)
	assert.Equal(t, "exit", km.Input.Next.Help().Desc)
}

func TestAbortErrorPassesOtherErrors(t *testing.T) {
	ui := &HuhUI{ctrlCAbort: true}
	assert.ErrorIs(t, ui.abortError(os.ErrClosed), os.ErrClosed)
	assert.NoError(t, ui.abortError(nil))
}

func TestHuhUI_EnsureInteractive_NilChecker(t *testing.T) {
	// Tests run without a TTY, so the default checker fails.
	ui := &HuhUI{isTerminal: nil}
	err := ui.ensureInteractive()
	require.Error(t, err)
	assert.Equal(t, messages.MenuRequiresTerminal, err.Error())
}

func TestHuhUI_NoTTY(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}

	t.Run("Select", func(t *testing.T) {
		var res string
		assert.Error(t, ui.Select("Title", []string{"A", "B"}, &res))
	})

	t.Run("Input", func(t *testing.T) {
		var res string
		assert.Error(t, ui.Input("Title", &res))
	})
}

func TestHuhUI_RunFormSuccess(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	origRunForm := runFormFunc
	t.Cleanup(func() {
		runFormFunc = origRunForm
	})

	called := false
	runFormFunc = func(form *huh.Form) error {
		assert.NotNil(t, form)
		called = true
		return nil
	}

	var res string
	require.NoError(t, ui.Select("Title", []string{"A"}, &res))
	assert.True(t, called)
}

func TestHuhUI_RunFormMapsUserAbortToBack(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	origRunForm := runFormFunc
	t.Cleanup(func() {
		runFormFunc = origRunForm
	})

	runFormFunc = func(form *huh.Form) error {
		return huh.ErrUserAborted
	}

	var res string
	assert.ErrorIs(t, ui.Input("Title", &res), errBack)
}

func TestHuhUI_RunFormMapsCtrlCAbortToCancelled(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	origRunForm := runFormFunc
	t.Cleanup(func() {
		runFormFunc = origRunForm
	})

	runFormFunc = func(form *huh.Form) error {
		// Simulate the key filter seeing Ctrl+C before the form aborts.
		ui.ctrlCAbort = true
		return huh.ErrUserAborted
	}

	var res string
	assert.ErrorIs(t, ui.Input("Title", &res), errCancelled)
}

func TestHuhUI_RunFormResetsCtrlCAbortBetweenForms(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	origRunForm := runFormFunc
	t.Cleanup(func() {
		runFormFunc = origRunForm
	})

	runFormFunc = func(form *huh.Form) error {
		ui.ctrlCAbort = true
		return huh.ErrUserAborted
	}
	var res string
	require.ErrorIs(t, ui.Input("First", &res), errCancelled)

	runFormFunc = func(form *huh.Form) error {
		return huh.ErrUserAborted
	}
	assert.ErrorIs(t, ui.Input("Second", &res), errBack)
}

func TestAbortFilter(t *testing.T) {
	t.Run("ctrl+c sets flag", func(t *testing.T) {
		ui := &HuhUI{}
		msg := ui.abortFilter(nil, tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.True(t, ui.ctrlCAbort)
		assert.IsType(t, tea.KeyMsg{}, msg)
	})

	t.Run("interrupt becomes quit", func(t *testing.T) {
		ui := &HuhUI{}
		msg := ui.abortFilter(nil, tea.InterruptMsg{})
		assert.False(t, ui.ctrlCAbort)
		assert.IsType(t, tea.QuitMsg{}, msg)
	})

	t.Run("esc passes through", func(t *testing.T) {
		ui := &HuhUI{}
		msg := ui.abortFilter(nil, tea.KeyMsg{Type: tea.KeyEscape})
		assert.False(t, ui.ctrlCAbort)
		assert.IsType(t, tea.KeyMsg{}, msg)
	})
}

func TestHintedField_WithPositionRestoresBindings(t *testing.T) {
	inner := huh.NewSelect[string]().
		Title("Test").
		Options(huh.NewOption("A", "a"))
	wrapped := &hintedField{Field: inner, keys: menuKeyMap()}

	wrapped.WithPosition(huh.FieldPosition{})

	var sawBack, sawExit bool
	for _, binding := range wrapped.KeyBinds() {
		switch binding.Help().Desc {
		case "back":
			sawBack = binding.Enabled()
		case "exit":
			sawExit = binding.Enabled()
		}
	}
	assert.True(t, sawBack, "back hint should stay enabled")
	assert.True(t, sawExit, "exit hint should stay enabled")
}

func TestOptionErrorMessage(t *testing.T) {
	err := &OptionError{Value: "7", Count: 4}
	assert.Equal(t, `opción no válida "7": seleccione una opción del 1 al 4`, err.Error())
}
