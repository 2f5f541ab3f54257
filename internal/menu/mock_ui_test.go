package menu

// MockUI implements UI with overridable funcs.
type MockUI struct {
	SelectFunc func(title string, options []string, current *string) error
	InputFunc  func(title string, value *string) error
}

func (m *MockUI) Select(title string, options []string, current *string) error {
	if m.SelectFunc != nil {
		return m.SelectFunc(title, options, current)
	}
	return errInputClosed
}

func (m *MockUI) Input(title string, value *string) error {
	if m.InputFunc != nil {
		return m.InputFunc(title, value)
	}
	return errInputClosed
}

// scriptedUI answers selects and inputs from queues and records the prompts
// it was shown. An exhausted queue behaves like closed input.
type scriptedUI struct {
	MockUI
	selects []string
	inputs  []string
	prompts []string
}

func newScriptedUI(selects []string, inputs []string) *scriptedUI {
	ui := &scriptedUI{selects: selects, inputs: inputs}
	ui.SelectFunc = func(title string, options []string, current *string) error {
		if len(ui.selects) == 0 {
			return errInputClosed
		}
		*current = ui.selects[0]
		ui.selects = ui.selects[1:]
		return nil
	}
	ui.InputFunc = func(title string, value *string) error {
		ui.prompts = append(ui.prompts, title)
		if len(ui.inputs) == 0 {
			return errInputClosed
		}
		*value = ui.inputs[0]
		ui.inputs = ui.inputs[1:]
		return nil
	}
	return ui
}
