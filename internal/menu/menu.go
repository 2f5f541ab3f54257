// Package menu runs the interactive catalog session.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/conn-castle/appliance-catalog/internal/appliance"
	"github.com/conn-castle/appliance-catalog/internal/catalog"
	"github.com/conn-castle/appliance-catalog/internal/messages"
)

var mainOptions = []string{
	messages.MenuOptionCreate,
	messages.MenuOptionSample,
	messages.MenuOptionDisplay,
	messages.MenuOptionExit,
}

var kindOptions = []struct {
	kind  appliance.Kind
	label string
}{
	{kind: appliance.KindWasher, label: messages.MenuKindOptionWasher},
	{kind: appliance.KindRefrigerator, label: messages.MenuKindOptionFridge},
	{kind: appliance.KindMicrowave, label: messages.MenuKindOptionOven},
}

type menu struct {
	ui      UI
	session *catalog.Session
	out     io.Writer
	logger  *zap.Logger
}

// Run shows the main menu until the user exits or cancels. Input, missing
// instance and unexpected errors are reported and the loop continues.
func Run(ctx context.Context, ui UI, session *catalog.Session, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &menu{ui: ui, session: session, out: out, logger: logger}
	return m.run(ctx)
}

func (m *menu) run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			m.interrupted()
			return nil
		}

		var choice string
		if err := m.ui.Select(messages.MenuTitle, mainOptions, &choice); err != nil {
			if errors.Is(err, errBack) {
				m.goodbye()
				return nil
			}
			if m.finished(err) {
				return nil
			}
			m.report(err)
			continue
		}
		if choice == messages.MenuOptionExit {
			m.goodbye()
			return nil
		}

		if err := m.dispatch(choice); err != nil {
			if errors.Is(err, errBack) {
				continue
			}
			if m.finished(err) {
				return nil
			}
			m.report(err)
		}
	}
}

func (m *menu) dispatch(choice string) error {
	m.logger.Debug("menu option selected", zap.String("option", choice))
	switch choice {
	case messages.MenuOptionCreate:
		return m.create()
	case messages.MenuOptionSample:
		return m.sample()
	case messages.MenuOptionDisplay:
		return m.display()
	default:
		return fmt.Errorf(messages.MenuInvalidOptionFmt, choice, len(mainOptions))
	}
}

// finished ends the session on cancellation or closed input.
func (m *menu) finished(err error) bool {
	switch {
	case errors.Is(err, errCancelled):
		m.interrupted()
		return true
	case errors.Is(err, errInputClosed):
		m.logger.Debug("input closed", zap.Error(err))
		m.goodbye()
		return true
	default:
		return false
	}
}

// create asks for a kind and its fields, re-prompting only the rejected
// fields until the session accepts them.
func (m *menu) create() error {
	labels := make([]string, len(kindOptions))
	for i, option := range kindOptions {
		labels[i] = option.label
	}
	var choice string
	if err := m.ui.Select(messages.MenuKindTitle, labels, &choice); err != nil {
		return err
	}
	idx := slices.Index(labels, choice)
	if idx < 0 {
		return fmt.Errorf(messages.MenuInvalidOptionFmt, choice, len(labels))
	}
	kind := kindOptions[idx].kind

	defs, err := catalog.FieldsFor(kind)
	if err != nil {
		return err
	}
	fields := catalog.Fields{}
	pending := defs
	for {
		for _, def := range pending {
			value := fields[def.Key]
			if err := m.ui.Input(def.Prompt, &value); err != nil {
				return err
			}
			fields[def.Key] = value
		}

		created, err := m.session.Create(kind, fields)
		if err == nil {
			_, _ = color.New(color.FgGreen).Fprintf(m.out, messages.MenuCreatedFmt+"\n",
				catalog.KindName(kind), created.Classify().Label(m.session.Labels().Locale))
			m.showReplacement(kind)
			return nil
		}
		rejected := catalog.RejectedFields(err)
		if len(rejected) == 0 {
			return err
		}
		m.report(err)
		pending = pending[:0:0]
		for _, def := range defs {
			if slices.Contains(rejected, def.Key) {
				pending = append(pending, def)
			}
		}
	}
}

func (m *menu) sample() error {
	for _, kind := range appliance.Kinds() {
		if _, err := m.session.Create(kind, catalog.SampleFields(kind)); err != nil {
			return err
		}
		m.showReplacement(kind)
	}
	_, _ = color.New(color.FgGreen).Fprintln(m.out, messages.MenuSampleLoaded)
	return nil
}

func (m *menu) display() error {
	_, _ = fmt.Fprintln(m.out, messages.CatalogDetailsHeader)
	return m.session.Display(m.out)
}

func (m *menu) showReplacement(kind appliance.Kind) {
	diff := m.session.Replacement()
	if diff == "" {
		return
	}
	_, _ = color.New(color.FgYellow).Fprintf(m.out, messages.CatalogReplacedHeaderFmt+"\n", catalog.KindName(kind))
	_, _ = fmt.Fprintln(m.out, diff)
}

func (m *menu) report(err error) {
	kind := Classify(err)
	m.logger.Warn("menu action failed", zap.Stringer("kind", kind), zap.Error(err))

	titleColor := color.New(color.FgRed)
	if kind == KindMissing {
		titleColor = color.New(color.FgYellow)
	}
	_, _ = titleColor.Fprintln(m.out, kind.title())
	_, _ = fmt.Fprintf(m.out, messages.MenuErrorDetailFmt+"\n", err)
	_, _ = fmt.Fprintln(m.out, messages.MenuRetry)
}

func (m *menu) interrupted() {
	_, _ = color.New(color.FgYellow).Fprintln(m.out, messages.MenuInterrupted)
	m.goodbye()
}

func (m *menu) goodbye() {
	_, _ = fmt.Fprintln(m.out, messages.MenuGoodbye)
}
