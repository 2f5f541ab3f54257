package menu

import (
	"errors"

	"github.com/conn-castle/appliance-catalog/internal/appliance"
	"github.com/conn-castle/appliance-catalog/internal/catalog"
	"github.com/conn-castle/appliance-catalog/internal/messages"
)

var (
	errBack        = errors.New("menu back requested")
	errCancelled   = errors.New("menu cancelled")
	errInputClosed = errors.New(messages.MenuInputClosed)
)

// ErrorKind classifies a failure the menu recovers from.
type ErrorKind int

const (
	// KindInput covers malformed or out-of-range user input.
	KindInput ErrorKind = iota
	// KindMissing covers displaying a slot nothing was created in.
	KindMissing
	// KindUnexpected covers everything else.
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindMissing:
		return "missing"
	default:
		return "unexpected"
	}
}

func (k ErrorKind) title() string {
	switch k {
	case KindInput:
		return messages.MenuInputErrorTitle
	case KindMissing:
		return messages.MenuMissingErrorTitle
	default:
		return messages.MenuUnexpectedErrorTitle
	}
}

// Classify maps err to the kind reported to the user.
func Classify(err error) ErrorKind {
	var optionErr *OptionError
	switch {
	case errors.As(err, &optionErr),
		errors.Is(err, catalog.ErrInvalidInput),
		errors.Is(err, appliance.ErrInvalidSpec):
		return KindInput
	case errors.Is(err, catalog.ErrNoInstance):
		return KindMissing
	default:
		return KindUnexpected
	}
}
