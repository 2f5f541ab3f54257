// Package catalog holds the single-slot-per-kind appliance session.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"go.uber.org/zap"

	"github.com/conn-castle/appliance-catalog/internal/appliance"
	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// ErrNoInstance is returned by Display when at least one kind has no appliance.
var ErrNoInstance = errors.New("no appliance created")

// Session owns at most one appliance per kind.
// It is not safe for concurrent use.
type Session struct {
	slots       map[appliance.Kind]appliance.Appliance
	labels      appliance.Labels
	washerRule  appliance.WasherMediumRule
	logger      *zap.Logger
	replacement string
}

// Option configures a Session.
type Option func(*Session)

// WithLabels sets the label set used by Display and replacement previews.
func WithLabels(labels appliance.Labels) Option {
	return func(s *Session) { s.labels = labels }
}

// WithWasherMediumRule sets the Medium rule applied to every washer the session builds.
func WithWasherMediumRule(rule appliance.WasherMediumRule) Option {
	return func(s *Session) { s.washerRule = rule }
}

// WithLogger sets the session logger; nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession returns an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		slots:      make(map[appliance.Kind]appliance.Appliance, len(appliance.Kinds())),
		labels:     appliance.SpanishLabels(),
		washerRule: appliance.MediumAny,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Labels returns the session's label set.
func (s *Session) Labels() appliance.Labels {
	return s.labels
}

// Create parses and validates fields, builds the appliance for kind, and stores it,
// replacing any appliance of the same kind.
func (s *Session) Create(kind appliance.Kind, fields Fields) (appliance.Appliance, error) {
	a, err := s.build(kind, fields)
	if err != nil {
		return nil, err
	}
	s.Store(a)
	return a, nil
}

func (s *Session) build(kind appliance.Kind, fields Fields) (appliance.Appliance, error) {
	switch kind {
	case appliance.KindWasher:
		spec, err := parseWasher(fields)
		if err != nil {
			return nil, err
		}
		w, err := appliance.NewWasher(spec, appliance.WithWasherMediumRule(s.washerRule))
		if err != nil {
			return nil, err
		}
		return w, nil
	case appliance.KindRefrigerator:
		spec, err := parseRefrigerator(fields)
		if err != nil {
			return nil, err
		}
		r, err := appliance.NewRefrigerator(spec)
		if err != nil {
			return nil, err
		}
		return r, nil
	case appliance.KindMicrowave:
		spec, err := parseMicrowave(fields)
		if err != nil {
			return nil, err
		}
		m, err := appliance.NewMicrowave(spec)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q", appliance.ErrUnknownKind, kind)
	}
}

// Store places a into its kind's slot. When the slot was occupied, a unified
// diff of the two descriptions becomes available from Replacement.
func (s *Session) Store(a appliance.Appliance) {
	kind := a.Kind()
	s.replacement = ""
	if prev, ok := s.slots[kind]; ok {
		s.replacement = strings.TrimSpace(udiff.Unified(
			fmt.Sprintf(messages.CatalogDiffCurrentFmt, KindName(kind)),
			fmt.Sprintf(messages.CatalogDiffProposedFmt, KindName(kind)),
			prev.DescribeIn(s.labels)+"\n",
			a.DescribeIn(s.labels)+"\n",
		))
		s.logger.Debug("appliance replaced", zap.String("kind", string(kind)))
	}
	s.slots[kind] = a
	s.logger.Debug("appliance stored",
		zap.String("kind", string(kind)),
		zap.Stringer("tier", a.Classify()),
	)
}

// Replacement returns the diff produced by the most recent Store, or "" when
// it filled an empty slot or nothing changed.
func (s *Session) Replacement() string {
	return s.replacement
}

// Get returns the appliance stored for kind.
func (s *Session) Get(kind appliance.Kind) (appliance.Appliance, bool) {
	a, ok := s.slots[kind]
	return a, ok
}

// Display writes every kind in display order. Empty slots get a notice and
// the call returns ErrNoInstance naming them after everything is written.
func (s *Session) Display(w io.Writer) error {
	var missing []string
	for _, kind := range appliance.Kinds() {
		_, _ = fmt.Fprintf(w, "\n%s\n", KindHeader(kind))
		a, ok := s.slots[kind]
		if !ok {
			_, _ = fmt.Fprintf(w, messages.CatalogNoInstanceFmt+"\n", KindName(kind))
			missing = append(missing, KindName(kind))
			continue
		}
		_, _ = fmt.Fprintln(w, a.DescribeIn(s.labels))
	}
	if len(missing) > 0 {
		return fmt.Errorf(messages.CatalogMissingKindsFmt, ErrNoInstance, strings.Join(missing, ", "))
	}
	return nil
}
