package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/careerfit/internal/catalog"
)

// ErrInvalidTransition is returned when an operation is not defined for the
// session's current phase.
var ErrInvalidTransition = errors.New("invalid transition")

// Phase is the current position of an attempt in the linear quiz flow.
type Phase int

const (
	PhaseIntro        Phase = iota // Before Start
	PhasePsychometric              // Serving psychometric questions
	PhaseTechnical                 // Serving technical questions
	PhaseWiscar                    // Serving WISCAR questions
	PhaseResults                   // Terminal; caller scores the answers
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePsychometric:
		return "psychometric"
	case PhaseTechnical:
		return "technical"
	case PhaseWiscar:
		return "wiscar"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Section returns the catalog section served in this phase, if any.
func (p Phase) Section() (catalog.Section, bool) {
	switch p {
	case PhasePsychometric:
		return catalog.SectionPsychometric, true
	case PhaseTechnical:
		return catalog.SectionTechnical, true
	case PhaseWiscar:
		return catalog.SectionWiscar, true
	default:
		return "", false
	}
}

// Session is the mutable state of one quiz attempt. Each attempt owns its own
// Session; it is not safe for concurrent use.
type Session struct {
	cat *catalog.Catalog

	phase   Phase
	index   int
	answers []Answer
	staged  catalog.Value

	attemptID string
	startedAt time.Time
	complete  bool

	now   func() time.Time
	newID func() string
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source used for answer timestamps and elapsed time.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithAttemptID pins the attempt id instead of generating a UUID per attempt.
func WithAttemptID(id string) Option {
	return func(s *Session) {
		s.newID = func() string { return id }
	}
}

// New creates a session in the Intro phase with no answers.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		cat:   cat,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.phase = PhaseIntro
	s.index = 0
	s.answers = nil
	s.staged = nil
	s.complete = false
	s.attemptID = s.newID()
	s.startedAt = s.now()
}

// Catalog returns the catalog the session navigates.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Section returns the section being served, or false outside question phases.
func (s *Session) Section() (catalog.Section, bool) { return s.phase.Section() }

// Index returns the zero-based question index within the current section.
// It is meaningless in the Intro and Results phases.
func (s *Session) Index() int { return s.index }

// IsComplete reports whether the attempt has reached Results.
func (s *Session) IsComplete() bool { return s.complete }

// AttemptID identifies this attempt in logs and exported reports.
func (s *Session) AttemptID() string { return s.attemptID }

// StartedAt returns when the attempt was started.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Elapsed returns the time since the attempt was started.
func (s *Session) Elapsed() time.Duration { return s.now().Sub(s.startedAt) }

// Current returns the question being served, or false outside question phases.
func (s *Session) Current() (catalog.Question, bool) {
	sec, ok := s.phase.Section()
	if !ok {
		return catalog.Question{}, false
	}
	return s.cat.At(sec, s.index)
}

// Staged returns the candidate answer for the current question, if one is held.
func (s *Session) Staged() (catalog.Value, bool) {
	return s.staged, s.staged != nil
}
