package session

import (
	"fmt"

	"github.com/abhisek/careerfit/internal/catalog"
)

// Start begins the attempt at the first psychometric question. It is only
// valid from Intro; it clears answers and resets the clock.
func (s *Session) Start() error {
	if s.phase != PhaseIntro {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.phase)
	}
	s.answers = nil
	s.staged = nil
	s.startedAt = s.now()
	s.enter(PhasePsychometric)
	return nil
}

// Select stages v as the candidate answer for the current question without
// committing it. v must fit the question's kind.
func (s *Session) Select(v catalog.Value) error {
	q, ok := s.Current()
	if !ok {
		return fmt.Errorf("%w: select in %s", ErrInvalidTransition, s.phase)
	}
	if err := catalog.CheckValue(q, v); err != nil {
		return err
	}
	s.staged = v
	return nil
}

// CanAdvance reports whether a value is staged for the current question.
func (s *Session) CanAdvance() bool {
	_, ok := s.Current()
	return ok && s.staged != nil
}

// Advance commits the staged value and moves to the next question, crossing
// into the next section after the last one. Leaving the WISCAR section
// completes the attempt. With nothing staged Advance does nothing.
func (s *Session) Advance() error {
	q, ok := s.Current()
	if !ok {
		return fmt.Errorf("%w: advance from %s", ErrInvalidTransition, s.phase)
	}
	if s.staged == nil {
		return nil
	}

	s.commit(q.ID, s.staged)
	s.staged = nil

	sec, _ := s.phase.Section()
	if s.index < s.cat.SectionSize(sec)-1 {
		s.index++
		s.restage()
		return nil
	}
	s.enter(s.phase + 1)
	return nil
}

// CanRetreat reports whether Retreat would move.
func (s *Session) CanRetreat() bool {
	if _, ok := s.Current(); !ok {
		return false
	}
	if s.index > 0 {
		return true
	}
	_, ok := s.previousPhase()
	return ok
}

// Retreat moves to the previous question, or to the last question of the
// previous section. Committed answers are kept and the revisited question's
// answer is staged again. At the first question Retreat does nothing.
func (s *Session) Retreat() error {
	if _, ok := s.Current(); !ok {
		return fmt.Errorf("%w: retreat from %s", ErrInvalidTransition, s.phase)
	}
	if !s.CanRetreat() {
		return nil
	}

	s.staged = nil
	if s.index > 0 {
		s.index--
	} else {
		prev, _ := s.previousPhase()
		sec, _ := prev.Section()
		s.phase = prev
		s.index = s.cat.SectionSize(sec) - 1
	}
	s.restage()
	return nil
}

// Restart discards all answers and returns to Intro as a fresh attempt.
func (s *Session) Restart() {
	s.reset()
}

// enter moves to the first question of phase p, skipping sections that have
// no questions. Reaching Results completes the attempt.
func (s *Session) enter(p Phase) {
	s.index = 0
	s.staged = nil
	for ; p < PhaseResults; p++ {
		sec, _ := p.Section()
		if s.cat.SectionSize(sec) > 0 {
			s.phase = p
			s.restage()
			return
		}
	}
	s.phase = PhaseResults
	s.complete = true
}

// previousPhase finds the nearest earlier question phase with questions.
func (s *Session) previousPhase() (Phase, bool) {
	for p := s.phase - 1; p >= PhasePsychometric; p-- {
		sec, _ := p.Section()
		if s.cat.SectionSize(sec) > 0 {
			return p, true
		}
	}
	return PhaseIntro, false
}

// restage pre-populates the staged slot with the current question's
// committed answer, if there is one.
func (s *Session) restage() {
	q, ok := s.Current()
	if !ok {
		return
	}
	if a, ok := s.AnswerFor(q.ID); ok {
		s.staged = a.Value
	}
}
