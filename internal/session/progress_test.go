package session

import (
	"testing"
	"time"
)

func TestProgress_Intro(t *testing.T) {
	s := testSession()

	if got := s.OverallProgress(); got != 0 {
		t.Errorf("OverallProgress = %d, want 0", got)
	}
	if got := s.SectionProgress(); got != 0 {
		t.Errorf("SectionProgress = %d, want 0", got)
	}
	if got := s.SectionSize(); got != 0 {
		t.Errorf("SectionSize = %d, want 0", got)
	}
}

func TestProgress_FirstQuestion(t *testing.T) {
	s := testSession()
	_ = s.Start()

	// 1 of 8 reached.
	if got := s.SectionProgress(); got != 13 {
		t.Errorf("SectionProgress = %d, want 13", got)
	}
	if got := s.SectionSize(); got != 8 {
		t.Errorf("SectionSize = %d, want 8", got)
	}
}

func TestProgress_AfterAnswers(t *testing.T) {
	s := testSession()
	_ = s.Start()
	for i := 0; i < 4; i++ {
		answerCurrent(t, s)
	}

	// 4 of 26 committed.
	if got := s.OverallProgress(); got != 15 {
		t.Errorf("OverallProgress = %d, want 15", got)
	}
	// Question 5 of 8.
	if got := s.SectionProgress(); got != 63 {
		t.Errorf("SectionProgress = %d, want 63", got)
	}
}

func TestProgress_Complete(t *testing.T) {
	s := testSession()
	_ = s.Start()
	for s.Phase() != PhaseResults {
		answerCurrent(t, s)
	}

	if got := s.OverallProgress(); got != 100 {
		t.Errorf("OverallProgress = %d, want 100", got)
	}
}

func TestElapsed(t *testing.T) {
	s := testSession()
	_ = s.Start()

	// The fake clock ticks one second per reading.
	if got := s.Elapsed(); got != time.Second {
		t.Errorf("Elapsed = %v, want 1s", got)
	}
}
