package quiz

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/session"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

// QuizScreen serves the questions of a started attempt one at a time.
type QuizScreen struct {
	sess   *session.Session
	logger *slog.Logger

	resultsFactory func(scoring.Results) screen.Screen
	introFactory   func() screen.Screen

	choice      components.Choice
	questionID  string
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for sess, which must already be started.
func New(sess *session.Session, logger *slog.Logger, resultsFactory func(scoring.Results) screen.Screen, introFactory func() screen.Screen) *QuizScreen {
	s := &QuizScreen{
		sess:           sess,
		logger:         logger,
		resultsFactory: resultsFactory,
		introFactory:   introFactory,
	}
	s.sync()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if sec, ok := s.sess.Section(); ok {
		return sec.Title()
	}
	return "Assessment"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("%d%% complete  ", s.sess.OverallProgress())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon attempt"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "1-5", Description: "Pick"},
		{Key: "Enter", Description: "Pick & next"},
		{Key: "←/→", Description: "Previous/Next"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if s.confirmQuit {
		return s.handleQuitConfirm(kmsg)
	}

	switch kmsg.String() {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "left", "backspace", "p":
		s.retreat()
		return s, nil
	case "right", "n":
		return s, s.advance()
	case "enter":
		if len(s.choice.Options) == 0 {
			return s, nil
		}
		s.choice.Pick()
		if !s.stage() {
			return s, nil
		}
		return s, s.advance()
	}

	var picked bool
	s.choice, picked = s.choice.Update(kmsg)
	if picked {
		s.stage()
	}
	return s, nil
}

func (s *QuizScreen) handleQuitConfirm(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		ctx := logging.WithAttempt(context.Background(), s.sess.AttemptID())
		s.logger.InfoContext(ctx, "attempt abandoned", "answered", len(s.sess.Answers()))
		s.sess.Restart()
		next := s.introFactory()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	case "n", "N", "esc":
		s.confirmQuit = false
	}
	return s, nil
}

// stage hands the chosen option to the session.
func (s *QuizScreen) stage() bool {
	q, ok := s.sess.Current()
	if !ok || s.choice.Chosen < 0 {
		return false
	}
	if err := s.sess.Select(valueAt(q, s.choice.Chosen)); err != nil {
		s.errMsg = err.Error()
		return false
	}
	s.errMsg = ""
	return true
}

func (s *QuizScreen) advance() tea.Cmd {
	if !s.sess.CanAdvance() {
		return nil
	}
	q, _ := s.sess.Current()
	if err := s.sess.Advance(); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	ctx := logging.WithAttempt(context.Background(), s.sess.AttemptID())
	s.logger.DebugContext(ctx, "answer committed", "question_id", q.ID, "section", string(q.Section))

	if s.sess.IsComplete() {
		results := scoring.Score(s.sess.Answers(), s.sess.Catalog())
		s.logger.InfoContext(ctx, "attempt completed",
			"overall", results.OverallConfidence,
			"recommendation", string(results.Recommendation),
			"elapsed", s.sess.Elapsed().String(),
		)
		next := s.resultsFactory(results)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	s.sync()
	return nil
}

func (s *QuizScreen) retreat() {
	if err := s.sess.Retreat(); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.sync()
}

// sync rebuilds the selector when the served question changes.
func (s *QuizScreen) sync() {
	q, ok := s.sess.Current()
	if !ok {
		return
	}
	chosen := -1
	if v, ok := s.sess.Staged(); ok {
		chosen = indexOf(q, v)
	}
	if q.ID == s.questionID {
		s.choice.Chosen = chosen
		return
	}
	s.questionID = q.ID
	s.choice = components.NewChoice(optionLabels(q), chosen)
	s.errMsg = ""
}

func optionLabels(q catalog.Question) []string {
	if q.Kind.HasOptions() {
		return q.Options
	}
	scale := catalog.LikertScale()
	labels := make([]string, len(scale))
	for i, p := range scale {
		labels[i] = p.Label
	}
	return labels
}

func valueAt(q catalog.Question, i int) catalog.Value {
	if q.Kind.HasOptions() {
		return catalog.ChoiceValue(q.Options[i])
	}
	return catalog.LikertValue(catalog.LikertScale()[i].Value)
}

func indexOf(q catalog.Question, v catalog.Value) int {
	switch v := v.(type) {
	case catalog.LikertValue:
		for i, p := range catalog.LikertScale() {
			if p.Value == int(v) {
				return i
			}
		}
	case catalog.ChoiceValue:
		for i, o := range q.Options {
			if o == string(v) {
				return i
			}
		}
	}
	return -1
}
