package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/session"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

// ReviewScreen lists every question with the answer given, marking technical
// answers against the key.
type ReviewScreen struct {
	sess   *session.Session
	scroll int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen over sess's committed answers.
func New(sess *session.Session) *ReviewScreen {
	return &ReviewScreen{sess: sess}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review Answers"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.scroll = max(s.scroll-1, 0)
	case "down", "j":
		s.scroll++
	case "pgup":
		s.scroll = max(s.scroll-10, 0)
	case "pgdown":
		s.scroll += 10
	case "home", "g":
		s.scroll = 0
	}
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	lines := s.lines(width)
	var visible []string
	visible, s.scroll = layout.Window(lines, s.scroll, height)
	return strings.Join(visible, "\n")
}

func (s *ReviewScreen) lines(width int) []string {
	cat := s.sess.Catalog()
	textWidth := min(width-8, 100)
	var out []string

	for _, sec := range catalog.AllSections() {
		qs := cat.QuestionsIn(sec)
		if len(qs) == 0 {
			continue
		}
		out = append(out, theme.Heading.Render("  "+sec.Title()), "")
		for i, q := range qs {
			text := lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth).
				Render(fmt.Sprintf("%d. %s", i+1, q.Text))
			for _, l := range strings.Split(text, "\n") {
				out = append(out, "  "+l)
			}
			out = append(out, "     "+s.answerLine(cat, q), "")
		}
	}
	return out
}

func (s *ReviewScreen) answerLine(cat *catalog.Catalog, q catalog.Question) string {
	a, ok := s.sess.AnswerFor(q.ID)
	if !ok {
		return theme.Hint.Render("not answered")
	}

	answer := answerLabel(a.Value)
	switch q.Kind {
	case catalog.KindMultipleChoice:
		correct, _ := cat.CorrectAnswer(q.ID)
		if answer == correct {
			return theme.Chosen.Render("✓ " + answer)
		}
		return lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+answer) +
			theme.Hint.Render("  (correct: "+correct+")")
	case catalog.KindScenario:
		score := cat.ScenarioScore(q.ID, answer)
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(answer) +
			theme.Hint.Render(fmt.Sprintf("  (%d/100)", score))
	default:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(answer)
	}
}

func answerLabel(v catalog.Value) string {
	if l, ok := v.(catalog.LikertValue); ok {
		for _, p := range catalog.LikertScale() {
			if p.Value == int(l) {
				return fmt.Sprintf("%d · %s", p.Value, p.Label)
			}
		}
	}
	return v.String()
}
