package intro

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/session"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

type item struct {
	label       string
	description string
}

var discoveries = []item{
	{"Psychometric Fit", "Your personality and motivation alignment"},
	{"Technical Readiness", "Current knowledge and aptitude assessment"},
	{"WISCAR Analysis", "Comprehensive framework evaluation"},
}

var traits = []item{
	{"Analytical Thinking", "Strong quantitative and data analysis skills"},
	{"Risk Awareness", "Attention to detail and cautious approach"},
	{"Communication", "Ability to explain complex concepts clearly"},
	{"Problem Solving", "Structured approach to decision-making"},
}

var responsibilities = []string{
	"Assess creditworthiness of borrowers",
	"Develop and maintain risk assessment models",
	"Monitor portfolio performance and risk metrics",
	"Prepare risk reports for management",
	"Ensure compliance with regulatory requirements",
}

const roleSummary = "Credit Risk Specialists analyze borrower creditworthiness, manage risk models, and help financial institutions minimize loan defaults and losses."

// IntroScreen describes the assessment and starts an attempt.
type IntroScreen struct {
	sess        *session.Session
	logger      *slog.Logger
	quizFactory func() screen.Screen
	errMsg      string
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen. quizFactory builds the screen shown once the
// attempt has started.
func New(sess *session.Session, logger *slog.Logger, quizFactory func() screen.Screen) *IntroScreen {
	return &IntroScreen{
		sess:        sess,
		logger:      logger,
		quizFactory: quizFactory,
	}
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return "Career Assessment"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start assessment"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "space":
		return s, s.start()
	}
	return s, nil
}

func (s *IntroScreen) start() tea.Cmd {
	if err := s.sess.Start(); err != nil {
		s.errMsg = err.Error()
		s.logger.Error("start attempt", "error", err)
		return nil
	}
	ctx := logging.WithAttempt(context.Background(), s.sess.AttemptID())
	s.logger.InfoContext(ctx, "attempt started", "questions", s.sess.Catalog().Len())

	next := s.quizFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("Should I Learn Credit Risk Specialist?"),
		theme.Subtitle.Width(width).Render("Discover your fit for a career in credit risk management"),
		"",
	)

	colWidth := min(width-8, 76)
	left := renderBlock("What You'll Discover", discoveries)
	if !layout.IsCompactHeight(height) {
		about := lipgloss.NewStyle().Width(min(colWidth, 60)).Foreground(theme.Text).Render(roleSummary)
		left += "\n" + theme.Heading.Render("What is a Credit Risk Specialist?") + "\n" + about + "\n\n" +
			theme.Heading.Render("Key Responsibilities") + "\n" + bullets(responsibilities)

		right := renderBlock("Traits for Success", traits) + "\n" +
			theme.Heading.Render("Career Opportunities") + "\n" + bullets(scoring.CareerRoles())

		if layout.IsCompactWidth(width) {
			sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, left))
		} else {
			cols := lipgloss.JoinHorizontal(lipgloss.Top, left, "      ", right)
			sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, cols))
		}
	} else {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, left))
	}

	total := s.sess.Catalog().Len()
	details := fmt.Sprintf("%d questions • 3 sections • instant results", total)
	sections = append(sections, "", theme.Subtitle.Width(width).Render(details))

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).Render(s.errMsg))
	}

	sections = append(sections, "", lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.ButtonActive.Render("Start Assessment (Enter)")))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderBlock(title string, items []item) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(title))
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  " + it.label))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(": " + it.description))
		b.WriteString("\n")
	}
	return b.String()
}

func bullets(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  • " + l))
		b.WriteString("\n")
	}
	return b.String()
}
