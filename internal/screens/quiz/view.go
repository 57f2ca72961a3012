package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	q, ok := s.sess.Current()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No question to show.")
	}
	sec, _ := s.sess.Section()

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + sec.Title())
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.sess.Index()+1, s.sess.SectionSize()))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	if !layout.IsCompactHeight(height) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + sec.Description()))
		b.WriteString("\n")
	}

	barWidth := min(width-4, 70)
	section := components.NewProgressBar("Section", s.sess.SectionProgress(), true, barWidth)
	section.LabelWidth = 8
	overall := components.NewProgressBar("Overall", s.sess.OverallProgress(), true, barWidth)
	overall.LabelWidth = 8
	overall.Color = theme.Primary
	b.WriteString("  " + section.View() + "\n")
	b.WriteString("  " + overall.View() + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	textWidth := min(width-8, 90)
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(lipgloss.NewStyle().Width(textWidth).Render(q.Text)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
		Render(strings.ReplaceAll(q.Category, "_", " ")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	prev := components.NewButton("← Previous", s.sess.CanRetreat())
	next := components.NewButton("Next →", s.sess.CanAdvance())
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, prev.View(), "    ", next.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, buttons))

	return b.String()
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Abandon this attempt?") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your answers will be discarded.") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Accent).Render("[Y] Yes   [N] No"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
