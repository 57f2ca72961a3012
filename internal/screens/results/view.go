package results

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

func bandColor(score int) color.Color {
	switch scoring.BandOf(score) {
	case scoring.BandStrong:
		return theme.BandStrong
	case scoring.BandModerate:
		return theme.BandModerate
	default:
		return theme.BandWeak
	}
}

func (s *ResultsScreen) View(width, height int) string {
	footer := s.renderControls(width)
	bodyHeight := height - lipgloss.Height(footer) - 1

	lines := strings.Split(s.renderBody(width), "\n")
	var visible []string
	visible, s.scroll = layout.Window(lines, s.scroll, bodyHeight)

	return strings.Join(visible, "\n") + "\n" + footer
}

func (s *ResultsScreen) renderBody(width int) string {
	r := s.results
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	b.WriteString(center.Foreground(bandColor(r.OverallConfidence)).Bold(true).Render(r.Recommendation.Label()))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf("Overall confidence: %d%%", r.OverallConfidence)))
	b.WriteString("\n\n")

	barWidth := min(width-4, 72)
	b.WriteString(heading("Scores"))
	for _, sc := range []struct {
		label string
		value int
	}{
		{"Psychometric Fit", r.PsychometricFit},
		{"Technical Readiness", r.TechnicalReadiness},
		{"WISCAR Average", r.WiscarAverage()},
	} {
		b.WriteString("  " + scoreBar(sc.label, sc.value, 20, barWidth) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(heading("WISCAR Framework"))
	for _, d := range catalog.AllDimensions() {
		b.WriteString("  " + scoreBar(d.Label(), r.Wiscar.Get(d), 20, barWidth) + "\n")
	}
	b.WriteString("\n")

	textWidth := min(width-6, 90)
	writeList(&b, "Key Insights", r.Insights, textWidth)
	if r.Recommendation.ShowNextStepsIfYes() {
		writeList(&b, "If You Pursue This Career", r.NextStepsIfYes, textWidth)
	}
	if r.Recommendation.ShowNextStepsIfNo() {
		writeList(&b, "Before You Commit", r.NextStepsIfNo, textWidth)
	}
	writeList(&b, "Skill Gaps", r.SkillGaps, textWidth)
	writeList(&b, "Alternative Paths", r.AlternatePaths, textWidth)
	writeList(&b, "Career Opportunities", r.CareerRoles, textWidth)

	return strings.TrimRight(b.String(), "\n")
}

func (s *ResultsScreen) renderControls(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")
	if s.notice != "" {
		fg := theme.Success
		if s.noticeErr {
			fg = theme.Error
		}
		b.WriteString(lipgloss.NewStyle().Foreground(fg).Render("  " + s.notice))
		b.WriteString("\n")
	}
	if s.exporting {
		b.WriteString(theme.Heading.Render("  Export report to:"))
		b.WriteString("\n  ")
		b.WriteString(s.input.View())
		return b.String()
	}
	b.WriteString(strings.TrimRight(s.menu.View(), "\n"))
	return b.String()
}

func scoreBar(label string, score, labelWidth, width int) string {
	bar := components.NewProgressBar(label, score, true, width)
	bar.LabelWidth = labelWidth
	bar.Color = bandColor(score)
	return bar.View()
}

func heading(title string) string {
	return theme.Heading.Render("  "+title) + "\n"
}

func writeList(b *strings.Builder, title string, items []string, width int) {
	if len(items) == 0 {
		return
	}
	b.WriteString(heading(title))
	item := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
	for _, it := range items {
		b.WriteString(item.Render("    • " + it))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
