package results

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerfit/internal/config"
	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/session"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

type restartMsg struct{}
type reviewMsg struct{}
type exportMsg struct{}

// Factories wires the screens reachable from the results screen.
type Factories struct {
	Intro  func() screen.Screen
	Review func() screen.Screen
}

// ResultsScreen shows the scored outcome of a completed attempt.
type ResultsScreen struct {
	sess      *session.Session
	results   scoring.Results
	report    report.Report
	logger    *slog.Logger
	reportDir string
	factories Factories

	menu      components.Menu
	scroll    int
	exporting bool
	input     components.TextInput
	notice    string
	noticeErr bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. Reports exported from it default to reportDir.
func New(sess *session.Session, results scoring.Results, logger *slog.Logger, reportDir string, factories Factories) *ResultsScreen {
	s := &ResultsScreen{
		sess:      sess,
		results:   results,
		report:    report.New(sess, results),
		logger:    logger,
		reportDir: reportDir,
		factories: factories,
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Retake assessment", Key: "r", Action: msgCmd(restartMsg{})},
		{Label: "Review answers", Key: "v", Action: msgCmd(reviewMsg{})},
		{Label: "Export report", Key: "e", Action: msgCmd(exportMsg{})},
		{Label: "Quit", Key: "q", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func msgCmd(msg tea.Msg) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return msg }
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) Status() string {
	return fmt.Sprintf("%d%% confidence  ", s.results.OverallConfidence)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.exporting {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Menu"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case restartMsg:
		s.sess.Restart()
		next := s.factories.Intro()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case reviewMsg:
		next := s.factories.Review()
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	case exportMsg:
		s.exporting = true
		s.notice = ""
		s.input = components.NewTextInput("report path (.txt, .json, .yaml, .xlsx)", s.defaultReportPath(), 0)
		return s, s.input.Init()

	case tea.KeyPressMsg:
		if s.exporting {
			return s.handleExportKey(msg)
		}
		switch msg.String() {
		case "pgdown", "shift+down":
			s.scroll += 5
			return s, nil
		case "pgup", "shift+up":
			s.scroll = max(s.scroll-5, 0)
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	if s.exporting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultsScreen) handleExportKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.exporting = false
		return s, nil
	case "enter":
		path := strings.TrimSpace(s.input.Value())
		if err := s.export(path); err != nil {
			s.input.Submit(false)
			s.notice = err.Error()
			s.noticeErr = true
			return s, nil
		}
		s.input.Submit(true)
		s.exporting = false
		s.notice = "Report saved to " + path
		s.noticeErr = false
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) export(path string) error {
	ctx := logging.WithAttempt(context.Background(), s.report.AttemptID)
	if path == "" {
		return errors.New("enter a file path")
	}
	if err := config.EnsureDir(path); err != nil {
		s.logger.ErrorContext(ctx, "create report dir", "path", path, "error", err)
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := report.WriteFile(path, s.report); err != nil {
		s.logger.ErrorContext(ctx, "export report", "path", path, "error", err)
		return err
	}
	s.logger.InfoContext(ctx, "report exported", "path", path)
	return nil
}

func (s *ResultsScreen) defaultReportPath() string {
	name := fmt.Sprintf("careerfit-%s.txt", s.report.AttemptID)
	if s.reportDir == "" {
		return name
	}
	return filepath.Join(s.reportDir, name)
}
