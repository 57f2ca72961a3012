package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/intro"
	"github.com/abhisek/careerfit/internal/screens/quiz"
	"github.com/abhisek/careerfit/internal/screens/results"
	"github.com/abhisek/careerfit/internal/screens/review"
	"github.com/abhisek/careerfit/internal/session"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

// Options holds the dependencies of the interactive assessment.
type Options struct {
	Catalog   *catalog.Catalog
	Logger    *slog.Logger
	ReportDir string
}

// flow builds the screens of one attempt around a shared session.
type flow struct {
	sess   *session.Session
	logger *slog.Logger
	dir    string
}

func (f *flow) intro() screen.Screen {
	return intro.New(f.sess, f.logger, f.quiz)
}

func (f *flow) quiz() screen.Screen {
	return quiz.New(f.sess, f.logger, f.results, f.intro)
}

func (f *flow) results(r scoring.Results) screen.Screen {
	return results.New(f.sess, r, f.logger, f.dir, results.Factories{
		Intro:  f.intro,
		Review: f.review,
	})
}

func (f *flow) review() screen.Screen {
	return review.New(f.sess)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the intro screen.
func newAppModel(opts Options) AppModel {
	f := &flow{
		sess:   session.New(opts.Catalog),
		logger: opts.Logger,
		dir:    opts.ReportDir,
	}
	return AppModel{
		router: router.New(f.intro()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
