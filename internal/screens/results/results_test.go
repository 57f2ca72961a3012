package results

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/session"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func finishedSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(catalog.Default(), session.WithAttemptID("results-attempt"))
	if err := sess.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for !sess.IsComplete() {
		q, _ := sess.Current()
		var v catalog.Value = catalog.LikertValue(5)
		if q.Kind.HasOptions() {
			v = catalog.ChoiceValue(q.Options[0])
		}
		if err := sess.Select(v); err != nil {
			t.Fatalf("Select(%s): %v", q.ID, err)
		}
		if err := sess.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	return sess
}

func testResultsScreen(t *testing.T, reportDir string) (*ResultsScreen, *session.Session) {
	t.Helper()
	sess := finishedSession(t)
	r := scoring.Score(sess.Answers(), sess.Catalog())
	s := New(sess, r, slog.New(slog.DiscardHandler), reportDir, Factories{
		Intro:  func() screen.Screen { return &stubScreen{title: "Intro"} },
		Review: func() screen.Screen { return &stubScreen{title: "Review"} },
	})
	return s, sess
}

// run feeds msg to the screen and delivers any message its command
// produces back to it, once.
func run(s *ResultsScreen, msg tea.Msg) tea.Msg {
	_, cmd := s.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	if _, ok := out.(restartMsg); ok {
		_, cmd = s.Update(out)
		return cmd()
	}
	if _, ok := out.(reviewMsg); ok {
		_, cmd = s.Update(out)
		return cmd()
	}
	if _, ok := out.(exportMsg); ok {
		s.Update(out)
		return nil
	}
	return out
}

func TestResults_View(t *testing.T) {
	s, _ := testResultsScreen(t, t.TempDir())

	view := s.View(100, 80)
	for _, want := range []string{"Overall confidence:", "Psychometric Fit", "WISCAR Framework", "Real-World", "Key Insights", "Retake assessment (r)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(s.Status(), "% confidence") {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestResults_ScrollClamps(t *testing.T) {
	s, _ := testResultsScreen(t, t.TempDir())

	for range 50 {
		s.Update(specialKey(tea.KeyPgDown))
	}
	s.View(100, 30)
	clamped := s.scroll
	if clamped == 0 {
		t.Fatal("expected the body to scroll in a short viewport")
	}
	s.Update(specialKey(tea.KeyPgUp))
	if s.scroll != clamped-5 {
		t.Errorf("scroll = %d, want %d", s.scroll, clamped-5)
	}
}

func TestResults_Restart(t *testing.T) {
	s, sess := testResultsScreen(t, t.TempDir())

	msg, ok := run(s, keyPress('r')).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "Intro" {
		t.Errorf("replaced with %q", msg.Screen.Title())
	}
	if sess.Phase() != session.PhaseIntro || len(sess.Answers()) != 0 {
		t.Error("session should be restarted")
	}
}

func TestResults_Review(t *testing.T) {
	s, _ := testResultsScreen(t, t.TempDir())

	msg, ok := run(s, keyPress('v')).(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if msg.Screen.Title() != "Review" {
		t.Errorf("pushed %q", msg.Screen.Title())
	}
}

func TestResults_Quit(t *testing.T) {
	s, _ := testResultsScreen(t, t.TempDir())

	if _, ok := run(s, keyPress('q')).(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestResults_ExportDefaultPath(t *testing.T) {
	dir := t.TempDir()
	s, _ := testResultsScreen(t, dir)

	run(s, keyPress('e'))
	if !s.exporting {
		t.Fatal("expected export prompt")
	}
	want := filepath.Join(dir, "careerfit-results-attempt.txt")
	if s.input.Value() != want {
		t.Errorf("default path = %q, want %q", s.input.Value(), want)
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.exporting {
		t.Fatal("export prompt should close on success")
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "Credit Risk Career Fit Report") {
		t.Error("text report missing heading")
	}
	if !strings.Contains(s.View(100, 80), "Report saved to") {
		t.Error("expected saved notice")
	}
}

func TestResults_ExportJSONIntoNewDir(t *testing.T) {
	s, _ := testResultsScreen(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	run(s, keyPress('e'))
	s.input.Model.SetValue(path)
	s.Update(specialKey(tea.KeyEnter))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var got struct {
		AttemptID string `json:"attemptId"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.AttemptID != "results-attempt" {
		t.Errorf("attemptId = %q", got.AttemptID)
	}
}

func TestResults_ExportErrorsKeepPrompt(t *testing.T) {
	s, _ := testResultsScreen(t, t.TempDir())

	run(s, keyPress('e'))
	s.input.Model.SetValue(filepath.Join(t.TempDir(), "report.pdf"))
	s.Update(specialKey(tea.KeyEnter))

	if !s.exporting {
		t.Error("prompt should stay open after a failed export")
	}
	if !s.noticeErr || !strings.Contains(s.notice, "cannot infer format") {
		t.Errorf("notice = %q", s.notice)
	}

	s.Update(specialKey(tea.KeyEscape))
	if s.exporting {
		t.Error("Esc should cancel the export")
	}
}
