package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/session"
)

// finishedSession answers every question with the first option or Likert 4.
func finishedSession(t *testing.T) *session.Session {
	t.Helper()
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := session.New(catalog.Default(),
		session.WithAttemptID("attempt-1"),
		session.WithClock(func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}),
	)
	require.NoError(t, s.Start())
	for !s.IsComplete() {
		q, _ := s.Current()
		var v catalog.Value = catalog.LikertValue(4)
		if q.Kind.HasOptions() {
			v = catalog.ChoiceValue(q.Options[0])
		}
		require.NoError(t, s.Select(v))
		require.NoError(t, s.Advance())
	}
	return s
}

func testReport(t *testing.T) Report {
	s := finishedSession(t)
	return New(s, scoring.Score(s.Answers(), s.Catalog()))
}

func TestNew(t *testing.T) {
	r := testReport(t)

	assert.Equal(t, "attempt-1", r.AttemptID)
	assert.Len(t, r.Answers, 26)
	assert.True(t, r.CompletedAt.After(r.StartedAt))

	first := r.Answers[0]
	assert.Equal(t, "psych1", first.QuestionID)
	assert.Equal(t, catalog.SectionPsychometric, first.Section)
	assert.Equal(t, 4, first.Value)

	tech := r.Answers[8]
	assert.Equal(t, "tech1", tech.QuestionID)
	assert.Equal(t, "To maximize lending profits", tech.Value)
}

func TestFromAnswers_PartialAttempt(t *testing.T) {
	cat := catalog.Default()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	answers := []session.Answer{
		{QuestionID: "psych1", Value: catalog.LikertValue(5), Timestamp: at},
		{QuestionID: "tech3", Value: catalog.ChoiceValue("30"), Timestamp: at.Add(time.Second)},
	}
	r := FromAnswers("sheet-1", at, cat, answers, scoring.Score(answers, cat))

	assert.Equal(t, "sheet-1", r.AttemptID)
	require.Len(t, r.Answers, 2)
	assert.Equal(t, catalog.SectionTechnical, r.Answers[1].Section)
	assert.Equal(t, at.Add(time.Second), r.CompletedAt)
	assert.Equal(t, 100, r.Results.PsychometricFit)
}

func TestReport_String(t *testing.T) {
	r := Report{
		AttemptID: "abc",
		Results: scoring.Results{
			PsychometricFit:    80,
			TechnicalReadiness: 50,
			OverallConfidence:  62,
			Recommendation:     scoring.RecommendationMaybe,
			Insights:           []string{"one insight"},
			NextStepsIfYes:     []string{"yes step"},
			NextStepsIfNo:      []string{"no step"},
			CareerRoles:        scoring.CareerRoles(),
		},
	}

	out := r.String()

	assert.Contains(t, out, "Attempt: abc")
	assert.Contains(t, out, "Overall confidence: 62% (Moderately Recommended)")
	assert.Contains(t, out, "Psychometric Fit")
	assert.Contains(t, out, "strong")
	assert.Contains(t, out, "Real-World")
	assert.Contains(t, out, "  - one insight")
	assert.Contains(t, out, "  - yes step")
	assert.Contains(t, out, "  - no step")
	assert.NotContains(t, out, "Skill Gaps")
}

func TestReport_StringHidesIrrelevantSteps(t *testing.T) {
	r := Report{Results: scoring.Results{
		Recommendation: scoring.RecommendationYes,
		NextStepsIfYes: []string{"yes step"},
		NextStepsIfNo:  []string{"no step"},
	}}

	out := r.String()

	assert.Contains(t, out, "yes step")
	assert.NotContains(t, out, "no step")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestReport_Sheets(t *testing.T) {
	r := testReport(t)

	sheets := r.Sheets()

	require.Len(t, sheets, 4)
	names := []string{sheets[0].Name, sheets[1].Name, sheets[2].Name, sheets[3].Name}
	assert.Equal(t, []string{"Summary", "WISCAR", "Guidance", "Answers"}, names)
	assert.Len(t, sheets[1].Rows, 7)
	assert.Len(t, sheets[3].Rows, 27)
	assert.Equal(t, []any{"Attempt", "attempt-1"}, sheets[0].Rows[0])
}

func TestQuestionList_String(t *testing.T) {
	out := QuestionList(catalog.Default().All()).String()

	assert.Contains(t, out, "Psychometric Assessment\n")
	assert.Contains(t, out, "\nTechnical Knowledge\n")
	assert.Contains(t, out, "\nWISCAR Framework\n")
	assert.Contains(t, out, "[tech3]")
	assert.Contains(t, out, "      - 300")
}
