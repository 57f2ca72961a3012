package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/session"
)

// Report is the exportable record of one scored attempt.
type Report struct {
	AttemptID   string          `json:"attemptId" yaml:"attemptId"`
	StartedAt   time.Time       `json:"startedAt" yaml:"startedAt"`
	CompletedAt time.Time       `json:"completedAt" yaml:"completedAt"`
	Results     scoring.Results `json:"results" yaml:"results"`
	Answers     []AnswerRecord  `json:"answers" yaml:"answers"`
}

// AnswerRecord is a committed answer flattened for export.
type AnswerRecord struct {
	QuestionID string          `json:"questionId" yaml:"questionId"`
	Section    catalog.Section `json:"section" yaml:"section"`
	Value      any             `json:"value" yaml:"value"`
}

// New builds a report from a finished session and its results. CompletedAt
// is the time of the last committed answer.
func New(s *session.Session, r scoring.Results) Report {
	return FromAnswers(s.AttemptID(), s.StartedAt(), s.Catalog(), s.Answers(), r)
}

// FromAnswers builds a report from a bare answer list, for attempts scored
// without a session.
func FromAnswers(attemptID string, startedAt time.Time, cat *catalog.Catalog, answers []session.Answer, r scoring.Results) Report {
	rep := Report{
		AttemptID: attemptID,
		StartedAt: startedAt,
		Results:   r,
	}
	for _, a := range answers {
		rec := AnswerRecord{QuestionID: a.QuestionID, Value: plainValue(a.Value)}
		if q, err := cat.Lookup(a.QuestionID); err == nil {
			rec.Section = q.Section
		}
		rep.Answers = append(rep.Answers, rec)
		if a.Timestamp.After(rep.CompletedAt) {
			rep.CompletedAt = a.Timestamp
		}
	}
	return rep
}

func plainValue(v catalog.Value) any {
	switch v := v.(type) {
	case catalog.LikertValue:
		return int(v)
	case catalog.ChoiceValue:
		return string(v)
	default:
		return nil
	}
}

// String renders the report as plain text for terminals and .txt exports.
func (r Report) String() string {
	res := r.Results
	var b strings.Builder

	fmt.Fprintf(&b, "Credit Risk Career Fit Report\n")
	if r.AttemptID != "" {
		fmt.Fprintf(&b, "Attempt: %s\n", r.AttemptID)
	}
	fmt.Fprintf(&b, "\nOverall confidence: %d%% (%s)\n", res.OverallConfidence, res.Recommendation.Label())

	b.WriteString("\nScores\n")
	writeScore(&b, "Psychometric Fit", res.PsychometricFit)
	writeScore(&b, "Technical Readiness", res.TechnicalReadiness)
	writeScore(&b, "WISCAR Average", res.WiscarAverage())

	b.WriteString("\nWISCAR Framework\n")
	for _, d := range catalog.AllDimensions() {
		writeScore(&b, d.Label(), res.Wiscar.Get(d))
	}

	writeList(&b, "Insights", res.Insights)
	if res.Recommendation.ShowNextStepsIfYes() {
		writeList(&b, "Next Steps (if pursuing)", res.NextStepsIfYes)
	}
	if res.Recommendation.ShowNextStepsIfNo() {
		writeList(&b, "Next Steps (alternatives)", res.NextStepsIfNo)
	}
	writeList(&b, "Career Roles", res.CareerRoles)
	writeList(&b, "Skill Gaps", res.SkillGaps)
	writeList(&b, "Alternate Paths", res.AlternatePaths)

	return strings.TrimRight(b.String(), "\n")
}

func writeScore(b *strings.Builder, label string, score int) {
	fmt.Fprintf(b, "  %-20s %3d%%  %s\n", label, score, scoring.BandOf(score))
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "  - %s\n", it)
	}
}

// Sheets lays the report out as workbook tabs.
func (r Report) Sheets() []Sheet {
	res := r.Results

	summary := Sheet{Name: "Summary", Rows: [][]any{
		{"Attempt", r.AttemptID},
		{"Started", r.StartedAt.Format(time.RFC3339)},
		{"Completed", r.CompletedAt.Format(time.RFC3339)},
		{"Overall Confidence", res.OverallConfidence},
		{"Recommendation", res.Recommendation.Label()},
		{"Psychometric Fit", res.PsychometricFit},
		{"Technical Readiness", res.TechnicalReadiness},
		{"WISCAR Average", res.WiscarAverage()},
	}}

	wiscar := Sheet{Name: "WISCAR", Rows: [][]any{{"Dimension", "Score", "Band"}}}
	for _, d := range catalog.AllDimensions() {
		score := res.Wiscar.Get(d)
		wiscar.Rows = append(wiscar.Rows, []any{d.Label(), score, scoring.BandOf(score).String()})
	}

	guidance := Sheet{Name: "Guidance", Rows: [][]any{{"Kind", "Text"}}}
	add := func(kind string, items []string) {
		for _, it := range items {
			guidance.Rows = append(guidance.Rows, []any{kind, it})
		}
	}
	add("Insight", res.Insights)
	add("Next Step (if yes)", res.NextStepsIfYes)
	add("Next Step (if no)", res.NextStepsIfNo)
	add("Career Role", res.CareerRoles)
	add("Skill Gap", res.SkillGaps)
	add("Alternate Path", res.AlternatePaths)

	answers := Sheet{Name: "Answers", Rows: [][]any{{"Question", "Section", "Value"}}}
	for _, a := range r.Answers {
		answers.Rows = append(answers.Rows, []any{a.QuestionID, string(a.Section), a.Value})
	}

	return []Sheet{summary, wiscar, guidance, answers}
}
