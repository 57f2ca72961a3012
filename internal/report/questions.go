package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/careerfit/internal/catalog"
)

// QuestionList is a printable slice of catalog questions.
type QuestionList []catalog.Question

func (l QuestionList) String() string {
	var b strings.Builder
	var section catalog.Section
	for _, q := range l {
		if q.Section != section {
			section = q.Section
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s\n", section.Title())
		}
		fmt.Fprintf(&b, "  [%s] %s (%s, weight %.1f)\n", q.ID, q.Text, q.Kind, q.Weight)
		for _, o := range q.Options {
			fmt.Fprintf(&b, "      - %s\n", o)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Sheets lays the questions out as a single workbook tab.
func (l QuestionList) Sheets() []Sheet {
	s := Sheet{Name: "Questions", Rows: [][]any{{"ID", "Section", "Kind", "Category", "Weight", "Text", "Options"}}}
	for _, q := range l {
		s.Rows = append(s.Rows, []any{q.ID, string(q.Section), q.Kind.String(), q.Category, q.Weight, q.Text, strings.Join(q.Options, " | ")})
	}
	return []Sheet{s}
}
