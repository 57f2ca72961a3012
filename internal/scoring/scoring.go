package scoring

import (
	"math"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/session"
)

// Blend weights of the overall confidence score.
const (
	psychometricShare = 0.3
	technicalShare    = 0.3
	wiscarShare       = 0.4
)

// scored is an answer resolved against its question.
type scored struct {
	q catalog.Question
	v catalog.Value
}

// Score computes the results of an attempt. It is pure: the same answers and
// catalog always produce the same Results. Answers for unknown questions, or
// whose value has the wrong shape for the question kind, are ignored. When an
// id repeats the last answer wins. A choice that is not among the question's
// options is scored as given: wrong for multiple choice, neutral for scenarios.
func Score(answers []session.Answer, cat *catalog.Catalog) Results {
	bySection := resolve(answers, cat)

	psych := psychometricFit(bySection[catalog.SectionPsychometric])
	tech := technicalReadiness(bySection[catalog.SectionTechnical], cat)
	wiscar := wiscarScores(bySection[catalog.SectionWiscar], cat)

	overall := round(psychometricShare*float64(psych) + technicalShare*float64(tech) + wiscarShare*wiscar.Average())

	return Results{
		PsychometricFit:    psych,
		TechnicalReadiness: tech,
		Wiscar:             wiscar,
		OverallConfidence:  overall,
		Recommendation:     RecommendationFor(overall),
		Insights:           insights(psych, tech, wiscar),
		NextStepsIfYes:     nextStepsIfYes(tech, wiscar),
		NextStepsIfNo:      nextStepsIfNo(psych, tech),
		CareerRoles:        CareerRoles(),
		SkillGaps:          skillGaps(tech, wiscar),
		AlternatePaths:     alternatePaths(psych, tech),
	}
}

// resolve deduplicates answers by question id and groups them by section in
// catalog order.
func resolve(answers []session.Answer, cat *catalog.Catalog) map[catalog.Section][]scored {
	latest := make(map[string]catalog.Value, len(answers))
	for _, a := range answers {
		q, err := cat.Lookup(a.QuestionID)
		if err != nil {
			continue
		}
		if !fits(q, a.Value) {
			continue
		}
		latest[a.QuestionID] = a.Value
	}

	out := make(map[catalog.Section][]scored, len(catalog.AllSections()))
	for _, q := range cat.All() {
		if v, ok := latest[q.ID]; ok {
			out[q.Section] = append(out[q.Section], scored{q: q, v: v})
		}
	}
	return out
}

// fits checks only the value shape; option membership is left to scoring.
func fits(q catalog.Question, v catalog.Value) bool {
	switch v := v.(type) {
	case catalog.LikertValue:
		return q.Kind == catalog.KindLikert && v >= catalog.LikertMin && v <= catalog.LikertMax
	case catalog.ChoiceValue:
		return q.Kind.HasOptions()
	default:
		return false
	}
}

func psychometricFit(answers []scored) int {
	var total, weight float64
	for _, a := range answers {
		total += likertPercent(a.v) * a.q.Weight
		weight += a.q.Weight
	}
	if weight == 0 {
		return 0
	}
	return round(total / weight)
}

// technicalReadiness is the unweighted share of correct answers.
func technicalReadiness(answers []scored, cat *catalog.Catalog) int {
	if len(answers) == 0 {
		return 0
	}
	correct := 0
	for _, a := range answers {
		if isCorrect(a, cat) {
			correct++
		}
	}
	return round(float64(correct) / float64(len(answers)) * 100)
}

func wiscarScores(answers []scored, cat *catalog.Catalog) WiscarScores {
	var scores WiscarScores
	for _, d := range catalog.AllDimensions() {
		var total, weight float64
		for _, a := range answers {
			if dim, ok := a.q.Dimension(); !ok || dim != d {
				continue
			}
			total += normalize(a, cat) * a.q.Weight
			weight += a.q.Weight
		}
		if weight > 0 {
			scores.set(d, round(total/weight))
		}
	}
	return scores
}

// normalize maps an answer onto 0-100 according to its question kind.
func normalize(a scored, cat *catalog.Catalog) float64 {
	switch a.q.Kind {
	case catalog.KindScenario:
		return float64(cat.ScenarioScore(a.q.ID, a.v.String()))
	case catalog.KindMultipleChoice:
		if isCorrect(a, cat) {
			return 100
		}
		return 0
	default:
		return likertPercent(a.v)
	}
}

func isCorrect(a scored, cat *catalog.Catalog) bool {
	want, ok := cat.CorrectAnswer(a.q.ID)
	return ok && a.v.String() == want
}

func likertPercent(v catalog.Value) float64 {
	lv, ok := v.(catalog.LikertValue)
	if !ok {
		return 0
	}
	return float64(lv) / catalog.LikertMax * 100
}

// round rounds half away from zero.
func round(x float64) int {
	return int(math.Round(x))
}
