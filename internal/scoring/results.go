package scoring

import "github.com/abhisek/careerfit/internal/catalog"

// Recommendation is the three-valued verdict derived from overall confidence.
type Recommendation string

const (
	RecommendationYes   Recommendation = "Yes"
	RecommendationMaybe Recommendation = "Maybe"
	RecommendationNo    Recommendation = "No"
)

// Recommendation thresholds, inclusive on the lower bound.
const (
	YesThreshold   = 75
	MaybeThreshold = 60
)

// RecommendationFor maps an overall confidence score to its recommendation.
func RecommendationFor(overall int) Recommendation {
	switch {
	case overall >= YesThreshold:
		return RecommendationYes
	case overall >= MaybeThreshold:
		return RecommendationMaybe
	default:
		return RecommendationNo
	}
}

// Label returns the headline shown for the recommendation.
func (r Recommendation) Label() string {
	switch r {
	case RecommendationYes:
		return "Highly Recommended"
	case RecommendationMaybe:
		return "Moderately Recommended"
	default:
		return "Not Recommended at This Time"
	}
}

// ShowNextStepsIfYes reports whether the "if yes" plan is relevant.
func (r Recommendation) ShowNextStepsIfYes() bool { return r != RecommendationNo }

// ShowNextStepsIfNo reports whether the "if no" plan is relevant.
func (r Recommendation) ShowNextStepsIfNo() bool { return r != RecommendationYes }

// Band classifies a single 0-100 score for display.
type Band int

const (
	BandWeak Band = iota
	BandModerate
	BandStrong
)

// BandOf returns the display band of a score.
func BandOf(score int) Band {
	switch {
	case score >= YesThreshold:
		return BandStrong
	case score >= MaybeThreshold:
		return BandModerate
	default:
		return BandWeak
	}
}

func (b Band) String() string {
	switch b {
	case BandStrong:
		return "strong"
	case BandModerate:
		return "moderate"
	default:
		return "weak"
	}
}

// WiscarScores holds the six WISCAR dimension scores, each 0-100.
type WiscarScores struct {
	Will      int `json:"will" yaml:"will"`
	Interest  int `json:"interest" yaml:"interest"`
	Skill     int `json:"skill" yaml:"skill"`
	Cognitive int `json:"cognitive" yaml:"cognitive"`
	Ability   int `json:"ability" yaml:"ability"`
	RealWorld int `json:"realWorld" yaml:"realWorld"`
}

// Get returns the score of one dimension.
func (w WiscarScores) Get(d catalog.Dimension) int {
	switch d {
	case catalog.DimensionWill:
		return w.Will
	case catalog.DimensionInterest:
		return w.Interest
	case catalog.DimensionSkill:
		return w.Skill
	case catalog.DimensionCognitive:
		return w.Cognitive
	case catalog.DimensionAbility:
		return w.Ability
	case catalog.DimensionRealWorld:
		return w.RealWorld
	default:
		return 0
	}
}

func (w *WiscarScores) set(d catalog.Dimension, v int) {
	switch d {
	case catalog.DimensionWill:
		w.Will = v
	case catalog.DimensionInterest:
		w.Interest = v
	case catalog.DimensionSkill:
		w.Skill = v
	case catalog.DimensionCognitive:
		w.Cognitive = v
	case catalog.DimensionAbility:
		w.Ability = v
	case catalog.DimensionRealWorld:
		w.RealWorld = v
	}
}

// Average returns the unrounded mean of the six dimensions.
func (w WiscarScores) Average() float64 {
	dims := catalog.AllDimensions()
	sum := 0
	for _, d := range dims {
		sum += w.Get(d)
	}
	return float64(sum) / float64(len(dims))
}

// Results is the immutable outcome of scoring one attempt.
type Results struct {
	PsychometricFit    int            `json:"psychometricFit" yaml:"psychometricFit"`
	TechnicalReadiness int            `json:"technicalReadiness" yaml:"technicalReadiness"`
	Wiscar             WiscarScores   `json:"wiscar" yaml:"wiscar"`
	OverallConfidence  int            `json:"overallConfidence" yaml:"overallConfidence"`
	Recommendation     Recommendation `json:"recommendation" yaml:"recommendation"`

	Insights       []string `json:"insights" yaml:"insights"`
	NextStepsIfYes []string `json:"nextStepsIfYes" yaml:"nextStepsIfYes"`
	NextStepsIfNo  []string `json:"nextStepsIfNo" yaml:"nextStepsIfNo"`
	CareerRoles    []string `json:"careerRoles" yaml:"careerRoles"`
	SkillGaps      []string `json:"skillGaps" yaml:"skillGaps"`
	AlternatePaths []string `json:"alternatePaths" yaml:"alternatePaths"`
}

// WiscarAverage returns the rounded mean of the WISCAR dimensions, as shown
// next to the dimension breakdown.
func (r Results) WiscarAverage() int {
	return round(r.Wiscar.Average())
}
