package catalog

// Section is one of the three question groupings of the quiz.
type Section string

const (
	SectionPsychometric Section = "psychometric"
	SectionTechnical    Section = "technical"
	SectionWiscar       Section = "wiscar"
)

// AllSections returns the sections in presentation order.
func AllSections() []Section {
	return []Section{
		SectionPsychometric,
		SectionTechnical,
		SectionWiscar,
	}
}

// Title returns the heading shown above a section's questions.
func (s Section) Title() string {
	switch s {
	case SectionPsychometric:
		return "Psychometric Assessment"
	case SectionTechnical:
		return "Technical Knowledge"
	case SectionWiscar:
		return "WISCAR Framework"
	default:
		return "Assessment"
	}
}

// Description returns the one-line blurb for a section.
func (s Section) Description() string {
	switch s {
	case SectionPsychometric:
		return "Evaluating your personality fit and motivation"
	case SectionTechnical:
		return "Testing your technical knowledge and aptitude"
	case SectionWiscar:
		return "Comprehensive framework analysis"
	default:
		return ""
	}
}

// ParseSection maps a section name back to a Section.
func ParseSection(s string) (Section, bool) {
	for _, sec := range AllSections() {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

// Kind is the answer shape of a question.
type Kind int

const (
	KindLikert         Kind = iota // integer 1-5 on the agreement scale
	KindMultipleChoice             // one of Options, graded against an answer key
	KindScenario                   // one of Options, graded by a per-option quality table
)

func (k Kind) String() string {
	switch k {
	case KindLikert:
		return "likert"
	case KindMultipleChoice:
		return "multiple-choice"
	case KindScenario:
		return "scenario"
	default:
		return "unknown"
	}
}

// HasOptions reports whether questions of this kind carry an option list.
func (k Kind) HasOptions() bool {
	return k == KindMultipleChoice || k == KindScenario
}

// MarshalText lets Kind render by name in JSON and YAML listings.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Dimension is one of the six WISCAR aggregation buckets.
type Dimension string

const (
	DimensionWill      Dimension = "will"
	DimensionInterest  Dimension = "interest"
	DimensionSkill     Dimension = "skill"
	DimensionCognitive Dimension = "cognitive"
	DimensionAbility   Dimension = "ability"
	DimensionRealWorld Dimension = "realWorld"
)

// AllDimensions returns the WISCAR dimensions in framework order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionWill,
		DimensionInterest,
		DimensionSkill,
		DimensionCognitive,
		DimensionAbility,
		DimensionRealWorld,
	}
}

// Label returns the display name of a dimension.
func (d Dimension) Label() string {
	switch d {
	case DimensionWill:
		return "Will"
	case DimensionInterest:
		return "Interest"
	case DimensionSkill:
		return "Skill"
	case DimensionCognitive:
		return "Cognitive"
	case DimensionAbility:
		return "Ability"
	case DimensionRealWorld:
		return "Real-World"
	default:
		return string(d)
	}
}

// Question is a single immutable catalog entry.
type Question struct {
	ID       string   `json:"id" yaml:"id" validate:"required"`
	Text     string   `json:"text" yaml:"text" validate:"required"`
	Kind     Kind     `json:"kind" yaml:"kind" validate:"gte=0,lte=2"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty" validate:"dive,required"`
	Section  Section  `json:"section" yaml:"section" validate:"oneof=psychometric technical wiscar"`
	Category string   `json:"category" yaml:"category" validate:"required"`
	Weight   float64  `json:"weight" yaml:"weight" validate:"gt=0"`
}

// Dimension returns the WISCAR bucket of the question, if its category names one.
func (q Question) Dimension() (Dimension, bool) {
	for _, d := range AllDimensions() {
		if string(d) == q.Category {
			return d, true
		}
	}
	return "", false
}

// HasOption reports whether s is literally one of the question's options.
func (q Question) HasOption(s string) bool {
	for _, o := range q.Options {
		if o == s {
			return true
		}
	}
	return false
}

// LikertPoint is one step of the fixed agreement scale.
type LikertPoint struct {
	Value int
	Label string
}

// LikertMin and LikertMax bound the agreement scale.
const (
	LikertMin = 1
	LikertMax = 5
)

// LikertScale returns the five-point agreement scale shared by all Likert questions.
func LikertScale() []LikertPoint {
	return []LikertPoint{
		{Value: 1, Label: "Strongly Disagree"},
		{Value: 2, Label: "Disagree"},
		{Value: 3, Label: "Neutral"},
		{Value: 4, Label: "Agree"},
		{Value: 5, Label: "Strongly Agree"},
	}
}
