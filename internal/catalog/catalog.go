package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownQuestion is returned by Lookup for ids not in the catalog.
var ErrUnknownQuestion = errors.New("unknown question")

// NeutralScenarioScore is the normalized score of a scenario option that has
// no entry in its question's scoring table.
const NeutralScenarioScore = 50

// Catalog is the read-only, ordered question set with precomputed indices.
type Catalog struct {
	questions []Question
	byID      map[string]int
	bySection map[Section][]Question

	answerKey map[string]string
	scenarios map[string]map[string]int

	strictScenarios bool
}

// Option configures a Catalog at construction.
type Option func(*Catalog)

// WithAnswerKey sets the correct option text for technical questions.
func WithAnswerKey(key map[string]string) Option {
	return func(c *Catalog) {
		c.answerKey = maps.Clone(key)
	}
}

// WithScenarioTables sets the per-option quality scores for scenario questions.
func WithScenarioTables(tables map[string]map[string]int) Option {
	return func(c *Catalog) {
		c.scenarios = make(map[string]map[string]int, len(tables))
		for id, t := range tables {
			c.scenarios[id] = maps.Clone(t)
		}
	}
}

// WithStrictScenarios makes construction fail when any scenario option is
// missing from its scoring table, instead of scoring it neutrally.
func WithStrictScenarios() Option {
	return func(c *Catalog) {
		c.strictScenarios = true
	}
}

// New builds and validates a catalog from questions in presentation order.
func New(questions []Question, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		questions: slices.Clone(questions),
		byID:      make(map[string]int, len(questions)),
		bySection: make(map[Section][]Question),
		answerKey: map[string]string{},
		scenarios: map[string]map[string]int{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := validateCatalog(c); err != nil {
		return nil, err
	}

	for i, q := range c.questions {
		c.byID[q.ID] = i
		c.bySection[q.Section] = append(c.bySection[q.Section], q)
	}
	return c, nil
}

// NewDefault builds the built-in catalog with extra options, such as
// WithStrictScenarios.
func NewDefault(opts ...Option) (*Catalog, error) {
	base := []Option{WithAnswerKey(seedAnswerKey()), WithScenarioTables(seedScenarioTables())}
	return New(seedQuestions(), append(base, opts...)...)
}

// QuestionsIn returns the questions of a section in presentation order.
func (c *Catalog) QuestionsIn(s Section) []Question {
	return slices.Clone(c.bySection[s])
}

// SectionSize returns the number of questions in a section.
func (c *Catalog) SectionSize(s Section) int {
	return len(c.bySection[s])
}

// At returns the question at index i of section s.
func (c *Catalog) At(s Section, i int) (Question, bool) {
	qs := c.bySection[s]
	if i < 0 || i >= len(qs) {
		return Question{}, false
	}
	return qs[i], true
}

// Lookup returns a question by id.
func (c *Catalog) Lookup(id string) (Question, error) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	return c.questions[i], nil
}

// All returns every question in presentation order.
func (c *Catalog) All() []Question {
	return slices.Clone(c.questions)
}

// Len returns the total number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// CorrectAnswer returns the answer key entry for a technical question.
func (c *Catalog) CorrectAnswer(id string) (string, bool) {
	a, ok := c.answerKey[id]
	return a, ok
}

// ScenarioScore returns the 0-100 quality score of option for a scenario
// question. Options absent from the table score NeutralScenarioScore.
func (c *Catalog) ScenarioScore(id, option string) int {
	if s, ok := c.scenarios[id][option]; ok {
		return s
	}
	return NeutralScenarioScore
}

// ScenarioTable returns a copy of the scoring table of a scenario question.
func (c *Catalog) ScenarioTable(id string) map[string]int {
	return maps.Clone(c.scenarios[id])
}
