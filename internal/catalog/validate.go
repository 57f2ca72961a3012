package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists every integrity problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validateCatalog performs all structural checks on c.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateCatalog(c *Catalog) error {
	var errs []string

	for i, q := range c.questions {
		if err := structValidator.Struct(q); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					errs = append(errs, fmt.Sprintf("question %d (%q): field %s fails %q%s", i, q.ID, fe.Field(), fe.Tag(), paramSuffix(fe.Param())))
				}
			} else {
				errs = append(errs, fmt.Sprintf("question %d (%q): %v", i, q.ID, err))
			}
		}
	}

	// Duplicate IDs
	seen := make(map[string]bool, len(c.questions))
	for _, q := range c.questions {
		if q.ID == "" {
			continue
		}
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true
	}

	// Option presence per kind
	for _, q := range c.questions {
		switch q.Kind {
		case KindLikert:
			if len(q.Options) > 0 {
				errs = append(errs, fmt.Sprintf("likert question %q must not declare options", q.ID))
			}
		case KindMultipleChoice, KindScenario:
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("%s question %q has no options", q.Kind, q.ID))
			}
		}
	}

	// WISCAR questions must land in a dimension bucket
	for _, q := range c.questions {
		if q.Section != SectionWiscar {
			continue
		}
		if _, ok := q.Dimension(); !ok {
			errs = append(errs, fmt.Sprintf("wiscar question %q has unknown dimension %q", q.ID, q.Category))
		}
	}

	// Answer key entries must name a question and one of its options
	for _, id := range slices.Sorted(maps.Keys(c.answerKey)) {
		answer := c.answerKey[id]
		q, ok := findQuestion(c.questions, id)
		if !ok {
			errs = append(errs, fmt.Sprintf("answer key references nonexistent question %q", id))
			continue
		}
		if !q.HasOption(answer) {
			errs = append(errs, fmt.Sprintf("answer key for %q is not one of its options: %q", id, answer))
		}
	}

	// Scenario tables
	for _, id := range slices.Sorted(maps.Keys(c.scenarios)) {
		table := c.scenarios[id]
		q, ok := findQuestion(c.questions, id)
		if !ok || q.Kind != KindScenario {
			errs = append(errs, fmt.Sprintf("scenario table references non-scenario question %q", id))
			continue
		}
		for _, opt := range slices.Sorted(maps.Keys(table)) {
			score := table[opt]
			if score < 0 || score > 100 {
				errs = append(errs, fmt.Sprintf("scenario %q option %q score %d outside 0-100", id, opt, score))
			}
		}
	}
	if c.strictScenarios {
		for _, q := range c.questions {
			if q.Kind != KindScenario {
				continue
			}
			for _, opt := range q.Options {
				if _, ok := c.scenarios[q.ID][opt]; !ok {
					errs = append(errs, fmt.Sprintf("scenario %q option %q has no score", q.ID, opt))
				}
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

func findQuestion(qs []Question, id string) (Question, bool) {
	for _, q := range qs {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return " (" + p + ")"
}
