// Package answerfile reads answer sheets: JSON documents that answer quiz
// questions by id, used to score an attempt without the interactive UI.
package answerfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/session"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://answer-sheet.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Sheet is a parsed answer sheet.
type Sheet struct {
	AttemptID string  `json:"attemptId,omitempty"`
	Answers   []Entry `json:"answers"`
}

// Entry answers one question. Value is a JSON integer for Likert questions
// and a JSON string for the others.
type Entry struct {
	QuestionID string          `json:"questionId"`
	Value      json.RawMessage `json:"value"`
}

// ErrInvalidSheet indicates the document does not match the answer sheet schema.
type ErrInvalidSheet struct {
	Err error
}

func (e *ErrInvalidSheet) Error() string {
	return fmt.Sprintf("invalid answer sheet: %v", e.Err)
}

func (e *ErrInvalidSheet) Unwrap() error { return e.Err }

// Load reads and parses the answer sheet at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer sheet: %w", err)
	}
	return Parse(data)
}

// Parse validates data against the answer sheet schema and decodes it.
func Parse(data []byte) (*Sheet, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &ErrInvalidSheet{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := sheetSchema()
	if err != nil {
		return nil, fmt.Errorf("compile answer sheet schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidSheet{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var sheet Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, &ErrInvalidSheet{Err: err}
	}
	return &sheet, nil
}

func sheetSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Values resolves every entry against cat. Unknown ids and values that do
// not fit their question are reported together. A repeated id keeps the
// last value.
func (s *Sheet) Values(cat *catalog.Catalog) (map[string]catalog.Value, error) {
	out := make(map[string]catalog.Value, len(s.Answers))
	var errs []error
	for i, e := range s.Answers {
		q, err := cat.Lookup(e.QuestionID)
		if err != nil {
			errs = append(errs, fmt.Errorf("answer %d: %w", i, err))
			continue
		}
		v, err := decodeValue(q, e.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("answer %d (%s): %w", i, q.ID, err))
			continue
		}
		out[q.ID] = v
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// decodeValue accepts a JSON integer for Likert questions and a JSON string
// for any question; Likert strings must hold a number 1-5.
func decodeValue(q catalog.Question, raw json.RawMessage) (catalog.Value, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return catalog.ParseValue(q, text)
	}
	if q.Kind != catalog.KindLikert {
		return nil, fmt.Errorf("%w: %s value must be a string", catalog.ErrMalformedAnswer, q.Kind)
	}

	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("%w: likert value must be an integer", catalog.ErrMalformedAnswer)
	}
	v := catalog.LikertValue(n)
	if err := catalog.CheckValue(q, v); err != nil {
		return nil, err
	}
	return v, nil
}

// ErrIncomplete is returned by Replay when the sheet leaves questions
// unanswered. Missing lists them in catalog order; the session is left
// untouched.
type ErrIncomplete struct {
	Missing []string
}

func (e *ErrIncomplete) Error() string {
	return fmt.Sprintf("answer sheet leaves %d question(s) unanswered, first %s", len(e.Missing), e.Missing[0])
}

// Replay drives a fresh session through the quiz with the sheet's values,
// in catalog order, until the session reaches Results.
func (s *Sheet) Replay(sess *session.Session) error {
	values, err := s.Values(sess.Catalog())
	if err != nil {
		return err
	}
	if missing := missingIDs(sess.Catalog(), values); len(missing) > 0 {
		return &ErrIncomplete{Missing: missing}
	}

	if err := sess.Start(); err != nil {
		return err
	}
	for !sess.IsComplete() {
		q, _ := sess.Current()
		if err := sess.Select(values[q.ID]); err != nil {
			return fmt.Errorf("replay %s: %w", q.ID, err)
		}
		if err := sess.Advance(); err != nil {
			return fmt.Errorf("replay %s: %w", q.ID, err)
		}
	}
	return nil
}

// PartialAnswers converts the sheet into answers stamped with at, in catalog order,
// without requiring every question to be answered.
func (s *Sheet) PartialAnswers(cat *catalog.Catalog, at time.Time) ([]session.Answer, error) {
	values, err := s.Values(cat)
	if err != nil {
		return nil, err
	}
	var out []session.Answer
	for _, q := range cat.All() {
		if v, ok := values[q.ID]; ok {
			out = append(out, session.Answer{QuestionID: q.ID, Value: v, Timestamp: at})
		}
	}
	return out, nil
}

func missingIDs(cat *catalog.Catalog, values map[string]catalog.Value) []string {
	var missing []string
	for _, q := range cat.All() {
		if _, ok := values[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
