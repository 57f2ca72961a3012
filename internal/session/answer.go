package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/careerfit/internal/catalog"
)

// Answer is a committed value for one question.
type Answer struct {
	QuestionID string
	Value      catalog.Value
	Timestamp  time.Time
}

type answerJSON struct {
	QuestionID string          `json:"questionId"`
	Value      json.RawMessage `json:"value"`
	Timestamp  time.Time       `json:"timestamp"`
}

// MarshalJSON encodes Likert values as numbers and choices as strings.
func (a Answer) MarshalJSON() ([]byte, error) {
	var raw []byte
	var err error
	switch v := a.Value.(type) {
	case catalog.LikertValue:
		raw, err = json.Marshal(int(v))
	case catalog.ChoiceValue:
		raw, err = json.Marshal(string(v))
	default:
		return nil, fmt.Errorf("answer %q: unsupported value %T", a.QuestionID, a.Value)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(answerJSON{QuestionID: a.QuestionID, Value: raw, Timestamp: a.Timestamp})
}

// Answers returns the committed answers in commit order. A replaced answer
// moves to the position of its latest commit.
func (s *Session) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// AnswerFor returns the committed answer for a question id.
func (s *Session) AnswerFor(id string) (Answer, bool) {
	for _, a := range s.answers {
		if a.QuestionID == id {
			return a, true
		}
	}
	return Answer{}, false
}

// commit stores v for id, replacing any earlier answer for the same id.
func (s *Session) commit(id string, v catalog.Value) {
	kept := s.answers[:0]
	for _, a := range s.answers {
		if a.QuestionID != id {
			kept = append(kept, a)
		}
	}
	s.answers = append(kept, Answer{QuestionID: id, Value: v, Timestamp: s.now()})
}
