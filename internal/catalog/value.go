package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedAnswer is returned when a value does not fit its question's kind.
var ErrMalformedAnswer = errors.New("malformed answer")

// Value is a respondent's answer to one question. It is either a LikertValue
// or a ChoiceValue; the set is closed.
type Value interface {
	isValue()
	String() string
}

// LikertValue is a point on the 1-5 agreement scale.
type LikertValue int

// ChoiceValue is the literal text of a selected option.
type ChoiceValue string

func (LikertValue) isValue() {}
func (ChoiceValue) isValue() {}

func (v LikertValue) String() string { return strconv.Itoa(int(v)) }
func (v ChoiceValue) String() string { return string(v) }

// CheckValue verifies that v has the shape q expects: an integer 1-5 for
// Likert questions, one of the literal options for the others.
func CheckValue(q Question, v Value) error {
	switch q.Kind {
	case KindLikert:
		lv, ok := v.(LikertValue)
		if !ok {
			return fmt.Errorf("%w: question %q expects a scale value, got %q", ErrMalformedAnswer, q.ID, valueText(v))
		}
		if lv < LikertMin || lv > LikertMax {
			return fmt.Errorf("%w: question %q scale value %d outside %d-%d", ErrMalformedAnswer, q.ID, lv, LikertMin, LikertMax)
		}
		return nil
	case KindMultipleChoice, KindScenario:
		cv, ok := v.(ChoiceValue)
		if !ok {
			return fmt.Errorf("%w: question %q expects an option, got %q", ErrMalformedAnswer, q.ID, valueText(v))
		}
		if !q.HasOption(string(cv)) {
			return fmt.Errorf("%w: %q is not an option of question %q", ErrMalformedAnswer, string(cv), q.ID)
		}
		return nil
	default:
		return fmt.Errorf("%w: question %q has unknown kind %d", ErrMalformedAnswer, q.ID, q.Kind)
	}
}

// ParseValue converts raw input into a Value for q. Likert input must be an
// integer 1-5; choice input must equal an option exactly.
func ParseValue(q Question, raw string) (Value, error) {
	var v Value
	switch q.Kind {
	case KindLikert:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: question %q expects a number 1-5, got %q", ErrMalformedAnswer, q.ID, raw)
		}
		v = LikertValue(n)
	default:
		v = ChoiceValue(raw)
	}
	if err := CheckValue(q, v); err != nil {
		return nil, err
	}
	return v, nil
}

func valueText(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
