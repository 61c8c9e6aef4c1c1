package entities

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrInvalidAnswer = errors.New("answer must be a string or a list of strings")

// Answer is one questionnaire response: either a single selected option
// or an ordered list of options for multi-select questions.
type Answer struct {
	values []string
	multi  bool
}

// Single builds a scalar answer.
func Single(option string) Answer {
	return Answer{values: []string{option}}
}

// Multi builds a multi-select answer. The order of options is preserved.
func Multi(options ...string) Answer {
	values := make([]string, len(options))
	copy(values, options)
	return Answer{values: values, multi: true}
}

func (a Answer) IsMulti() bool { return a.multi }

// Value returns the scalar option, or "" for a multi-select answer.
func (a Answer) Value() string {
	if a.multi || len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

// Options returns every selected option, for both shapes.
func (a Answer) Options() []string {
	out := make([]string, len(a.values))
	copy(out, a.values)
	return out
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		if a.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.values)
	}
	return json.Marshal(a.Value())
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidAnswer
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Single(s)
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return ErrInvalidAnswer
		}
		*a = Multi(list...)
		return nil
	}
	return ErrInvalidAnswer
}

// AnswerMap maps a question identifier to its answer.
type AnswerMap map[string]Answer

// Get returns the answer for question and whether it was answered.
func (m AnswerMap) Get(question string) (Answer, bool) {
	a, ok := m[question]
	return a, ok
}
