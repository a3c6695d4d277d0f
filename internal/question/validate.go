package question

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck reports a deck with no questions. The message is part of the
// caller-facing contract.
var ErrEmptyDeck = errors.New("No questions found in the deck")

// ErrBadAnswersType reports an Answers value that is neither a sequence nor
// a string.
var ErrBadAnswersType = errors.New("Invalid 'Answers' format: must be a list or string")

// MissingFieldError reports a required question field that is absent.
type MissingFieldError struct {
	Field string
}

func (err *MissingFieldError) Error() string {
	return "Missing required field: " + err.Field
}

// ValidateQuestion checks that a single question record has the required
// shape: a Question field, and an Answers field holding a sequence or a
// string. It does not parse the answer encoding; a malformed encoding still
// validates here and surfaces later from ParseAnswers.
func ValidateQuestion(q Question) error {
	for _, field := range []string{FieldQuestion, FieldAnswers} {
		if _, ok := q[field]; !ok {
			return &MissingFieldError{Field: field}
		}
	}
	switch q[FieldAnswers].(type) {
	case string, []string, []any:
		return nil
	}
	return ErrBadAnswersType
}

// ValidateQuestions checks every question in deck order, stopping at the
// first failure and prefixing its error with the question's 1-based
// position.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyDeck
	}
	for i, q := range questions {
		if err := ValidateQuestion(q); err != nil {
			return fmt.Errorf("Question %d: %w", i+1, err)
		}
	}
	return nil
}
