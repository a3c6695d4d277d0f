package question

import "fmt"

// MaxOptions is the number of option slots a question can hold.
const MaxOptions = 6

// Field names of a question record.
const (
	FieldQuestion = "Question"
	FieldAnswers  = "Answers"
	FieldID       = "ID"
)

// Question is an open record mapping field names to values. Required fields
// are Question (the prompt text) and Answers (the correct-answer encoding);
// option slots Q_1 through Q_6 hold the answer texts, and empty or missing
// slots are skipped.
type Question map[string]any

// OptionField returns the field name of an option slot (1-based).
func OptionField(slot int) string {
	return fmt.Sprintf("Q_%d", slot)
}

// Text returns the string value of a field, or "" when the field is missing
// or not a string.
func (q Question) Text(field string) string {
	value, _ := q[field].(string)
	return value
}

// AnswerEncoding returns the raw answer-encoding string: the first element
// when Answers is a sequence, or the value itself when it is a plain string.
// The second result is false when no encoding is present.
func (q Question) AnswerEncoding() (string, bool) {
	switch answers := q[FieldAnswers].(type) {
	case string:
		return answers, true
	case []string:
		if len(answers) == 0 {
			return "", false
		}
		return answers[0], true
	case []any:
		if len(answers) == 0 {
			return "", false
		}
		encoding, ok := answers[0].(string)
		return encoding, ok
	}
	return "", false
}
