package question

import "errors"

// Kind classifies a question by how many options its encoding marks correct.
type Kind string

const (
	// KindSingle marks questions with exactly one correct option.
	KindSingle Kind = "single"
	// KindMultiple marks every other question, including ones whose encoding
	// marks no option correct at all.
	KindMultiple Kind = "multiple"
)

// ErrNoAnswers indicates a question without an answer encoding.
var ErrNoAnswers = errors.New("question has no answer encoding")

// Classify returns the question kind and the number of correct options. A
// count of zero still classifies as multiple; only a count of exactly one is
// single.
func Classify(q Question) (Kind, int, error) {
	encoding, ok := q.AnswerEncoding()
	if !ok {
		return "", 0, ErrNoAnswers
	}
	correct, err := ParseAnswers(encoding)
	if err != nil {
		return "", 0, err
	}
	count := 0
	for _, value := range correct {
		count += value
	}
	if count == 1 {
		return KindSingle, count, nil
	}
	return KindMultiple, count, nil
}
