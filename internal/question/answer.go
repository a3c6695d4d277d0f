package question

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAnswers converts an answer encoding such as "1 1 0 0" into its
// integer form. Every whitespace-delimited token must parse as an integer;
// an empty encoding yields an empty result.
func ParseAnswers(encoding string) ([]int, error) {
	tokens := strings.Fields(encoding)
	if len(tokens) == 0 {
		return nil, nil
	}
	parsed := make([]int, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("parse answer encoding: invalid token %q: %w", token, err)
		}
		parsed = append(parsed, value)
	}
	return parsed, nil
}

// CheckAnswer reports whether the user's selections exactly match the
// correct-answer encoding. The comparison truncates correct to the user's
// length, never the other way around: a user sequence longer than correct
// can never match, and an empty user sequence matches any encoding via the
// zero-length prefix.
func CheckAnswer(user []bool, correct []int) bool {
	prefix := correct
	if len(user) < len(prefix) {
		prefix = correct[:len(user)]
	}
	if len(user) != len(prefix) {
		return false
	}
	for i, selected := range user {
		value := 0
		if selected {
			value = 1
		}
		if value != prefix[i] {
			return false
		}
	}
	return true
}
