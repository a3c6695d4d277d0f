package question

import (
	"math/rand"
	"strings"
)

// Source supplies the permutation used to shuffle options. *rand.Rand
// satisfies it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

type systemSource struct{}

func (systemSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// SystemSource returns a Source backed by the process-wide generator. The
// module never seeds or serializes that generator; callers that need
// determinism or their own locking supply a different Source.
func SystemSource() Source {
	return systemSource{}
}

// ShuffledOptions collects the non-empty option slots of q with their
// correctness flags, permutes the pairs as a unit, and returns the option
// texts and flags in the same permuted order, so a flag never detaches from
// its option. Encoding positions past the end of the parsed encoding count
// as incorrect.
func ShuffledOptions(q Question, src Source) ([]string, []int, error) {
	encoding, ok := q.AnswerEncoding()
	if !ok {
		return nil, nil, ErrNoAnswers
	}
	correct, err := ParseAnswers(encoding)
	if err != nil {
		return nil, nil, err
	}

	type option struct {
		text string
		flag int
	}
	options := make([]option, 0, MaxOptions)
	for slot := 1; slot <= MaxOptions; slot++ {
		text := strings.TrimSpace(q.Text(OptionField(slot)))
		if text == "" {
			continue
		}
		flag := 0
		if slot-1 < len(correct) {
			flag = correct[slot-1]
		}
		options = append(options, option{text: text, flag: flag})
	}

	src.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	texts := make([]string, len(options))
	flags := make([]int, len(options))
	for i, opt := range options {
		texts[i] = opt.text
		flags[i] = opt.flag
	}
	return texts, flags, nil
}
