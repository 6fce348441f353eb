package mathgen

import (
	"math/rand/v2"
	"strconv"
)

const (
	// MaxValue bounds every operand and result in the curriculum.
	MaxValue = 10

	// OptionCount is the number of answer options per numeric question.
	OptionCount = 4

	// neighborAttempts bounds the close-distractor phase before falling
	// back to uniform sampling.
	neighborAttempts = 20

	// neighborSpread is the maximum distance of a close distractor from
	// the correct value.
	neighborSpread = 3
)

// Options builds the answer set for a numeric question: the correct
// value plus OptionCount-1 distinct in-range distractors, shuffled.
//
// Distractors are biased toward neighbors of the correct value (harder
// for the learner); after neighborAttempts tries the remainder is filled
// by uniform sampling over [0, MaxValue], which always terminates
// because the range holds more than OptionCount values. Out-of-range
// correct values are clamped into the range.
func Options(rng *rand.Rand, correct int) []string {
	if correct < 0 {
		correct = 0
	}
	if correct > MaxValue {
		correct = MaxValue
	}

	present := make(map[int]bool, OptionCount)
	values := make([]int, 0, OptionCount)
	present[correct] = true
	values = append(values, correct)

	for attempts := 0; len(values) < OptionCount && attempts < neighborAttempts; attempts++ {
		offset := rng.IntN(2*neighborSpread+1) - neighborSpread
		v := correct + offset
		if v < 0 || v > MaxValue || present[v] {
			continue
		}
		present[v] = true
		values = append(values, v)
	}

	for len(values) < OptionCount {
		v := rng.IntN(MaxValue + 1)
		if present[v] {
			continue
		}
		present[v] = true
		values = append(values, v)
	}

	options := make([]string, len(values))
	for i, v := range values {
		options[i] = strconv.Itoa(v)
	}
	shuffle(rng, options)
	return options
}

// SignOptions returns the operator option set for "which sign fits"
// questions, shuffled.
func SignOptions(rng *rand.Rand) []string {
	options := []string{"+", "-", ">", "="}
	shuffle(rng, options)
	return options
}

// CompareOptions returns the comparison option set, shuffled so the
// correct sign's position carries no information.
func CompareOptions(rng *rand.Rand) []string {
	options := []string{">", "<", "="}
	shuffle(rng, options)
	return options
}

func shuffle(rng *rand.Rand, s []string) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

func itoa(n int) string { return strconv.Itoa(n) }
