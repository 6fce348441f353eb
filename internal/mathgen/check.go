package mathgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares a learner's picked option against the question's
// correct answer. Numeric answers tolerate leading zeros and whitespace;
// symbolic answers ("<", "4 + 2 = 6", "7; 8") compare as trimmed text.
// Sorting questions must be checked with CheckSequence instead.
func CheckAnswer(q *Question, answer string) bool {
	if q == nil || q.Type == TypeSorting {
		return false
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}

	if an, err := strconv.Atoi(answer); err == nil {
		if cn, err := strconv.Atoi(strings.TrimSpace(q.Answer)); err == nil {
			return an == cn
		}
		return false
	}
	return answer == strings.TrimSpace(q.Answer)
}

// CheckSequence reports whether a completed sorting selection matches
// the target order exactly. Incomplete selections never match.
func CheckSequence(q *Question, selection []string) bool {
	if q == nil || q.Type != TypeSorting || len(selection) != len(q.Sequence) {
		return false
	}
	for i, v := range selection {
		if strings.TrimSpace(v) != q.Sequence[i] {
			return false
		}
	}
	return true
}

// Recompute evaluates the equation described by an ObjectRow visual
// ("a op b = ?" or with "?" in an operand slot) and returns the value
// the blank must take. It reports false for rows that are not a simple
// two-term equation.
func Recompute(row ObjectRow) (int, bool) {
	items := row.Items
	if len(items) != 5 || items[3] != "=" {
		return 0, false
	}

	parse := func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	}

	a, aOK := parse(items[0])
	b, bOK := parse(items[2])
	result, rOK := parse(items[4])
	op := items[1]

	apply := func(x, y int) int {
		if op == "-" {
			return x - y
		}
		return x + y
	}

	switch {
	case items[4] == "?" && aOK && bOK:
		return apply(a, b), true
	case items[2] == "?" && aOK && rOK:
		if op == "-" {
			return a - result, true
		}
		return result - a, true
	case items[0] == "?" && bOK && rOK:
		if op == "-" {
			return result + b, true
		}
		return result - b, true
	default:
		return 0, false
	}
}
