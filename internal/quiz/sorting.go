package quiz

// SortPuzzle tracks a sorting question: the learner picks number tokens
// one at a time to build a sequence, can undo the last pick, and the
// attempt is graded only when every token has been placed.
type SortPuzzle struct {
	tokens   []string
	expected []string
	picked   []int
	used     []bool
}

// NewSortPuzzle builds a puzzle from the shuffled display tokens and
// the expected final order.
func NewSortPuzzle(tokens, expected []string) *SortPuzzle {
	return &SortPuzzle{
		tokens:   tokens,
		expected: expected,
		used:     make([]bool, len(tokens)),
	}
}

// Tokens returns the selectable tokens in display order.
func (p *SortPuzzle) Tokens() []string { return p.tokens }

// Used reports whether the token at i has already been picked.
func (p *SortPuzzle) Used(i int) bool {
	return i >= 0 && i < len(p.used) && p.used[i]
}

// Picked returns the sequence built so far, in pick order.
func (p *SortPuzzle) Picked() []string {
	out := make([]string, len(p.picked))
	for n, i := range p.picked {
		out[n] = p.tokens[i]
	}
	return out
}

// Pick places the token at index i at the end of the sequence. It
// reports false when i is out of range, already used, or the puzzle is
// complete.
func (p *SortPuzzle) Pick(i int) bool {
	if p.Complete() || i < 0 || i >= len(p.tokens) || p.used[i] {
		return false
	}
	p.used[i] = true
	p.picked = append(p.picked, i)
	return true
}

// Undo removes the most recent pick and makes its token selectable
// again. It reports false when nothing has been picked.
func (p *SortPuzzle) Undo() bool {
	if len(p.picked) == 0 {
		return false
	}
	last := p.picked[len(p.picked)-1]
	p.picked = p.picked[:len(p.picked)-1]
	p.used[last] = false
	return true
}

// Complete reports whether every token has been placed.
func (p *SortPuzzle) Complete() bool { return len(p.picked) == len(p.tokens) }

// Correct reports whether the completed sequence matches the expected
// order exactly. An incomplete puzzle is never correct: there is no
// partial credit for a matching prefix.
func (p *SortPuzzle) Correct() bool {
	if !p.Complete() || len(p.picked) != len(p.expected) {
		return false
	}
	for n, i := range p.picked {
		if p.tokens[i] != p.expected[n] {
			return false
		}
	}
	return true
}
