package quiz

import (
	"strconv"

	"github.com/bevuihoc/bevuihoc/internal/mathgen"
)

// Reflex game timing. Answer streaks of five earn a time bonus, and the
// clock never rises above the starting allotment.
const (
	ReflexDuration    = 60
	ReflexStreakBonus = 5
	ReflexStreakEvery = 5
)

// Judgment is the outcome of a single digit entry in the reflex game.
type Judgment int

const (
	// JudgePending means the input so far could still become the
	// expected answer (a typed "1" when the answer is 10).
	JudgePending Judgment = iota

	// JudgeCorrect means the typed number matches the expected answer.
	JudgeCorrect

	// JudgeWrong means the typed number can no longer be the answer.
	JudgeWrong
)

// ReflexGame is the timed rapid-fire arithmetic drill: one equation at
// a time, answered by typing digits, against a countdown clock. Digits
// are judged as they are typed, so a wrong keystroke costs the question
// immediately.
type ReflexGame struct {
	gen      *mathgen.Generator
	current  mathgen.Question
	expected int
	input    string
	score    int
	streak   int
	timeLeft int
	running  bool
}

// NewReflexGame builds a game over the given generator. Start must be
// called before play.
func NewReflexGame(gen *mathgen.Generator) *ReflexGame {
	return &ReflexGame{gen: gen, timeLeft: ReflexDuration}
}

// Start resets score, streak, and clock, and deals the first equation.
func (g *ReflexGame) Start() {
	g.score = 0
	g.streak = 0
	g.timeLeft = ReflexDuration
	g.input = ""
	g.running = true
	g.next()
}

// Tick advances the clock by one second. It reports false once time is
// up, at which point the game stops accepting input.
func (g *ReflexGame) Tick() bool {
	if !g.running {
		return false
	}
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.running = false
	}
	return g.running
}

// Running reports whether the clock is still counting down.
func (g *ReflexGame) Running() bool { return g.running }

// TimeLeft returns the remaining seconds.
func (g *ReflexGame) TimeLeft() int { return g.timeLeft }

// Score returns the number of correctly answered equations.
func (g *ReflexGame) Score() int { return g.score }

// Streak returns the current run of consecutive correct answers.
func (g *ReflexGame) Streak() int { return g.streak }

// Current returns the equation on screen.
func (g *ReflexGame) Current() mathgen.Question { return g.current }

// Input returns the digits typed so far for the current equation.
func (g *ReflexGame) Input() string { return g.input }

// Backspace removes the last typed digit, when the buffer and clock
// allow it.
func (g *ReflexGame) Backspace() {
	if g.running && len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
	}
}

// Press appends one digit and judges the buffer. Answers up to ten need
// disambiguation: a lone "1" stays pending when the expected answer is
// 10, since the learner may still type the zero.
func (g *ReflexGame) Press(digit byte) Judgment {
	if !g.running || digit < '0' || digit > '9' {
		return JudgePending
	}
	g.input += string(digit)
	num, err := strconv.Atoi(g.input)
	if err != nil {
		return JudgePending
	}

	switch {
	case num == g.expected:
		g.correct()
		return JudgeCorrect
	case g.expected < 10 && len(g.input) == 1:
		g.wrong()
		return JudgeWrong
	case g.expected == 10 && len(g.input) == 1 && g.input != "1":
		g.wrong()
		return JudgeWrong
	case len(g.input) >= 2:
		g.wrong()
		return JudgeWrong
	}
	return JudgePending
}

func (g *ReflexGame) correct() {
	g.score++
	g.streak++
	if g.streak > 0 && g.streak%ReflexStreakEvery == 0 {
		g.timeLeft += ReflexStreakBonus
		if g.timeLeft > ReflexDuration {
			g.timeLeft = ReflexDuration
		}
	}
	g.next()
}

func (g *ReflexGame) wrong() {
	g.streak = 0
	g.input = ""
}

func (g *ReflexGame) next() {
	g.input = ""
	g.current = g.gen.Equation()
	g.expected = mustAtoi(g.current.Answer)
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
