// Package engquiz generates English vocabulary quizzes over the term
// lists of the first-grade curriculum units.
package engquiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Topic selects which unit's vocabulary a quiz draws from.
type Topic string

const (
	Unit0  Topic = "UNIT_0" // robotics blocks and counting
	Unit1  Topic = "UNIT_1" // colors
	Unit2  Topic = "UNIT_2" // shapes
	Unit3  Topic = "UNIT_3" // Christmas
	Review Topic = "REVIEW" // mix of all units plus conversation
)

// Kind distinguishes vocabulary lookups from sentence-pattern drills.
type Kind string

const (
	KindVocab    Kind = "VOCAB"
	KindSentence Kind = "SENTENCE"
)

// Question is one English quiz item. AudioText holds the English text
// to speak aloud; it is empty when the prompt is Vietnamese.
type Question struct {
	ID        string
	Kind      Kind
	Prompt    string
	AudioText string
	ImageHint string
	Answer    string
	Options   []string
}

// Entry is one term/meaning pair with a display icon.
type Entry struct {
	Term    string
	Meaning string
	Icon    string
}

var unit0Blocks = []Entry{
	{Term: "block", Meaning: "khối hình", Icon: "🧱"},
	{Term: "smart block", Meaning: "khối thông minh", Icon: "🧠"},
	{Term: "Master block", Meaning: "khối đổi màu", Icon: "🎛️"},
	{Term: "LED block", Meaning: "khối hiển thị đèn", Icon: "💡"},
	{Term: "DC motor block", Meaning: "khối động cơ", Icon: "⚙️"},
	{Term: "Sound block", Meaning: "khối âm thanh", Icon: "🔊"},
	{Term: "Proximity sensor block", Meaning: "khối cảm biến vật thể", Icon: "📡"},
	{Term: "Light & touch sensor block", Meaning: "khối cảm biến chạm & ánh sáng", Icon: "☀️"},
	{Term: "one", Meaning: "số một", Icon: "1️⃣"},
	{Term: "two", Meaning: "số hai", Icon: "2️⃣"},
	{Term: "three", Meaning: "số ba", Icon: "3️⃣"},
	{Term: "one block", Meaning: "một khối", Icon: "🧱"},
}

var unit1Colors = []Entry{
	{Term: "red", Meaning: "màu đỏ", Icon: "🔴"},
	{Term: "green", Meaning: "màu xanh lá", Icon: "🟢"},
	{Term: "yellow", Meaning: "màu vàng", Icon: "🟡"},
	{Term: "white", Meaning: "màu trắng", Icon: "⚪"},
	{Term: "black", Meaning: "màu đen", Icon: "⚫"},
	{Term: "blue", Meaning: "màu xanh dương", Icon: "🔵"},
}

var unit2Shapes = []Entry{
	{Term: "triangle", Meaning: "hình tam giác", Icon: "🔺"},
	{Term: "circle", Meaning: "hình tròn", Icon: "🔴"},
	{Term: "square", Meaning: "hình vuông", Icon: "⬛"},
	{Term: "rectangle", Meaning: "hình chữ nhật", Icon: "▭"},
}

var unit3Christmas = []Entry{
	{Term: "Santa Claus", Meaning: "ông già Noel", Icon: "🎅"},
	{Term: "Christmas tree", Meaning: "cây thông Giáng Sinh", Icon: "🎄"},
	{Term: "reindeer", Meaning: "tuần lộc", Icon: "🦌"},
}

// conversation holds the general sentence-pattern drills used in the
// review quiz.
var conversation = []struct {
	q    string
	a    string
	opts []string
}{
	{"What's your name?", "My name is...", []string{"My name is...", "I'm fine", "It's red"}},
	{"How are you?", "I'm fine / good", []string{"I'm fine / good", "My name is...", "It's a square"}},
	{"What is this?", "It's a...", []string{"It's a...", "I'm five", "Yes, it is"}},
	{"What colour is it?", "It's green/red...", []string{"It's green/red...", "It's a circle", "I'm fine"}},
	{"How many blocks?", "Two blocks", []string{"Two blocks", "Red blocks", "Square"}},
	{"Is it yellow?", "Yes, it is", []string{"Yes, it is", "It's a triangle", "My name is..."}},
}

// Generator produces English quizzes from an injected random source.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator backed by rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds the quiz for a topic. Unit quizzes are vocabulary
// lookups capped by the unit size plus one fixed sentence drill; the
// review topic mixes every unit with the conversation drills, capped
// at twenty questions.
func (g *Generator) Generate(topic Topic) []Question {
	switch topic {
	case Unit0:
		return append(g.vocab(unit0Blocks, 10), g.sentence(
			"u0-str-1",
			"What is this? (Đây là khối gì?)",
			"What is this?",
			"🎛️",
			"It's a Master block",
			[]string{"It's a Master block", "It's red", "I'm fine", "Two blocks"},
		))
	case Unit1:
		return append(g.vocab(unit1Colors, 8), g.sentence(
			"u1-str-1",
			"What colour is it? (Đây là màu gì?)",
			"What colour is it?",
			"🔴",
			"Red",
			[]string{"Red", "Triangle", "One", "Block"},
		))
	case Unit2:
		return append(g.vocab(unit2Shapes, 6), g.sentence(
			"u2-str-1",
			"What shape is it? (Đây là hình gì?)",
			"What shape is it?",
			"🔺",
			"Triangle",
			[]string{"Triangle", "Red", "Santa Claus", "Two"},
		))
	case Unit3:
		return append(g.vocab(unit3Christmas, 6), g.sentence(
			"u3-str-1",
			"Who is this?",
			"Who is this?",
			"🎅",
			"Santa Claus",
			[]string{"Santa Claus", "Reindeer", "Christmas tree", "Block"},
		))
	case Review:
		questions := g.vocab(unit0Blocks, 4)
		questions = append(questions, g.vocab(unit1Colors, 4)...)
		questions = append(questions, g.vocab(unit2Shapes, 4)...)
		questions = append(questions, g.vocab(unit3Christmas, 3)...)
		for i, c := range conversation {
			questions = append(questions, Question{
				ID:        fmt.Sprintf("gen-%d", i),
				Kind:      KindSentence,
				Prompt:    c.q,
				AudioText: c.q,
				Answer:    c.a,
				Options:   g.shuffled(c.opts),
			})
		}
		g.rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
		if len(questions) > 20 {
			questions = questions[:20]
		}
		return questions
	}
	return nil
}

// vocab draws up to count entries from the dataset and builds a lookup
// question for each, half asking English→Vietnamese and half the
// reverse. Audio only ever speaks the English side.
func (g *Generator) vocab(dataset []Entry, count int) []Question {
	order := g.rng.Perm(len(dataset))
	if count > len(order) {
		count = len(order)
	}

	questions := make([]Question, 0, count)
	for _, idx := range order[:count] {
		entry := dataset[idx]
		engToViet := g.rng.Float64() < 0.5

		q := Question{
			ID:        uuid.New().String(),
			Kind:      KindVocab,
			ImageHint: entry.Icon,
		}
		if engToViet {
			q.Prompt = fmt.Sprintf("%q nghĩa là gì?", entry.Term)
			q.AudioText = entry.Term
			q.Answer = entry.Meaning
		} else {
			q.Prompt = fmt.Sprintf("%q tiếng Anh là gì?", entry.Meaning)
			q.Answer = entry.Term
		}

		options := []string{q.Answer}
		for _, other := range g.distractors(dataset, entry, 3) {
			if engToViet {
				options = append(options, other.Meaning)
			} else {
				options = append(options, other.Term)
			}
		}
		q.Options = g.shuffled(options)
		questions = append(questions, q)
	}
	return questions
}

// distractors picks up to n entries other than the answer entry.
func (g *Generator) distractors(dataset []Entry, exclude Entry, n int) []Entry {
	others := make([]Entry, 0, len(dataset)-1)
	for _, e := range dataset {
		if e.Term != exclude.Term {
			others = append(others, e)
		}
	}
	g.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if n > len(others) {
		n = len(others)
	}
	return others[:n]
}

func (g *Generator) sentence(id, prompt, audio, hint, answer string, options []string) Question {
	return Question{
		ID:        id,
		Kind:      KindSentence,
		Prompt:    prompt,
		AudioText: audio,
		ImageHint: hint,
		Answer:    answer,
		Options:   g.shuffled(options),
	}
}

func (g *Generator) shuffled(options []string) []string {
	out := make([]string, len(options))
	copy(out, options)
	g.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
