package quiz

import (
	"github.com/bevuihoc/bevuihoc/internal/engquiz"
	"github.com/bevuihoc/bevuihoc/internal/mathgen"
	"github.com/bevuihoc/bevuihoc/internal/phonics"
)

// MathItem adapts a generated math question to the session loop.
type MathItem struct {
	Q mathgen.Question
}

// ID implements Item.
func (m MathItem) ID() string { return m.Q.ID }

// Prompt implements Item.
func (m MathItem) Prompt() string { return m.Q.Prompt }

// Choices implements Item.
func (m MathItem) Choices() []string { return m.Q.Options }

// Grade implements Item.
func (m MathItem) Grade(answer string) bool {
	return mathgen.CheckAnswer(&m.Q, answer)
}

// MathItems wraps a question list for a session.
func MathItems(qs []mathgen.Question) []Item {
	items := make([]Item, len(qs))
	for i, q := range qs {
		items[i] = MathItem{Q: q}
	}
	return items
}

// VocabItem adapts a Vietnamese vocabulary question to the session loop.
type VocabItem struct {
	Q phonics.QuizQuestion
}

// ID implements Item.
func (v VocabItem) ID() string { return v.Q.ID }

// Prompt implements Item.
func (v VocabItem) Prompt() string { return v.Q.Display }

// Choices implements Item.
func (v VocabItem) Choices() []string { return v.Q.Options }

// Grade implements Item.
func (v VocabItem) Grade(answer string) bool { return answer == v.Q.Answer }

// VocabItems wraps a vocabulary quiz for a session.
func VocabItems(qs []phonics.QuizQuestion) []Item {
	items := make([]Item, len(qs))
	for i, q := range qs {
		items[i] = VocabItem{Q: q}
	}
	return items
}

// EnglishItem adapts an English quiz question to the session loop.
type EnglishItem struct {
	Q engquiz.Question
}

// ID implements Item.
func (e EnglishItem) ID() string { return e.Q.ID }

// Prompt implements Item.
func (e EnglishItem) Prompt() string { return e.Q.Prompt }

// Choices implements Item.
func (e EnglishItem) Choices() []string { return e.Q.Options }

// Grade implements Item.
func (e EnglishItem) Grade(answer string) bool { return answer == e.Q.Answer }

// EnglishItems wraps an English quiz for a session.
func EnglishItems(qs []engquiz.Question) []Item {
	items := make([]Item, len(qs))
	for i, q := range qs {
		items[i] = EnglishItem{Q: q}
	}
	return items
}
