package engquiz

import (
	"math/rand/v2"
	"testing"
)

func newGenerator() *Generator {
	return New(rand.New(rand.NewPCG(3, 9)))
}

func contains(options []string, want string) bool {
	for _, o := range options {
		if o == want {
			return true
		}
	}
	return false
}

func TestUnitQuizShapes(t *testing.T) {
	tests := []struct {
		topic Topic
		want  int
	}{
		{Unit0, 11}, // 10 vocab + 1 sentence
		{Unit1, 7},  // 6-entry unit caps at its size
		{Unit2, 5},
		{Unit3, 4},
	}

	for _, tt := range tests {
		g := newGenerator()
		questions := g.Generate(tt.topic)
		if len(questions) != tt.want {
			t.Errorf("%s: len = %d, want %d", tt.topic, len(questions), tt.want)
			continue
		}

		last := questions[len(questions)-1]
		if last.Kind != KindSentence {
			t.Errorf("%s: final question kind = %s, want sentence", tt.topic, last.Kind)
		}
		for _, q := range questions {
			if !contains(q.Options, q.Answer) {
				t.Errorf("%s: options %v missing answer %q", tt.topic, q.Options, q.Answer)
			}
			seen := make(map[string]bool)
			for _, o := range q.Options {
				if seen[o] {
					t.Errorf("%s: duplicate option %q", tt.topic, o)
				}
				seen[o] = true
			}
		}
	}
}

func TestVocabNoRepeats(t *testing.T) {
	g := newGenerator()
	questions := g.Generate(Unit0)

	seen := make(map[string]bool)
	for _, q := range questions {
		if q.Kind != KindVocab {
			continue
		}
		if seen[q.Prompt] {
			t.Fatalf("term asked twice: %q", q.Prompt)
		}
		seen[q.Prompt] = true
	}
}

func TestVocabAudioOnlyEnglish(t *testing.T) {
	// Across many runs both directions appear, and audio is set exactly
	// when the prompt shows the English term.
	g := newGenerator()
	var engToViet, vietToEng int
	for trial := 0; trial < 50; trial++ {
		for _, q := range g.Generate(Unit1) {
			if q.Kind != KindVocab {
				continue
			}
			if q.AudioText != "" {
				engToViet++
				if !contains(q.Options, q.Answer) {
					t.Fatal("answer missing from options")
				}
			} else {
				vietToEng++
			}
		}
	}
	if engToViet == 0 || vietToEng == 0 {
		t.Fatalf("direction never varied: eng→viet=%d viet→eng=%d", engToViet, vietToEng)
	}
}

func TestReviewQuiz(t *testing.T) {
	g := newGenerator()
	questions := g.Generate(Review)

	// 4+4+4+3 vocab plus 6 conversational, capped at 20.
	if len(questions) != 20 {
		t.Fatalf("len = %d, want 20", len(questions))
	}
	for _, q := range questions {
		if !contains(q.Options, q.Answer) {
			t.Fatalf("options %v missing answer %q", q.Options, q.Answer)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	g := newGenerator()
	if qs := g.Generate(Topic("UNIT_9")); qs != nil {
		t.Fatalf("unknown topic produced %d questions", len(qs))
	}
}
