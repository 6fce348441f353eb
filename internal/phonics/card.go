package phonics

import (
	"fmt"
	"math/rand/v2"
)

// Card is a single flashcard: one letter, digraph, or rhyme unit.
type Card struct {
	// ID is unique within a deck (re-render identity only).
	ID string

	// Sound is the textual content of the card, e.g. "a", "ch", "ương".
	// It is also the dedup key used by the missed-word tracker.
	Sound string

	// Color is the display color assigned when the deck is built.
	Color string
}

// Topic selects which portion of the first-grade curriculum a deck covers.
type Topic string

const (
	TopicPhanAm    Topic = "PHAN_AM"   // initial sounds
	TopicVanKy1    Topic = "VAN_KY_1"  // semester 1 rhymes
	TopicVanKy2    Topic = "VAN_KY_2"  // semester 2 rhymes
	TopicSemester1 Topic = "SEMESTER_1"
	TopicAll       Topic = "ALL"
)

// AllTopics lists the deck topics in menu order.
func AllTopics() []Topic {
	return []Topic{TopicPhanAm, TopicVanKy1, TopicVanKy2, TopicSemester1, TopicAll}
}

// CardColors is the palette decks draw from.
var CardColors = []string{
	"#F87171", "#FB923C", "#FBBF24", "#FACC15",
	"#A3E635", "#4ADE80", "#34D399", "#2DD4BF",
	"#22D3EE", "#38BDF8", "#60A5FA", "#818CF8",
	"#A78BFA", "#C084FC", "#E879F9", "#F472B6", "#FB7185",
}

var phanAm = []string{
	"a", "ă", "â", "b", "c", "o", "ô", "ơ", "v", "e", "ê", "d", "đ", "i",
	"k", "l", "h", "ch", "kh", "n", "m", "u", "ư", "g", "gh", "ng", "ngh", "t",
	"th", "nh", "r", "tr", "ia", "ua", "ưa", "p", "ph", "s", "x", "q-qu", "y", "gi",
}

var vanKy1 = []string{
	"ia", "ua", "ưa", "ao", "eo", "au", "êu", "âu", "iu", "ưu", "ai", "oi", "ôi", "ơi",
	"ui", "ưi", "ay", "ây", "ac", "âc", "ăc", "oc", "ôc", "uc", "ưc", "at", "ăt", "ât",
	"et", "êt", "it", "ot", "ôt", "ơt", "ut", "ưt", "an", "ăn", "ân", "en", "ên", "in",
	"on", "ôn", "ơn", "un", "ang", "ăng", "âng", "ong", "ông", "ung", "ưng", "ach", "êch", "ich",
	"am", "ăm", "âm", "em", "êm", "om", "ôm", "ơm", "im", "um", "ap", "ăp", "âp", "ep",
	"êp", "op", "ôp", "ơp", "ip", "up", "anh", "ênh", "inh",
	"ươu", "iêu", "yêu", "uôi", "ươi", "iêc", "uôc", "ước", "iêt", "yêt", "uôt", "ướt", "iên", "yên",
	"uôn", "ươn", "iêng", "yêng", "uông", "ương", "iêm", "yêm", "uôm", "ươm", "iêp", "ươp",
}

var vanKy2 = []string{
	"oa", "oe", "uê", "uy", "oai", "oay", "oac", "oat", "oan", "oang", "uân", "uyên", "uyt", "oăt",
	"uât", "uyêt", "oanh", "uynh", "uych", "oăng", "oam", "oap", "oăn", "oen", "oong", "ooc", "uyn", "uya",
}

// sounds returns the deduplicated sound list for a topic, preserving
// curriculum order. Unknown topics fall back to the full list.
func sounds(topic Topic) []string {
	var raw []string
	switch topic {
	case TopicPhanAm:
		raw = phanAm
	case TopicVanKy1:
		raw = vanKy1
	case TopicVanKy2:
		raw = vanKy2
	case TopicSemester1:
		raw = append(append([]string{}, phanAm...), vanKy1...)
	default:
		raw = append(append(append([]string{}, phanAm...), vanKy1...), vanKy2...)
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// NewDeck builds the flashcard deck for a topic. Card order follows the
// curriculum; colors are sampled from the palette with rng.
func NewDeck(topic Topic, rng *rand.Rand) []Card {
	data := sounds(topic)
	deck := make([]Card, len(data))
	for i, s := range data {
		deck[i] = Card{
			ID:    fmt.Sprintf("%s-%d-%s", topic, i, s),
			Sound: s,
			Color: CardColors[rng.IntN(len(CardColors))],
		}
	}
	return deck
}
