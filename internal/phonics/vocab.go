package phonics

import (
	"fmt"
	"math/rand/v2"
)

// QuizQuestion is a fill-in-the-missing-part word puzzle.
type QuizQuestion struct {
	ID      string
	Word    string   // the full word, e.g. "cá"
	Display string   // the word with the target masked, e.g. "_á"
	Hint    string   // context sentence with the word elided
	Answer  string   // the masked part
	Options []string // four options including Answer, shuffled
}

// vocabEntry is one curated word puzzle. Distractors are hand-picked so
// that no distractor forms another valid word with the mask.
type vocabEntry struct {
	target      string
	word        string
	mask        string
	hint        string
	distractors [3]string
}

var quizVocab = []vocabEntry{
	// Missing initial sound (tone mark stays on the rhyme).
	{"b", "bà", "_à", "Mẹ của mẹ gọi là ... ngoại", [3]string{"l", "n", "m"}},
	{"c", "cá", "_á", "Con ... bơi dưới nước", [3]string{"ph", "nh", "th"}},
	{"d", "da", "_a", "Làn ... em bé mịn màng", [3]string{"x", "s", "r"}},
	{"đ", "đá", "_á", "Cục ... lạnh buốt", [3]string{"h", "k", "v"}},
	{"ch", "chó", "_ó", "Con ... sủa gâu gâu", [3]string{"nh", "kh", "th"}},
	{"nh", "nhà", "_à", "Ngôi ... của em", [3]string{"ch", "tr", "s"}},
	{"th", "thỏ", "_ỏ", "Con ... có đôi tai dài", [3]string{"ch", "nh", "ph"}},
	{"tr", "tre", "_e", "Cây ... xanh Việt Nam", [3]string{"ch", "nh", "ng"}},
	{"ph", "phố", "_ố", "Thành ... xe cộ đông đúc", [3]string{"th", "kh", "nh"}},
	{"ng", "ngà", "_à", "Con voi có đôi ... trắng", [3]string{"ch", "nh", "tr"}},
	{"kh", "khế", "_ế", "Quả ... chua nấu canh", [3]string{"tr", "ph", "qu"}},

	// Missing rhyme with its tone mark, so the answer forms a real word.
	{"a", "ca", "c_", "Cái ... dùng để uống nước", [3]string{"á", "à", "ạ"}},
	{"e", "xe", "x_", "Bé tập đi ... đạp", [3]string{"é", "è", "ẻ"}},
	{"ê", "lê", "l_", "Quả ... ăn rất ngọt", [3]string{"ề", "ế", "ể"}},
	{"i", "bi", "b_", "Bé chơi bắn ...", [3]string{"í", "ì", "ị"}},
	{"ía", "mía", "m_", "Cây ... làm ra đường", [3]string{"ia", "úa", "óa"}},
	{"ua", "cua", "c_", "Con ... bò ngang", [3]string{"úa", "ùa", "uạ"}},
	{"ừa", "dừa", "d_", "Quả ... uống nước rất mát", [3]string{"ưa", "ứa", "ựa"}},
	{"oi", "voi", "v_", "Con ... có cái vòi dài", [3]string{"ói", "òi", "ọi"}},
	{"ái", "gà mái", "gà m_", "Con ... đẻ trứng cục tác", [3]string{"ai", "ài", "ại"}},
	{"ôi", "đôi", "đ_", "... bạn cùng tiến", [3]string{"ối", "ồi", "ội"}},
	{"ơi", "bơi", "b_", "Bé đi ... ở hồ nước", [3]string{"ới", "ời", "ợi"}},
	{"áy", "máy", "m_", "Cái ... bay trên trời", [3]string{"ay", "ày", "ạy"}},
	{"ây", "cây", "c_", "... xanh tỏa bóng mát", [3]string{"ấy", "ầy", "ậy"}},
	{"èo", "mèo", "m_", "Con ... kêu meo meo", [3]string{"eo", "éo", "ẹo"}},
	{"ao", "sao", "s_", "Ngôi ... sáng trên trời", [3]string{"áo", "ào", "ạo"}},
	{"au", "rau", "r_", "Bé ăn nhiều ... xanh", [3]string{"áu", "àu", "ạu"}},
	{"ấu", "gấu", "g_", "Con ... trúc ăn tre", [3]string{"âu", "ầu", "ậu"}},
	{"ìu", "rìu", "r_", "Cái ... của bác tiều phu", [3]string{"iu", "íu", "ịu"}},
	{"ừu", "cừu", "c_", "Con ... có bộ lông dày", [3]string{"ưu", "ứu", "ựu"}},
	{"àn", "bàn", "b_", "Cái ... học của bé", [3]string{"an", "án", "ạn"}},
	{"ăn", "khăn", "kh_", "Cái ... quàng đỏ", [3]string{"ắn", "ằn", "ặn"}},
	{"ân", "cân", "c_", "Cái ... dùng để biết nặng nhẹ", [3]string{"ấn", "ần", "ận"}},
	{"on", "con", "c_", "... mèo trèo cây cau", [3]string{"ón", "òn", "ọn"}},
	{"ốn", "bốn", "b_", "Một, hai, ba, ...", [3]string{"ôn", "ồn", "ộn"}},
	{"ơn", "sơn", "s_", "Chú thợ ... tường", [3]string{"ớn", "ờn", "ợn"}},
	{"en", "xe ben", "xe b_", "Chiếc ... chở cát", [3]string{"én", "èn", "ẹn"}},
	{"ến", "nến", "n_", "Thắp ... sinh nhật", [3]string{"ên", "ền", "ện"}},
	{"in", "đèn pin", "đèn p_", "Bật ... soi sáng", [3]string{"ín", "ìn", "ịn"}},
	{"ún", "bún", "b_", "Món ... chả rất ngon", [3]string{"un", "ùn", "ụn"}},
	{"ôm", "tôm", "t_", "Con ... bơi giật lùi", [3]string{"om", "ốm", "ồm"}},
	{"am", "cam", "c_", "Quả ... nhiều vitamin C", [3]string{"ám", "àm", "ạm"}},
	{"ăm", "tăm", "t_", "Bé lấy ... cho bà", [3]string{"ắm", "ằm", "ặm"}},
	{"ấm", "nấm", "n_", "Cây ... mọc sau mưa", [3]string{"âm", "ầm", "ậm"}},
	{"ót", "hót", "h_", "Con chim ... líu lo", [3]string{"ot", "ọt", "út"}},
	{"át", "hát", "h_", "Bé ... bài ca đi học", [3]string{"at", "ạt", "ít"}},
	{"ắt", "cắt", "c_", "Dùng kéo để ... giấy", [3]string{"ăt", "ặt", "ât"}},
	{"ất", "đất", "đ_", "Trái ... hình tròn", [3]string{"ât", "ật", "ăt"}},
}

// VocabSize reports how many curated word puzzles exist.
func VocabSize() int { return len(quizVocab) }

// GenerateQuiz picks count word puzzles at random and shuffles each
// question's options. If count exceeds the curated list, the whole list
// is returned.
func GenerateQuiz(rng *rand.Rand, count int) []QuizQuestion {
	order := rng.Perm(len(quizVocab))
	if count > len(order) {
		count = len(order)
	}

	questions := make([]QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		e := quizVocab[order[i]]
		options := []string{e.distractors[0], e.distractors[1], e.distractors[2], e.target}
		rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})
		questions = append(questions, QuizQuestion{
			ID:      fmt.Sprintf("q-%d", i),
			Word:    e.word,
			Display: e.mask,
			Hint:    e.hint,
			Answer:  e.target,
			Options: options,
		})
	}
	return questions
}
