package mathgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownExam is returned for exam ids other than 1 and 2.
var ErrUnknownExam = errors.New("mathgen: unknown exam id")

// Exam returns the fixed question sequence for a semester mock exam.
// Exam questions are hand-authored and deterministic so every learner
// sits the same assessment; no random source is involved.
func Exam(id int) ([]Question, error) {
	switch id {
	case 1:
		return exam1(), nil
	case 2:
		return exam2(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownExam, id)
	}
}

func sortingExam(id, prompt, answer string, tokens ...string) Question {
	return Question{
		ID:       id,
		Type:     TypeSorting,
		Prompt:   prompt,
		Answer:   answer,
		Sequence: strings.Split(answer, ","),
		Options:  tokens,
	}
}

func exam1() []Question {
	return []Question{
		{
			ID:      "ex1-q5",
			Type:    TypeCounting,
			Prompt:  "Bài 7: Hình vẽ bên có bao nhiêu hình tam giác?",
			Visual:  CompositeFigure{ShapeID: "RECT_ENVELOPE"},
			Answer:  "4",
			Options: []string{"4", "5", "6", "8"},
		},
		{
			ID:      "ex1-q11",
			Type:    TypeCounting,
			Prompt:  "Bài 8: Hình bên có mấy hình tam giác?",
			Visual:  CompositeFigure{ShapeID: "SQUARE_DIAGONAL"},
			Answer:  "2",
			Options: []string{"1", "2", "3", "4"},
		},
		{
			ID:      "ex1-q12",
			Type:    TypeCounting,
			Prompt:  "Bài 9: Hình vẽ bên có tất cả bao nhiêu hình vuông?",
			Visual:  CompositeFigure{ShapeID: "TRIPLE_SQUARES"},
			Answer:  "3",
			Options: []string{"3", "4", "5", "6"},
		},
		{
			ID:      "ex1-q1",
			Type:    TypeMultipleChoice,
			Prompt:  "Số bé nhất trong các số 6, 3, 0, 7, 10, 1 là số nào?",
			Visual:  ObjectRow{Items: []string{"6", "3", "0", "7", "10", "1"}},
			Answer:  "0",
			Options: []string{"1", "7", "6", "0"},
		},
		{
			ID:      "ex1-q2",
			Type:    TypeMultipleChoice,
			Prompt:  "Kết quả của phép tính 1 + 9 = ... là:",
			Answer:  "10",
			Options: []string{"10", "9", "4", "8"},
		},
		{
			ID:      "ex1-q6",
			Type:    TypeFillInBlank,
			Prompt:  "Điền số thích hợp: 10 - 0 = ...",
			Answer:  "10",
			Options: []string{"0", "10", "1", "9"},
		},
		{
			ID:      "ex1-q7",
			Type:    TypeCompare,
			Prompt:  "Điền dấu >, <, = : 4 + 5 ... 10 - 9",
			Visual:  ObjectRow{Items: []string{"4+5", "?", "10-9"}},
			Answer:  ">",
			Options: []string{">", "<", "="},
		},
		{
			ID:      "ex1-q8",
			Type:    TypeMultipleChoice,
			Prompt:  "Viết phép tính thích hợp cho hình con thỏ:",
			Visual:  ObjectRow{Items: []string{"🐰", "🐰", "🐰", "🐰", "|", "🐰", "🐰"}},
			Answer:  "4 + 2 = 6",
			Options: []string{"4 + 2 = 6", "4 - 2 = 2", "6 - 2 = 4", "2 + 4 = 8"},
		},
		{
			ID:      "ex1-q9",
			Type:    TypeFillInBlank,
			Prompt:  "Điền số: ... - 4 + 2 = 2",
			Visual:  ObjectRow{Items: []string{"?", "-", "4", "+", "2", "=", "2"}},
			Answer:  "4",
			Options: []string{"4", "6", "8", "2"},
		},
		sortingExam("ex1-q10", "Sắp xếp các số sau từ BÉ đến LỚN:", "0,1,3,6,7,10", "6", "3", "0", "7", "10", "1"),
	}
}

func exam2() []Question {
	return []Question{
		{
			ID:      "ex2-q1",
			Type:    TypeCounting,
			Prompt:  "Bài 10: Trong hình dưới đây có mấy hình vuông?",
			Visual:  CompositeFigure{ShapeID: "RECT_SPLIT_4"},
			Answer:  "3",
			Options: []string{"3", "4", "5", "2"},
		},
		{
			ID:      "ex2-q11",
			Type:    TypeCounting,
			Prompt:  "Bài 11: Hình bên có mấy hình tam giác?",
			Visual:  CompositeFigure{ShapeID: "HOUSE_SIMPLE"},
			Answer:  "1",
			Options: []string{"1", "2", "3", "4"},
		},
		{
			ID:      "ex2-q2",
			Type:    TypeMultipleChoice,
			Prompt:  "Kết quả của phép tính 6 + 4 - 3 + 3 = ...",
			Answer:  "10",
			Options: []string{"10", "2", "3", "0"},
		},
		{
			ID:      "ex2-q3",
			Type:    TypeMultipleChoice,
			Prompt:  "Các số lớn hơn 6 và bé hơn 9 là:",
			Answer:  "7; 8",
			Options: []string{"5; 7", "7; 8", "8; 9", "6; 9"},
		},
		{
			ID:      "ex2-q4",
			Type:    TypeFillInBlank,
			Prompt:  "Tính: 10 - 9 - 1 = ...",
			Answer:  "0",
			Options: []string{"0", "1", "2", "10"},
		},
		{
			ID:      "ex2-q5",
			Type:    TypeCompare,
			Prompt:  "Điền dấu >, <, = : 3 + 5 ... 10 - 2",
			Visual:  ObjectRow{Items: []string{"8", "?", "8"}},
			Answer:  "=",
			Options: []string{">", "<", "="},
		},
		sortingExam("ex2-q6", "Sắp xếp các số sau từ BÉ đến LỚN:", "0,1,5,9,10", "5", "1", "9", "0", "10"),
		sortingExam("ex2-q7", "Sắp xếp các số sau từ LỚN đến BÉ:", "10,9,5,1,0", "5", "1", "9", "0", "10"),
		{
			ID:      "ex2-q8",
			Type:    TypeFillInBlank,
			Prompt:  "Điền số: 3 + ... + 1 = 4",
			Visual:  ObjectRow{Items: []string{"3", "+", "?", "+", "1", "=", "4"}},
			Answer:  "0",
			Options: []string{"0", "1", "4", "2"},
		},
		{
			ID:      "ex2-q9",
			Type:    TypeCompare,
			Prompt:  "Điền dấu: 8 - 6 ... 8 + 2 - 4",
			Visual:  ObjectRow{Items: []string{"2", "?", "6"}},
			Answer:  "<",
			Options: []string{">", "<", "="},
		},
	}
}
