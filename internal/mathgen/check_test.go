package mathgen

import "testing"

func TestCheckAnswer(t *testing.T) {
	numeric := &Question{Type: TypeMultipleChoice, Answer: "7"}
	symbolic := &Question{Type: TypeCompare, Answer: ">"}
	sentence := &Question{Type: TypeMultipleChoice, Answer: "4 + 2 = 6"}

	tests := []struct {
		name   string
		q      *Question
		answer string
		want   bool
	}{
		{"exact numeric", numeric, "7", true},
		{"leading zero", numeric, "07", true},
		{"whitespace", numeric, " 7 ", true},
		{"wrong numeric", numeric, "8", false},
		{"empty", numeric, "", false},
		{"symbol match", symbolic, ">", true},
		{"symbol mismatch", symbolic, "<", false},
		{"sentence match", sentence, "4 + 2 = 6", true},
		{"sentence mismatch", sentence, "4 - 2 = 2", false},
		{"nil question", nil, "7", false},
	}

	for _, tt := range tests {
		if got := CheckAnswer(tt.q, tt.answer); got != tt.want {
			t.Errorf("%s: CheckAnswer = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCheckAnswerRejectsSorting(t *testing.T) {
	q := &Question{Type: TypeSorting, Answer: "1,2,3", Sequence: []string{"1", "2", "3"}}
	if CheckAnswer(q, "1,2,3") {
		t.Error("CheckAnswer accepted a sorting question")
	}
}

func TestCheckSequence(t *testing.T) {
	q := &Question{Type: TypeSorting, Answer: "0,1,5", Sequence: []string{"0", "1", "5"}}

	tests := []struct {
		name      string
		selection []string
		want      bool
	}{
		{"exact", []string{"0", "1", "5"}, true},
		{"prefix never resolves", []string{"0", "1"}, false},
		{"wrong order", []string{"1", "0", "5"}, false},
		{"too long", []string{"0", "1", "5", "5"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		if got := CheckSequence(q, tt.selection); got != tt.want {
			t.Errorf("%s: CheckSequence = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRecompute(t *testing.T) {
	tests := []struct {
		items []string
		want  int
		ok    bool
	}{
		{[]string{"2", "+", "3", "=", "?"}, 5, true},
		{[]string{"7", "-", "2", "=", "?"}, 5, true},
		{[]string{"2", "+", "?", "=", "9"}, 7, true},
		{[]string{"?", "+", "3", "=", "9"}, 6, true},
		{[]string{"9", "-", "?", "=", "4"}, 5, true},
		{[]string{"?", "-", "3", "=", "4"}, 7, true},
		{[]string{"1", "2", "3"}, 0, false},
		{[]string{"a", "+", "b", "=", "?"}, 0, false},
	}

	for _, tt := range tests {
		got, ok := Recompute(ObjectRow{Items: tt.items})
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Recompute(%v) = (%d, %v), want (%d, %v)", tt.items, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBuildTables(t *testing.T) {
	for _, op := range []Op{OpAdd, OpSub} {
		tables := BuildTables(op)
		if len(tables) != 9 {
			t.Fatalf("%s: got %d tables, want 9", op, len(tables))
		}
		for _, table := range tables {
			if len(table.Rows) == 0 {
				t.Errorf("%s table %d is empty", op, table.Number)
			}
			for _, row := range table.Rows {
				var want int
				if op == OpAdd {
					want = row.A + row.B
				} else {
					want = row.A - row.B
				}
				if row.Result != want {
					t.Errorf("%s: %d %s %d = %d, want %d", op, row.A, op, row.B, row.Result, want)
				}
				if row.Result < 0 || row.Result > MaxValue || row.A > MaxValue || row.B > MaxValue {
					t.Errorf("%s: fact %d %s %d = %d leaves [0,10]", op, row.A, op, row.B, row.Result)
				}
			}
		}
	}
}
