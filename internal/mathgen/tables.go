package mathgen

// Op is an arithmetic operation for fact tables.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
)

// TableRow is one fact in a table, e.g. 3 + 4 = 7.
type TableRow struct {
	A      int
	B      int
	Result int
}

// Table groups the facts anchored on one number, e.g. the "3" addition
// table.
type Table struct {
	Number int
	Rows   []TableRow
}

// BuildTables produces the within-10 fact tables for an operation.
// Addition tables list i + j for every j keeping the sum at most 10;
// subtraction tables list a - i for every minuend above i.
func BuildTables(op Op) []Table {
	var tables []Table
	for i := 1; i <= 9; i++ {
		var rows []TableRow
		if op == OpAdd {
			for j := 1; j <= MaxValue-i; j++ {
				rows = append(rows, TableRow{A: i, B: j, Result: i + j})
			}
		} else {
			for j := i + 1; j <= MaxValue; j++ {
				rows = append(rows, TableRow{A: j, B: i, Result: j - i})
			}
		}
		if len(rows) > 0 {
			tables = append(tables, Table{Number: i, Rows: rows})
		}
	}
	return tables
}
