package board

// Size is the number of cells on a tic-tac-toe board.
const Size = 9

// Cells is a board left-to-right, top-to-bottom. A cell holds "X", "O" or "".
type Cells [Size]string

// Outcome of evaluating a board.
type Outcome int

const (
	InProgress Outcome = iota
	Win
	Draw
)

// The 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Evaluate returns the terminal state of a board. On Win the second return
// value is the winning symbol, otherwise it is empty.
func Evaluate(cells Cells) (Outcome, string) {
	for _, line := range lines {
		a, b, c := cells[line[0]], cells[line[1]], cells[line[2]]
		if a != "" && a == b && b == c {
			return Win, a
		}
	}
	for _, cell := range cells {
		if cell == "" {
			return InProgress, ""
		}
	}
	return Draw, ""
}
