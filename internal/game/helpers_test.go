package game

import "testing"

var testDeadzone = Coord{Row: 4, Col: 4}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithDeadzone(testDeadzone), WithSeed(7)}, opts...)
	eng, err := NewEngine(opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return eng
}

// put drops a piece straight onto the board and credits its value, bypassing
// validation and turn order.
func put(t *testing.T, e *Engine, row, col int, piece PieceType, owner Player) {
	t.Helper()
	c := Coord{Row: row, Col: col}
	if !c.Valid() {
		t.Fatalf("put: invalid coordinate %s", c)
	}
	cell := e.board.at(c)
	cell.Piece = piece
	cell.Owner = owner
	e.scores[owner.Index()] += e.valueAt(c)
}

func mustPlace(t *testing.T, e *Engine, row, col int, piece PieceType) MoveResult {
	t.Helper()
	res, err := e.AttemptPlacement(row, col, piece, e.Turn())
	if err != nil {
		t.Fatalf("place %s at (%d,%d) for %s: %v", piece, row, col, e.Turn(), err)
	}
	return res
}
