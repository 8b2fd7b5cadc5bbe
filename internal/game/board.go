package game

const (
	BoardSize  = 9
	SquareSize = 3
)

// Cell is one board position. A deadzone cell keeps its marker even after an
// Ace has been dropped onto it.
type Cell struct {
	Piece    PieceType
	Owner    Player
	Deadzone bool
}

func (c Cell) Occupied() bool { return c.Piece != PieceNone }

// Board is the 9x9 grid, addressed [row][col].
type Board [BoardSize][BoardSize]Cell

func (b *Board) at(c Coord) *Cell { return &b[c.Row][c.Col] }

// Cell returns a copy of the cell at c. Out-of-range coordinates yield the zero Cell.
func (b *Board) Cell(c Coord) Cell {
	if !c.Valid() {
		return Cell{}
	}
	return b[c.Row][c.Col]
}

type RegionKind uint8

const (
	RegionRow RegionKind = iota
	RegionColumn
	RegionSquare
)

func (k RegionKind) String() string {
	switch k {
	case RegionRow:
		return "row"
	case RegionColumn:
		return "column"
	case RegionSquare:
		return "square"
	default:
		return "?"
	}
}

// Region is a row, column or 3x3 square. Index is the row number, the column
// number, or the square number counted left to right, top to bottom.
type Region struct {
	Kind  RegionKind
	Index int
	Cells [BoardSize]Coord
}

func rowRegion(row int) Region {
	r := Region{Kind: RegionRow, Index: row}
	for col := 0; col < BoardSize; col++ {
		r.Cells[col] = Coord{Row: row, Col: col}
	}
	return r
}

func columnRegion(col int) Region {
	r := Region{Kind: RegionColumn, Index: col}
	for row := 0; row < BoardSize; row++ {
		r.Cells[row] = Coord{Row: row, Col: col}
	}
	return r
}

func squareRegion(c Coord) Region {
	origin := c.SquareOrigin()
	r := Region{Kind: RegionSquare, Index: origin.Row + origin.Col/SquareSize}
	i := 0
	for row := origin.Row; row < origin.Row+SquareSize; row++ {
		for col := origin.Col; col < origin.Col+SquareSize; col++ {
			r.Cells[i] = Coord{Row: row, Col: col}
			i++
		}
	}
	return r
}

// regionsOf returns the row, column and square through c, in that order.
func regionsOf(c Coord) [3]Region {
	return [3]Region{rowRegion(c.Row), columnRegion(c.Col), squareRegion(c)}
}

type offset struct {
	dr int
	dc int
}

var (
	diagonalDirections = [...]offset{
		{dr: -1, dc: -1},
		{dr: -1, dc: 1},
		{dr: 1, dc: -1},
		{dr: 1, dc: 1},
	}
	neighbourOffsets = [...]offset{
		{dr: -1, dc: -1}, {dr: -1, dc: 0}, {dr: -1, dc: 1},
		{dr: 0, dc: -1}, {dr: 0, dc: 1},
		{dr: 1, dc: -1}, {dr: 1, dc: 0}, {dr: 1, dc: 1},
	}
)

func (c Coord) step(o offset) Coord { return Coord{Row: c.Row + o.dr, Col: c.Col + o.dc} }

// ray walks from c in direction o up to the board edge, excluding c itself.
func ray(c Coord, o offset) []Coord {
	var out []Coord
	for next := c.step(o); next.Valid(); next = next.step(o) {
		out = append(out, next)
	}
	return out
}

// onDiagonal reports whether other lies on either diagonal through c,
// including c itself.
func onDiagonal(c, other Coord) bool {
	return other.Row-other.Col == c.Row-c.Col || other.Row+other.Col == c.Row+c.Col
}
