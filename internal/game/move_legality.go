package game

// IsValidMove reports whether piece may be placed at (row, col) on the current
// board. It never mutates the engine and ignores turn order and inventory.
func (e *Engine) IsValidMove(row, col int, piece PieceType) bool {
	c := Coord{Row: row, Col: col}
	if !c.Valid() || !piece.Valid() {
		return false
	}
	if piece == Ace {
		// Aces go anywhere, occupied cells and the deadzone included.
		return true
	}

	cell := e.board.Cell(c)
	if cell.Occupied() || cell.Deadzone {
		return false
	}

	switch {
	case piece == King:
		// Kings override special conflicts in their row, column and square
		// and skip the diagonal rule entirely.
		return true
	case piece.IsSpecial():
		if e.hasSpecialInRegions(c) {
			return false
		}
		if piece == Bishop && e.hasSpecialOnDiagonals(c) {
			return false
		}
		return true
	default:
		return !e.hasPieceInRegions(c, piece)
	}
}

func (e *Engine) hasSpecialInRegions(c Coord) bool {
	for _, region := range regionsOf(c) {
		for _, rc := range region.Cells {
			if e.board.at(rc).Piece.IsSpecial() {
				return true
			}
		}
	}
	return false
}

func (e *Engine) hasSpecialOnDiagonals(c Coord) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			other := Coord{Row: row, Col: col}
			if onDiagonal(c, other) && e.board.at(other).Piece.IsSpecial() {
				return true
			}
		}
	}
	return false
}

// hasPieceInRegions reports whether piece already sits in the row, column or
// square through c.
func (e *Engine) hasPieceInRegions(c Coord, piece PieceType) bool {
	for _, region := range regionsOf(c) {
		for _, rc := range region.Cells {
			if e.board.at(rc).Piece == piece {
				return true
			}
		}
	}
	return false
}

// Placement is a (cell, piece) pair a player could legally place.
type Placement struct {
	Coord Coord     `json:"coord"`
	Piece PieceType `json:"piece"`
}

// LegalPlacements lists every placement player could make right now, taking
// inventory into account. It is empty once the game has ended.
func (e *Engine) LegalPlacements(player Player) []Placement {
	if e.Ended() || !player.Valid() {
		return nil
	}
	var out []Placement
	inv := e.inventory[player.Index()]
	for _, pt := range AllPieceTypes {
		if inv[pt] <= 0 {
			continue
		}
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if e.IsValidMove(row, col, pt) {
					out = append(out, Placement{Coord: Coord{Row: row, Col: col}, Piece: pt})
				}
			}
		}
	}
	return out
}

// HasLegalPlacement reports whether player has at least one legal placement.
func (e *Engine) HasLegalPlacement(player Player) bool {
	if !player.Valid() {
		return false
	}
	inv := e.inventory[player.Index()]
	for _, pt := range AllPieceTypes {
		if inv[pt] <= 0 {
			continue
		}
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if e.IsValidMove(row, col, pt) {
					return true
				}
			}
		}
	}
	return false
}
