package game

// CellState is a serializable view of a Cell.
type CellState struct {
	Piece    PieceType `json:"piece,omitempty"`
	Owner    Player    `json:"owner,omitempty"`
	Deadzone bool      `json:"deadzone,omitempty"`
}

// InventoryEntry is one line of a player's piece bank.
type InventoryEntry struct {
	Piece PieceType `json:"piece"`
	Count int       `json:"count"`
}

// PlayerState summarizes one side for rendering.
type PlayerState struct {
	Player    Player           `json:"player"`
	Name      string           `json:"name"`
	Score     int              `json:"score"`
	Remaining int              `json:"remaining"`
	Inventory []InventoryEntry `json:"inventory"`
}

// BoardState is a serializable snapshot of the whole game.
type BoardState struct {
	GameID     string                          `json:"gameId"`
	Cells      [BoardSize][BoardSize]CellState `json:"cells"`
	Deadzone   Coord                           `json:"deadzone"`
	Players    [2]PlayerState                  `json:"players"`
	Turn       Player                          `json:"turn"`
	TurnName   string                          `json:"turnName"`
	Status     Status                          `json:"status"`
	GameOver   bool                            `json:"gameOver"`
	Winner     Player                          `json:"winner,omitempty"`
	WinnerName string                          `json:"winnerName,omitempty"`
	LastNote   string                          `json:"lastNote"`
}

// State returns a snapshot of the current game. The snapshot shares no memory
// with the engine.
func (e *Engine) State() BoardState {
	state := BoardState{
		GameID:   e.id,
		Deadzone: e.deadzone,
		Turn:     e.turn,
		TurnName: e.turn.String(),
		Status:   e.status,
		GameOver: e.Ended(),
		Winner:   e.winner,
		LastNote: e.lastNote,
	}
	if e.winner != NoPlayer {
		state.WinnerName = e.winner.String()
	}

	for row := range e.board {
		for col, cell := range e.board[row] {
			state.Cells[row][col] = CellState{Piece: cell.Piece, Owner: cell.Owner, Deadzone: cell.Deadzone}
		}
	}

	for _, p := range players {
		inv := e.inventory[p.Index()]
		entries := make([]InventoryEntry, 0, len(AllPieceTypes))
		for _, pt := range AllPieceTypes {
			entries = append(entries, InventoryEntry{Piece: pt, Count: inv[pt]})
		}
		state.Players[p.Index()] = PlayerState{
			Player:    p,
			Name:      p.String(),
			Score:     e.scores[p.Index()],
			Remaining: inv.Total(),
			Inventory: entries,
		}
	}
	return state
}
