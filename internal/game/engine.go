// Package game implements the Dulko rules engine: a Sudoku-constrained 9x9
// board where numbered and special pieces are placed, scored and captured.
package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Engine holds one game's board, inventories, scores and turn state. It is not
// safe for concurrent use; callers drive it from a single goroutine.
type Engine struct {
	id        string
	board     Board
	deadzone  Coord
	inventory [2]Inventory
	scores    [2]int
	turn      Player
	status    Status
	winner    Player
	passes    int
	lastNote  string

	// journal collects the events of the move currently being resolved.
	journal []Event

	fixedDeadzone *Coord
	rng           *rand.Rand
	logger        *zap.Logger
	notify        func(Event)
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger routes engine logs to logger. The default discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDeadzone pins the deadzone instead of drawing it at random.
func WithDeadzone(c Coord) Option {
	return func(e *Engine) {
		dz := c
		e.fixedDeadzone = &dz
	}
}

// WithSeed seeds the deadzone draw. A zero seed uses the current time.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNotifier registers fn to receive every event as it happens.
func WithNotifier(fn func(Event)) Option {
	return func(e *Engine) { e.notify = fn }
}

// NewEngine creates an engine with a fresh game set up.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		WithSeed(0)(e)
	}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset discards the current game and starts a new one with a new ID and deadzone.
func (e *Engine) Reset() error {
	var deadzone Coord
	if e.fixedDeadzone != nil {
		deadzone = *e.fixedDeadzone
	} else {
		deadzone = Coord{Row: e.rng.Intn(BoardSize), Col: e.rng.Intn(BoardSize)}
	}
	if !deadzone.Valid() {
		return fmt.Errorf("%w: deadzone %s outside the board", ErrInvalidConfig, deadzone)
	}

	e.id = uuid.NewString()
	e.board = Board{}
	e.deadzone = deadzone
	e.board.at(deadzone).Deadzone = true
	for _, p := range players {
		e.inventory[p.Index()] = NewInventory()
		e.scores[p.Index()] = 0
	}
	e.turn = Player1
	e.status = StatusOngoing
	e.winner = NoPlayer
	e.passes = 0
	e.journal = nil
	e.lastNote = "New game"

	e.logger.Info("game started",
		zap.String("game_id", e.id),
		zap.Int("deadzone_row", deadzone.Row),
		zap.Int("deadzone_col", deadzone.Col),
	)
	return nil
}

// AttemptPlacement is the primary entry point: it validates the placement of
// piece at (row, col) for player and, when legal, resolves the whole move.
// Rejected attempts leave the engine untouched.
func (e *Engine) AttemptPlacement(row, col int, piece PieceType, player Player) (MoveResult, error) {
	if err := e.checkPlacement(row, col, piece, player); err != nil {
		e.logger.Debug("placement rejected",
			zap.String("game_id", e.id),
			zap.Stringer("player", player),
			zap.Stringer("piece", piece),
			zap.Int("row", row),
			zap.Int("col", col),
			zap.Error(err),
		)
		return MoveResult{}, err
	}

	e.beginMove()
	e.placePiece(Coord{Row: row, Col: col}, piece)
	e.passes = 0
	if !e.Ended() {
		e.flipTurn()
	}
	return e.endMove(), nil
}

func (e *Engine) checkPlacement(row, col int, piece PieceType, player Player) error {
	if e.Ended() {
		return ErrGameOver
	}
	if player != e.turn {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, e.turn)
	}
	c := Coord{Row: row, Col: col}
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if !piece.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPiece, piece.String())
	}
	if e.inventory[player.Index()].Count(piece) <= 0 {
		return fmt.Errorf("%w: %s has no %s", ErrPieceExhausted, player, piece)
	}
	if !e.IsValidMove(row, col, piece) {
		return fmt.Errorf("%w: %s at %s", ErrInvalidMove, piece, c)
	}
	return nil
}

// Pass gives up the turn. It is only accepted when player has no legal
// placement; two passes in a row end the game as a stalemate.
func (e *Engine) Pass(player Player) (MoveResult, error) {
	if e.Ended() {
		return MoveResult{}, ErrGameOver
	}
	if player != e.turn {
		return MoveResult{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, e.turn)
	}
	if e.HasLegalPlacement(player) {
		return MoveResult{}, ErrPassDenied
	}

	e.beginMove()
	e.passes++
	e.record(Event{Kind: EventPassed, Player: player})
	e.lastNote = fmt.Sprintf("%s passed", player)
	if e.passes >= 2 {
		e.endInStalemate()
	} else {
		e.flipTurn()
	}
	return e.endMove(), nil
}

func (e *Engine) flipTurn() { e.turn = e.turn.Opponent() }

// ID returns the identifier of the current game.
func (e *Engine) ID() string { return e.id }

// Turn returns the player to move.
func (e *Engine) Turn() Player { return e.turn }

// Deadzone returns the fixed deadzone cell.
func (e *Engine) Deadzone() Coord { return e.deadzone }

// Score returns player's current score.
func (e *Engine) Score(player Player) int {
	if !player.Valid() {
		return 0
	}
	return e.scores[player.Index()]
}

// Inventory returns a copy of player's remaining pieces.
func (e *Engine) Inventory(player Player) Inventory {
	if !player.Valid() {
		return Inventory{}
	}
	return e.inventory[player.Index()]
}

// CellAt returns a copy of the cell at (row, col).
func (e *Engine) CellAt(row, col int) Cell { return e.board.Cell(Coord{Row: row, Col: col}) }

// Ended reports whether the game has reached a terminal state.
func (e *Engine) Ended() bool { return e.status != StatusOngoing }

// Status returns the current game status.
func (e *Engine) Status() Status { return e.status }

// Winner returns the winning player, or NoPlayer while ongoing or on a draw.
func (e *Engine) Winner() Player { return e.winner }
