package game

import "go.uber.org/zap"

// EventKind names something that happened while resolving a move.
type EventKind string

const (
	EventPlaced       EventKind = "placed"
	EventOverwritten  EventKind = "overwritten"
	EventCaptured     EventKind = "captured"
	EventConverted    EventKind = "converted"
	EventAceUpgraded  EventKind = "ace_upgraded"
	EventKingCaptured EventKind = "king_captured"
	EventPassed       EventKind = "passed"
	EventStalemate    EventKind = "stalemate"
)

// Event is one step of a resolved move. Player is the acting side; Victim is
// the side that lost the piece for captures and overwrites. Value carries the
// points moved, gained or lost by the step.
type Event struct {
	Kind    EventKind `json:"kind"`
	Player  Player    `json:"player,omitempty"`
	Victim  Player    `json:"victim,omitempty"`
	Piece   PieceType `json:"piece,omitempty"`
	Coord   Coord     `json:"coord"`
	Value   int       `json:"value,omitempty"`
	Region  string    `json:"region,omitempty"`
	Message string    `json:"message,omitempty"`
}

// MoveResult is what a successful placement or pass produced, in order.
type MoveResult struct {
	Events []Event `json:"events"`
	Ended  bool    `json:"ended"`
}

// Captures returns the capture events of the move.
func (r MoveResult) Captures() []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Kind == EventCaptured {
			out = append(out, ev)
		}
	}
	return out
}

// KingCaptured reports whether the move ended the game by taking a King.
func (r MoveResult) KingCaptured() bool {
	for _, ev := range r.Events {
		if ev.Kind == EventKingCaptured {
			return true
		}
	}
	return false
}

func (e *Engine) beginMove() {
	e.journal = make([]Event, 0, 8)
}

func (e *Engine) endMove() MoveResult {
	res := MoveResult{Events: e.journal, Ended: e.Ended()}
	e.journal = nil
	return res
}

func (e *Engine) record(ev Event) {
	e.journal = append(e.journal, ev)
	if e.notify != nil {
		e.notify(ev)
	}
	if ev.Kind == EventPlaced {
		e.logger.Debug("piece placed",
			zap.String("game_id", e.id),
			zap.Stringer("player", ev.Player),
			zap.Stringer("piece", ev.Piece),
			zap.Int("row", ev.Coord.Row),
			zap.Int("col", ev.Coord.Col),
			zap.Int("value", ev.Value),
			zap.Int("score", e.scores[ev.Player.Index()]),
		)
	}
}
