package game

import (
	"fmt"

	"go.uber.org/zap"
)

// Status is the lifecycle state of a game.
type Status string

const (
	StatusOngoing      Status = "ongoing"
	StatusKingCaptured Status = "king_captured"
	StatusStalemate    Status = "stalemate"
)

// endInStalemate finishes a game neither player can continue. The higher
// score wins; equal scores are a draw.
func (e *Engine) endInStalemate() {
	e.status = StatusStalemate
	p1, p2 := e.scores[Player1.Index()], e.scores[Player2.Index()]
	switch {
	case p1 > p2:
		e.winner = Player1
	case p2 > p1:
		e.winner = Player2
	default:
		e.winner = NoPlayer
	}

	msg := "Stalemate: draw."
	if e.winner != NoPlayer {
		msg = fmt.Sprintf("Stalemate: %s wins on points.", e.winner)
	}
	appendNote(&e.lastNote, msg)
	e.record(Event{Kind: EventStalemate, Player: e.winner, Message: msg})
	e.logger.Info("game ended in stalemate",
		zap.String("game_id", e.id),
		zap.Stringer("winner", e.winner),
		zap.Int("score_p1", p1),
		zap.Int("score_p2", p2),
	)
}
