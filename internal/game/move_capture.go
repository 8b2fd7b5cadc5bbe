package game

import (
	"fmt"

	"go.uber.org/zap"
)

// applySpecialEffects resolves the capture effect of the special piece placed at c.
func (e *Engine) applySpecialEffects(c Coord, piece PieceType) {
	effect, ok := captureEffectFor(piece)
	if !ok {
		return
	}
	for _, target := range effect.Targets(c) {
		e.captureCell(target)
	}
}

// captureCell hands the piece at c to the player to move, transferring its
// current value. Empty cells, the deadzone and the mover's own pieces are left
// alone. Capturing a King ends the game.
func (e *Engine) captureCell(c Coord) {
	if !c.Valid() {
		return
	}
	cell := e.board.at(c)
	if !cell.Occupied() || cell.Deadzone || cell.Owner == e.turn {
		return
	}

	capturer := e.turn
	victim := cell.Owner
	value := e.valueAt(c)
	e.scores[capturer.Index()] += value
	e.scores[victim.Index()] -= value
	cell.Owner = capturer
	e.record(Event{Kind: EventCaptured, Player: capturer, Victim: victim, Piece: cell.Piece, Coord: c, Value: value})

	e.logger.Debug("piece captured",
		zap.String("game_id", e.id),
		zap.Stringer("player", capturer),
		zap.Stringer("victim", victim),
		zap.Stringer("piece", cell.Piece),
		zap.Int("row", c.Row),
		zap.Int("col", c.Col),
		zap.Int("value", value),
	)

	if cell.Piece == King {
		e.endByKingCapture(capturer, c)
	}
}

func (e *Engine) endByKingCapture(capturer Player, c Coord) {
	if e.status == StatusKingCaptured {
		return
	}
	e.status = StatusKingCaptured
	e.winner = capturer
	msg := fmt.Sprintf("%s captured the King! Game over.", capturer)
	appendNote(&e.lastNote, msg)
	e.record(Event{Kind: EventKingCaptured, Player: capturer, Piece: King, Coord: c, Message: msg})
	e.logger.Info("king captured",
		zap.String("game_id", e.id),
		zap.Stringer("winner", capturer),
		zap.Int("score_p1", e.scores[Player1.Index()]),
		zap.Int("score_p2", e.scores[Player2.Index()]),
	)
}
