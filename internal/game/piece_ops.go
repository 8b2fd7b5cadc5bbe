package game

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	KingValue    = 50
	AceBaseValue = 1
	AceKingValue = 11
	aceUpgrade   = AceKingValue - AceBaseValue
)

func appendNote(dst *string, note string) {
	if *dst == "" || *dst == "New game" {
		*dst = note
	} else {
		*dst += "; " + note
	}
}

// placePiece runs the placement pipeline for the player to move. The caller
// has already validated the placement.
func (e *Engine) placePiece(c Coord, piece PieceType) {
	player := e.turn
	cell := e.board.at(c)

	if cell.Occupied() {
		e.displace(c)
	}

	cell.Piece = piece
	cell.Owner = player
	value := e.valueAt(c)
	e.scores[player.Index()] += value
	e.inventory[player.Index()][piece]--
	e.lastNote = fmt.Sprintf("%s placed %s at %s", player, piece, c)
	e.record(Event{Kind: EventPlaced, Player: player, Piece: piece, Coord: c, Value: value})

	if piece.IsSpecial() {
		e.applySpecialEffects(c, piece)
	}
	e.checkConversion(c)
	if piece == King {
		e.upgradeAces(c)
	}
}

// displace removes the piece an Ace is dropped onto and debits its owner the
// value it is worth at that moment. Overwriting a King does not end the game,
// and Aces already upgraded by that King keep their points.
func (e *Engine) displace(c Coord) {
	cell := e.board.at(c)
	value := e.valueAt(c)
	victim := cell.Owner
	e.scores[victim.Index()] -= value
	e.record(Event{Kind: EventOverwritten, Player: e.turn, Victim: victim, Piece: cell.Piece, Coord: c, Value: value})
	cell.Piece = PieceNone
	cell.Owner = NoPlayer
}

// valueAt is the worth of the piece currently at c: its digit, 50 for a King,
// 11 or 1 for an Ace depending on whether a King shares its row, column or
// square, and nothing for Queens and Bishops.
func (e *Engine) valueAt(c Coord) int {
	piece := e.board.at(c).Piece
	switch {
	case piece.IsNumeric():
		return piece.Digit()
	case piece == King:
		return KingValue
	case piece == Ace:
		if e.hasPieceInRegions(c, King) {
			return AceKingValue
		}
		return AceBaseValue
	default:
		return 0
	}
}

// upgradeAces raises each of the mover's Aces that shares a region with the
// King just placed at king. An Ace is upgraded once per shared region.
func (e *Engine) upgradeAces(king Coord) {
	player := e.turn
	upgraded := 0
	for _, region := range regionsOf(king) {
		for _, c := range region.Cells {
			cell := e.board.at(c)
			if cell.Piece != Ace || cell.Owner != player {
				continue
			}
			e.scores[player.Index()] += aceUpgrade
			upgraded++
			e.record(Event{Kind: EventAceUpgraded, Player: player, Piece: Ace, Coord: c, Value: aceUpgrade, Region: region.Kind.String()})
		}
	}
	if upgraded == 0 {
		return
	}
	e.logger.Debug("aces upgraded",
		zap.String("game_id", e.id),
		zap.Stringer("player", player),
		zap.Int("upgrades", upgraded),
		zap.Int("score", e.scores[player.Index()]),
	)
}
