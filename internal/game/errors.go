package game

import "errors"

var (
	ErrGameOver       = errors.New("game over")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrUnknownPiece   = errors.New("unknown piece type")
	ErrPieceExhausted = errors.New("no pieces of that type left")
	ErrInvalidMove    = errors.New("invalid move")
	ErrPassDenied     = errors.New("pass denied: a legal placement exists")
	ErrInvalidConfig  = errors.New("invalid configuration")
)
