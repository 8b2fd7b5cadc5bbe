package game

import (
	"fmt"
	"strings"
)

// Player identifies one of the two sides. The zero value means no owner.
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Index maps a player onto the per-player arrays held by the engine.
func (p Player) Index() int { return int(p) - 1 }

func (p Player) Valid() bool { return p == Player1 || p == Player2 }

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "none"
	}
}

var players = [...]Player{Player1, Player2}

// PieceType is a placeable piece. Numeric pieces come first so iteration
// order matches the bank order 2..8, K, Q, B, A.
type PieceType uint8

const (
	PieceNone PieceType = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	King
	Queen
	Bishop
	Ace

	pieceTypeCount
)

// AllPieceTypes lists every placeable piece in bank order.
var AllPieceTypes = [...]PieceType{Two, Three, Four, Five, Six, Seven, Eight, King, Queen, Bishop, Ace}

func (p PieceType) Valid() bool { return p > PieceNone && p < pieceTypeCount }

func (p PieceType) IsNumeric() bool { return p >= Two && p <= Eight }

func (p PieceType) IsSpecial() bool { return p >= King && p <= Ace }

// Digit returns the face value of a numeric piece and 0 for anything else.
func (p PieceType) Digit() int {
	if !p.IsNumeric() {
		return 0
	}
	return int(p-Two) + 2
}

func (p PieceType) String() string {
	switch {
	case p.IsNumeric():
		return fmt.Sprintf("%d", p.Digit())
	case p == King:
		return "K"
	case p == Queen:
		return "Q"
	case p == Bishop:
		return "B"
	case p == Ace:
		return "A"
	case p == PieceNone:
		return ""
	default:
		return fmt.Sprintf("piece(%d)", uint8(p))
	}
}

// ParsePieceType reads the one-character bank notation, case-insensitively.
func ParsePieceType(s string) (PieceType, bool) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for _, pt := range AllPieceTypes {
		if pt.String() == needle {
			return pt, true
		}
	}
	return PieceNone, false
}

func (p PieceType) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PieceType) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = PieceNone
		return nil
	}
	pt, ok := ParsePieceType(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPiece, string(text))
	}
	*p = pt
	return nil
}

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// SquareOrigin returns the top-left cell of the 3x3 square containing c.
func (c Coord) SquareOrigin() Coord {
	return Coord{Row: c.Row / SquareSize * SquareSize, Col: c.Col / SquareSize * SquareSize}
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Inventory counts the pieces a player still holds, indexed by PieceType.
type Inventory [pieceTypeCount]int

func NewInventory() Inventory {
	var inv Inventory
	for _, pt := range AllPieceTypes {
		inv[pt] = initialCount(pt)
	}
	return inv
}

func initialCount(pt PieceType) int {
	switch pt {
	case King, Queen, Bishop:
		return 1
	case Ace:
		return 2
	default:
		if pt.IsNumeric() {
			return 5
		}
		return 0
	}
}

func (inv Inventory) Count(pt PieceType) int {
	if !pt.Valid() {
		return 0
	}
	return inv[pt]
}

func (inv Inventory) Total() int {
	total := 0
	for _, pt := range AllPieceTypes {
		total += inv[pt]
	}
	return total
}
