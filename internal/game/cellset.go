package game

import "math/bits"

// CellSet is a set of board cells packed into two 64-bit words, indexed row-major.
type CellSet [2]uint64

func cellIndex(c Coord) int { return c.Row*BoardSize + c.Col }

func cellAt(idx int) Coord { return Coord{Row: idx / BoardSize, Col: idx % BoardSize} }

// Add returns the set with c included. Off-board cells are ignored.
func (s CellSet) Add(c Coord) CellSet {
	if c.Valid() {
		idx := cellIndex(c)
		s[idx/64] |= 1 << (idx % 64)
	}
	return s
}

// Remove returns the set without c.
func (s CellSet) Remove(c Coord) CellSet {
	if c.Valid() {
		idx := cellIndex(c)
		s[idx/64] &^= 1 << (idx % 64)
	}
	return s
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int { return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1]) }

// Iter calls fn for each cell in row-major order.
func (s CellSet) Iter(fn func(Coord)) {
	for word := range s {
		w := s[word]
		for w != 0 {
			fn(cellAt(word*64 + bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
}

// Coords returns the cells in row-major order.
func (s CellSet) Coords() []Coord {
	out := make([]Coord, 0, s.Len())
	s.Iter(func(c Coord) { out = append(out, c) })
	return out
}
