package game

func init() {
	mustRegisterCaptureEffect(Queen, func() CaptureEffect { return CaptureEffectFunc(queenTargets) })
	mustRegisterCaptureEffect(King, func() CaptureEffect { return CaptureEffectFunc(kingTargets) })
	mustRegisterCaptureEffect(Bishop, func() CaptureEffect { return CaptureEffectFunc(bishopTargets) })
}

func mustRegisterCaptureEffect(piece PieceType, ctor EffectFactory) {
	if err := RegisterCaptureEffect(piece, ctor); err != nil {
		panic(err)
	}
}

// queenTargets covers the full row, column and square of origin, each cell once.
func queenTargets(origin Coord) []Coord {
	var set CellSet
	for _, region := range regionsOf(origin) {
		for _, c := range region.Cells {
			set = set.Add(c)
		}
	}
	return set.Remove(origin).Coords()
}

// kingTargets covers the eight neighbours of origin.
func kingTargets(origin Coord) []Coord {
	out := make([]Coord, 0, len(neighbourOffsets))
	for _, o := range neighbourOffsets {
		if c := origin.step(o); c.Valid() {
			out = append(out, c)
		}
	}
	return out
}

// bishopTargets covers all four diagonal rays to the board edge. Rays are not
// blocked by pieces in the way.
func bishopTargets(origin Coord) []Coord {
	out := make([]Coord, 0, 2*BoardSize)
	for _, o := range diagonalDirections {
		out = append(out, ray(origin, o)...)
	}
	return out
}
