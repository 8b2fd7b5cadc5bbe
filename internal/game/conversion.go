package game

// checkConversion captures every opponent piece in each completed row, column
// or square through c. Captures made here never trigger further conversions.
func (e *Engine) checkConversion(c Coord) {
	for _, region := range regionsOf(c) {
		if !e.isComplete(region) {
			continue
		}
		e.record(Event{Kind: EventConverted, Player: e.turn, Coord: c, Region: region.Kind.String()})
		for _, rc := range region.Cells {
			if rc == e.deadzone {
				continue
			}
			e.captureCell(rc)
		}
	}
}

// isComplete reports whether every non-deadzone cell of region is occupied.
func (e *Engine) isComplete(region Region) bool {
	for _, rc := range region.Cells {
		if rc == e.deadzone {
			continue
		}
		if !e.board.at(rc).Occupied() {
			return false
		}
	}
	return true
}
