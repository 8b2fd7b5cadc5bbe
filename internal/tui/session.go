// Package tui drives a Dulko game from a terminal using tcell.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"dulko/internal/game"
)

// Session wires terminal input and rendering to the rules engine.
type Session struct {
	engine   *game.Engine
	screen   tcell.Screen
	logger   *zap.Logger
	cursor   game.Coord
	selected game.PieceType
	message  string
}

const (
	boardX   = 4
	boardY   = 2
	sidebarX = boardX + 28
)

var (
	styleBase     = tcell.StyleDefault
	styleFrame    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDeadzone = tcell.StyleDefault.Background(tcell.ColorDarkGray)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	ownerStyles   = map[game.Player]tcell.Style{
		game.Player1: tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true),
		game.Player2: tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true),
	}
)

// NewSession builds a Session over an initialized screen.
func NewSession(engine *game.Engine, screen tcell.Screen, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		engine:   engine,
		screen:   screen,
		logger:   logger,
		selected: game.Two,
	}
}

// Run renders the game and processes events until the player quits or the
// screen is finalized.
func (s *Session) Run() error {
	s.draw()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !s.handleEvent(ev) {
			return nil
		}
		s.draw()
	}
}

// handleEvent reports false when the session should stop.
func (s *Session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		return s.handleKey(ev)
	}
	return true
}

// ---- input ----

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.moveCursor(-1, 0)
	case tcell.KeyDown:
		s.moveCursor(1, 0)
	case tcell.KeyLeft:
		s.moveCursor(0, -1)
	case tcell.KeyRight:
		s.moveCursor(0, 1)
	case tcell.KeyEnter:
		s.handlePlace()
	case tcell.KeyRune:
		s.handleRune(ev.Rune())
	}
	return true
}

func (s *Session) handleRune(r rune) {
	switch r {
	case ' ':
		s.handlePlace()
		return
	case 'p', 'P':
		s.handlePass()
		return
	case 'r', 'R':
		s.handleReset()
		return
	}
	if pt, ok := game.ParsePieceType(string(r)); ok {
		s.selected = pt
		s.message = fmt.Sprintf("Selected %s", pt)
	}
}

func (s *Session) moveCursor(dr, dc int) {
	next := game.Coord{Row: s.cursor.Row + dr, Col: s.cursor.Col + dc}
	if next.Valid() {
		s.cursor = next
	}
}

func (s *Session) handlePlace() {
	if s.engine.Ended() {
		s.message = "Game over. Press r for a new game."
		return
	}
	player := s.engine.Turn()
	res, err := s.engine.AttemptPlacement(s.cursor.Row, s.cursor.Col, s.selected, player)
	if err != nil {
		s.message = err.Error()
		return
	}
	s.message = s.engine.State().LastNote
	s.logger.Debug("move applied",
		zap.String("game_id", s.engine.ID()),
		zap.Stringer("player", player),
		zap.Stringer("piece", s.selected),
		zap.Stringer("cell", s.cursor),
		zap.Int("captures", len(res.Captures())),
	)
}

func (s *Session) handlePass() {
	player := s.engine.Turn()
	if _, err := s.engine.Pass(player); err != nil {
		s.message = err.Error()
		return
	}
	s.message = s.engine.State().LastNote
}

func (s *Session) handleReset() {
	if err := s.engine.Reset(); err != nil {
		s.message = err.Error()
		s.logger.Error("reset failed", zap.Error(err))
		return
	}
	s.cursor = game.Coord{}
	s.selected = game.Two
	s.message = "New game"
}

// ---- rendering ----

func (s *Session) draw() {
	state := s.engine.State()
	s.screen.Clear()
	s.drawText(boardX, 0, styleBase, "DULKO")
	s.drawBoard(state)
	s.drawSidebar(state)
	s.screen.Show()
}

// cellPos returns the screen position of the glyph for c. Squares are
// separated by one frame column and one frame row.
func cellPos(c game.Coord) (x, y int) {
	x = boardX + c.Col*2 + (c.Col/game.SquareSize)*2
	y = boardY + c.Row + c.Row/game.SquareSize
	return x, y
}

func (s *Session) drawBoard(state game.BoardState) {
	for col := 0; col < game.BoardSize; col++ {
		x, _ := cellPos(game.Coord{Col: col})
		s.screen.SetContent(x, boardY-1, rune('0'+col), nil, styleFrame)
	}
	for row := 0; row < game.BoardSize; row++ {
		_, y := cellPos(game.Coord{Row: row})
		s.screen.SetContent(boardX-2, y, rune('0'+row), nil, styleFrame)
	}
	for k := 1; k < game.BoardSize/game.SquareSize; k++ {
		sepX := boardX + 8*k - 2
		sepY := boardY + 4*k - 1
		for y := boardY; y < boardY+game.BoardSize+2; y++ {
			s.screen.SetContent(sepX, y, '│', nil, styleFrame)
		}
		for x := boardX; x < boardX+game.BoardSize*2+4; x++ {
			r := '─'
			if (x-boardX+2)%8 == 0 {
				r = '┼'
			}
			s.screen.SetContent(x, sepY, r, nil, styleFrame)
		}
	}

	for row := range state.Cells {
		for col, cell := range state.Cells[row] {
			c := game.Coord{Row: row, Col: col}
			glyph, style := cellGlyph(cell)
			if c == s.cursor {
				style = style.Reverse(true)
			}
			x, y := cellPos(c)
			s.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func cellGlyph(cell game.CellState) (rune, tcell.Style) {
	style := styleBase
	if cell.Deadzone {
		style = styleDeadzone
	}
	if cell.Piece == game.PieceNone {
		if cell.Deadzone {
			return '#', style
		}
		return '·', style
	}
	if owner, ok := ownerStyles[cell.Owner]; ok {
		fg, _, attrs := owner.Decompose()
		style = style.Foreground(fg).Attributes(attrs)
	}
	return []rune(cell.Piece.String())[0], style
}

func (s *Session) drawSidebar(state game.BoardState) {
	y := boardY
	if state.GameOver {
		result := "Draw"
		if state.WinnerName != "" {
			result = state.WinnerName + " wins"
		}
		s.drawText(sidebarX, y, styleError, fmt.Sprintf("Game over (%s): %s", state.Status, result))
	} else {
		s.drawText(sidebarX, y, ownerStyles[state.Turn], "Turn: "+state.TurnName)
	}
	y++
	s.drawText(sidebarX, y, styleBase, "Selected: "+s.selected.String())
	y += 2

	for _, ps := range state.Players {
		s.drawText(sidebarX, y, ownerStyles[ps.Player], fmt.Sprintf("%s  score %d  left %d", ps.Name, ps.Score, ps.Remaining))
		y++
		var b strings.Builder
		for i, entry := range ps.Inventory {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s:%d", entry.Piece, entry.Count)
		}
		s.drawText(sidebarX, y, styleBase, b.String())
		y += 2
	}

	s.drawText(sidebarX, y, styleFrame, fmt.Sprintf("Deadzone %s", state.Deadzone))
	y += 2
	msg := s.message
	if msg == "" {
		msg = state.LastNote
	}
	s.drawText(sidebarX, y, styleBase, msg)
	y += 2
	s.drawText(sidebarX, y, styleFrame, "arrows move  2-8/k/q/b/a select  enter place")
	s.drawText(sidebarX, y+1, styleFrame, "p pass  r reset  esc quit")
}

func (s *Session) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
