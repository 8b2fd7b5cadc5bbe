package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewEngineInitialState(t *testing.T) {
	eng := newTestEngine(t)

	if eng.Turn() != Player1 {
		t.Fatalf("expected Player 1 to start, got %s", eng.Turn())
	}
	if eng.Ended() {
		t.Fatalf("expected fresh game to be ongoing")
	}
	if eng.ID() == "" {
		t.Fatalf("expected a game id")
	}
	if got := eng.Deadzone(); got != testDeadzone {
		t.Fatalf("expected deadzone %s, got %s", testDeadzone, got)
	}
	if !eng.CellAt(4, 4).Deadzone {
		t.Fatalf("expected deadzone marker on (4,4)")
	}
	for _, p := range []Player{Player1, Player2} {
		inv := eng.Inventory(p)
		if got := inv.Total(); got != 40 {
			t.Fatalf("expected 40 pieces for %s, got %d", p, got)
		}
		want := map[PieceType]int{King: 1, Queen: 1, Bishop: 1, Ace: 2, Two: 5, Five: 5, Eight: 5}
		for pt, n := range want {
			if inv.Count(pt) != n {
				t.Fatalf("expected %d x %s for %s, got %d", n, pt, p, inv.Count(pt))
			}
		}
		if eng.Score(p) != 0 {
			t.Fatalf("expected zero score for %s", p)
		}
	}
}

func TestRandomDeadzoneIsDeterministicPerSeed(t *testing.T) {
	a, err := NewEngine(WithSeed(42))
	if err != nil {
		t.Fatalf("engine a: %v", err)
	}
	b, err := NewEngine(WithSeed(42))
	if err != nil {
		t.Fatalf("engine b: %v", err)
	}
	if a.Deadzone() != b.Deadzone() {
		t.Fatalf("expected same deadzone for same seed, got %s and %s", a.Deadzone(), b.Deadzone())
	}
	if !a.Deadzone().Valid() {
		t.Fatalf("deadzone %s outside the board", a.Deadzone())
	}
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct game ids")
	}
}

func TestNewEngineRejectsDeadzoneOffBoard(t *testing.T) {
	_, err := NewEngine(WithDeadzone(Coord{Row: 9, Col: 0}))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestScenarioNumericPlacement(t *testing.T) {
	eng := newTestEngine(t)

	res, err := eng.AttemptPlacement(0, 0, Five, Player1)
	if err != nil {
		t.Fatalf("place 5: %v", err)
	}
	if got := eng.Score(Player1); got != 5 {
		t.Fatalf("expected score 5, got %d", got)
	}
	want := Cell{Piece: Five, Owner: Player1}
	if got := eng.CellAt(0, 0); got != want {
		t.Fatalf("expected %+v at (0,0), got %+v", want, got)
	}
	if eng.Turn() != Player2 {
		t.Fatalf("expected turn to pass to Player 2, got %s", eng.Turn())
	}
	if got := eng.Inventory(Player1).Count(Five); got != 4 {
		t.Fatalf("expected 4 fives left, got %d", got)
	}
	wantEvents := []Event{{Kind: EventPlaced, Player: Player1, Piece: Five, Coord: Coord{Row: 0, Col: 0}, Value: 5}}
	if diff := cmp.Diff(wantEvents, res.Events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioQueenCapturesRowAndColumn(t *testing.T) {
	eng := newTestEngine(t)
	put(t, eng, 2, 5, Three, Player2)
	put(t, eng, 5, 2, Four, Player2)
	before1, before2 := eng.Score(Player1), eng.Score(Player2)

	res := mustPlace(t, eng, 2, 2, Queen)

	for _, c := range []Coord{{Row: 2, Col: 5}, {Row: 5, Col: 2}} {
		if got := eng.CellAt(c.Row, c.Col).Owner; got != Player1 {
			t.Fatalf("expected %s captured by Player 1, owner %s", c, got)
		}
	}
	if got := eng.Score(Player1) - before1; got != 7 {
		t.Fatalf("expected Player 1 to gain 7, gained %d", got)
	}
	if got := before2 - eng.Score(Player2); got != 7 {
		t.Fatalf("expected Player 2 to lose 7, lost %d", got)
	}
	if got := len(res.Captures()); got != 2 {
		t.Fatalf("expected 2 captures, got %d", got)
	}
}

func TestScenarioKingCaptureEndsGame(t *testing.T) {
	eng := newTestEngine(t)
	put(t, eng, 3, 3, King, Player2)

	var notified []Event
	eng.notify = func(ev Event) { notified = append(notified, ev) }

	res := mustPlace(t, eng, 3, 2, King)
	if !res.KingCaptured() || !res.Ended {
		t.Fatalf("expected King capture to end the game, got %+v", res)
	}
	if !eng.Ended() || eng.Status() != StatusKingCaptured {
		t.Fatalf("expected king_captured status, got %s", eng.Status())
	}
	if eng.Winner() != Player1 {
		t.Fatalf("expected Player 1 to win, got %s", eng.Winner())
	}
	if eng.Turn() != Player1 {
		t.Fatalf("expected turn to stay with the capturer, got %s", eng.Turn())
	}

	var msg string
	for _, ev := range notified {
		if ev.Kind == EventKingCaptured {
			msg = ev.Message
		}
	}
	if msg != "Player 1 captured the King! Game over." {
		t.Fatalf("unexpected game-over message %q", msg)
	}

	frozen := eng.State()
	for _, p := range []Player{Player1, Player2} {
		if _, err := eng.AttemptPlacement(0, 0, Two, p); !errors.Is(err, ErrGameOver) {
			t.Fatalf("expected ErrGameOver for %s, got %v", p, err)
		}
		if _, err := eng.AttemptPlacement(8, 8, Ace, p); !errors.Is(err, ErrGameOver) {
			t.Fatalf("expected ErrGameOver for Ace by %s, got %v", p, err)
		}
		if _, err := eng.Pass(p); !errors.Is(err, ErrGameOver) {
			t.Fatalf("expected ErrGameOver on pass, got %v", err)
		}
	}
	if diff := cmp.Diff(frozen, eng.State()); diff != "" {
		t.Fatalf("state changed after game over (-want +got):\n%s", diff)
	}
	if got := eng.LegalPlacements(Player1); len(got) != 0 {
		t.Fatalf("expected no legal placements after game over, got %d", len(got))
	}
}

func TestScenarioKingUpgradesAce(t *testing.T) {
	eng := newTestEngine(t)

	mustPlace(t, eng, 1, 1, Ace)
	if got := eng.Score(Player1); got != 1 {
		t.Fatalf("expected lone Ace worth 1, got %d", got)
	}
	mustPlace(t, eng, 8, 8, Two)

	res := mustPlace(t, eng, 1, 5, King)
	if got := eng.Score(Player1); got != 1+50+10 {
		t.Fatalf("expected 61 after King upgrade, got %d", got)
	}
	var upgrades int
	for _, ev := range res.Events {
		if ev.Kind == EventAceUpgraded {
			upgrades++
			if ev.Value != 10 || ev.Region != "row" {
				t.Fatalf("unexpected upgrade event %+v", ev)
			}
		}
	}
	if upgrades != 1 {
		t.Fatalf("expected one upgrade, got %d", upgrades)
	}
}

func TestKingUpgradesAceOncePerSharedRegion(t *testing.T) {
	eng := newTestEngine(t)
	put(t, eng, 0, 0, Ace, Player1)
	before := eng.Score(Player1)

	// (0,2) shares the row and the square with (0,0).
	mustPlace(t, eng, 0, 2, King)
	if got := eng.Score(Player1) - before; got != 50+20 {
		t.Fatalf("expected +70, got %+d", got)
	}
}

func TestKingDoesNotUpgradeOpponentAces(t *testing.T) {
	eng := newTestEngine(t)
	put(t, eng, 0, 8, Ace, Player2)
	before2 := eng.Score(Player2)

	mustPlace(t, eng, 0, 0, King)
	if eng.Score(Player2) != before2 {
		t.Fatalf("expected opponent Ace valuation to stay, score %d -> %d", before2, eng.Score(Player2))
	}
}

func TestAceUpgradeLoggedOnlyWhenAcesChange(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	eng := newTestEngine(t, WithLogger(zap.New(core)))

	mustPlace(t, eng, 0, 0, King)
	if got := logs.FilterMessage("aces upgraded").Len(); got != 0 {
		t.Fatalf("expected no upgrade log without Aces, got %d", got)
	}

	put(t, eng, 8, 0, Ace, Player2)
	mustPlace(t, eng, 8, 8, King)
	entries := logs.FilterMessage("aces upgraded").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 upgrade log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["upgrades"]; got != int64(1) {
		t.Fatalf("expected upgrades=1, got %v", got)
	}
}

func TestAcePlacedNearKingScoresEleven(t *testing.T) {
	eng := newTestEngine(t)
	put(t, eng, 6, 6, King, Player2)

	mustPlace(t, eng, 6, 0, Ace)
	if got := eng.Score(Player1); got != 11 {
		t.Fatalf("expected Ace beside a King to score 11, got %d", got)
	}
}

func TestAttemptPlacementRejections(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*testing.T, *Engine)
		row    int
		col    int
		piece  PieceType
		player Player
		want   error
	}{
		{name: "wrong player", row: 0, col: 0, piece: Two, player: Player2, want: ErrNotYourTurn},
		{name: "out of bounds", row: 9, col: 0, piece: Two, player: Player1, want: ErrOutOfBounds},
		{name: "negative column", row: 0, col: -1, piece: Ace, player: Player1, want: ErrOutOfBounds},
		{name: "unknown piece", row: 0, col: 0, piece: PieceNone, player: Player1, want: ErrUnknownPiece},
		{name: "deadzone", row: 4, col: 4, piece: Two, player: Player1, want: ErrInvalidMove},
		{
			name: "exhausted",
			setup: func(t *testing.T, e *Engine) {
				e.inventory[Player1.Index()][Queen] = 0
			},
			row: 0, col: 0, piece: Queen, player: Player1, want: ErrPieceExhausted,
		},
		{
			name: "duplicate digit",
			setup: func(t *testing.T, e *Engine) {
				put(t, e, 0, 8, Seven, Player2)
			},
			row: 0, col: 0, piece: Seven, player: Player1, want: ErrInvalidMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(t)
			if tt.setup != nil {
				tt.setup(t, eng)
			}
			before := eng.State()
			_, err := eng.AttemptPlacement(tt.row, tt.col, tt.piece, tt.player)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if diff := cmp.Diff(before, eng.State()); diff != "" {
				t.Fatalf("rejected attempt mutated state (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInventoryDecrementsUntilExhausted(t *testing.T) {
	eng := newTestEngine(t)
	mustPlace(t, eng, 0, 0, Ace)
	mustPlace(t, eng, 8, 8, Two)
	mustPlace(t, eng, 0, 1, Ace)
	mustPlace(t, eng, 8, 7, Three)

	if got := eng.Inventory(Player1).Count(Ace); got != 0 {
		t.Fatalf("expected no Aces left, got %d", got)
	}
	if _, err := eng.AttemptPlacement(0, 2, Ace, Player1); !errors.Is(err, ErrPieceExhausted) {
		t.Fatalf("expected ErrPieceExhausted, got %v", err)
	}
}

func TestAceOverwriteDebitsDisplacedOwner(t *testing.T) {
	eng := newTestEngine(t)
	put(t, eng, 0, 0, Eight, Player2)

	res := mustPlace(t, eng, 0, 0, Ace)

	if got := eng.CellAt(0, 0); got.Piece != Ace || got.Owner != Player1 {
		t.Fatalf("expected Player 1 Ace at (0,0), got %+v", got)
	}
	if got := eng.Score(Player2); got != 0 {
		t.Fatalf("expected displaced 8 removed from Player 2, score %d", got)
	}
	if got := eng.Score(Player1); got != 1 {
		t.Fatalf("expected Ace worth 1, got %d", got)
	}
	if res.Events[0].Kind != EventOverwritten || res.Events[0].Victim != Player2 || res.Events[0].Value != 8 {
		t.Fatalf("expected overwrite event first, got %+v", res.Events[0])
	}
}

func TestAceOverwritingKingKeepsGameGoing(t *testing.T) {
	eng := newTestEngine(t)
	put(t, eng, 0, 5, King, Player2)
	mustPlace(t, eng, 0, 0, Ace)
	mustPlace(t, eng, 8, 8, Two)
	if got := eng.Score(Player1); got != 11 {
		t.Fatalf("expected Ace beside the King to score 11, got %d", got)
	}

	res := mustPlace(t, eng, 0, 5, Ace)

	type step struct {
		Kind   EventKind
		Piece  PieceType
		Victim Player
		Value  int
	}
	var got []step
	for _, ev := range res.Events {
		got = append(got, step{Kind: ev.Kind, Piece: ev.Piece, Victim: ev.Victim, Value: ev.Value})
	}
	want := []step{
		{Kind: EventOverwritten, Piece: King, Victim: Player2, Value: KingValue},
		{Kind: EventPlaced, Piece: Ace, Value: AceBaseValue},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
	if res.Ended || eng.Ended() || eng.Status() != StatusOngoing {
		t.Fatalf("overwriting a King must not end the game, status %s", eng.Status())
	}
	// The first Ace keeps the 11 it was credited while the King stood.
	if got := eng.Score(Player1); got != 12 {
		t.Fatalf("expected Player 1 score 12, got %d", got)
	}
	if got := eng.Score(Player2); got != 2 {
		t.Fatalf("expected Player 2 score 2, got %d", got)
	}
	if got := eng.valueAt(Coord{Row: 0, Col: 0}); got != AceBaseValue {
		t.Fatalf("expected first Ace now worth %d on the board, got %d", AceBaseValue, got)
	}
}

func TestAceOnDeadzoneKeepsMarkerAndIsNotCaptured(t *testing.T) {
	eng := newTestEngine(t)
	mustPlace(t, eng, 4, 4, Ace)

	cell := eng.CellAt(4, 4)
	if !cell.Deadzone || cell.Piece != Ace || cell.Owner != Player1 {
		t.Fatalf("expected Player 1 Ace on the deadzone, got %+v", cell)
	}

	res := mustPlace(t, eng, 3, 3, King)
	for _, ev := range res.Captures() {
		if ev.Coord == testDeadzone {
			t.Fatalf("deadzone Ace must not be captured")
		}
	}
	if eng.CellAt(4, 4).Owner != Player1 {
		t.Fatalf("deadzone Ace changed hands")
	}
}

func TestPassOnlyWithoutLegalPlacement(t *testing.T) {
	eng := newTestEngine(t)
	if _, err := eng.Pass(Player1); !errors.Is(err, ErrPassDenied) {
		t.Fatalf("expected ErrPassDenied, got %v", err)
	}
	if _, err := eng.Pass(Player2); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	eng.inventory[Player1.Index()] = Inventory{}
	eng.inventory[Player2.Index()] = Inventory{}
	put(t, eng, 0, 0, Eight, Player1)

	res, err := eng.Pass(Player1)
	if err != nil {
		t.Fatalf("pass: %v", err)
	}
	if res.Ended || eng.Turn() != Player2 {
		t.Fatalf("expected one pass to hand over the turn")
	}
	res, err = eng.Pass(Player2)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if !res.Ended || eng.Status() != StatusStalemate {
		t.Fatalf("expected stalemate, got %s", eng.Status())
	}
	if eng.Winner() != Player1 {
		t.Fatalf("expected Player 1 to win on points, got %s", eng.Winner())
	}
}

func TestPlacementResetsPassCount(t *testing.T) {
	eng := newTestEngine(t)
	eng.inventory[Player1.Index()] = Inventory{}
	if _, err := eng.Pass(Player1); err != nil {
		t.Fatalf("pass: %v", err)
	}
	mustPlace(t, eng, 0, 0, Two)
	if eng.passes != 0 {
		t.Fatalf("expected pass count reset, got %d", eng.passes)
	}
	if _, err := eng.Pass(Player1); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if eng.Ended() {
		t.Fatalf("non-consecutive passes must not end the game")
	}
}

func TestResetStartsFreshGame(t *testing.T) {
	eng := newTestEngine(t)
	mustPlace(t, eng, 0, 0, Five)
	oldID := eng.ID()

	if err := eng.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if eng.ID() == oldID {
		t.Fatalf("expected new game id after reset")
	}
	if eng.CellAt(0, 0).Occupied() || eng.Score(Player1) != 0 || eng.Turn() != Player1 {
		t.Fatalf("expected clean board after reset")
	}
	if eng.State().LastNote != "New game" {
		t.Fatalf("expected new game note, got %q", eng.State().LastNote)
	}
}
