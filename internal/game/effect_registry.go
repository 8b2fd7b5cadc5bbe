package game

import (
	"errors"
	"fmt"
	"sync"
)

// CaptureEffect yields the cells a special piece attacks when placed at origin.
// Targets may include empty cells, the deadzone or friendly pieces; the
// engine filters those out when resolving captures.
type CaptureEffect interface {
	Targets(origin Coord) []Coord
}

// CaptureEffectFunc adapts a plain function to CaptureEffect.
type CaptureEffectFunc func(origin Coord) []Coord

func (f CaptureEffectFunc) Targets(origin Coord) []Coord { return f(origin) }

// EffectFactory constructs a CaptureEffect instance.
type EffectFactory func() CaptureEffect

var (
	effectsMu sync.RWMutex
	effects   map[PieceType]EffectFactory

	// ErrDuplicateEffect indicates a piece already has a capture effect.
	ErrDuplicateEffect = errors.New("game: capture effect already registered")
	// ErrNilEffectFactory indicates a registration attempt provided a nil constructor.
	ErrNilEffectFactory = errors.New("game: nil capture effect factory")
	// ErrEffectNotSpecial indicates an effect was registered for a numeric piece.
	ErrEffectNotSpecial = errors.New("game: capture effects require a special piece")
)

// RegisterCaptureEffect associates a special piece with its capture effect.
// It is safe for concurrent use.
func RegisterCaptureEffect(piece PieceType, ctor EffectFactory) error {
	if !piece.IsSpecial() {
		return fmt.Errorf("%w: %q", ErrEffectNotSpecial, piece.String())
	}
	if ctor == nil {
		return ErrNilEffectFactory
	}

	effectsMu.Lock()
	defer effectsMu.Unlock()
	if effects == nil {
		effects = make(map[PieceType]EffectFactory)
	}
	if _, exists := effects[piece]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEffect, piece)
	}
	effects[piece] = ctor
	return nil
}

func captureEffectFor(piece PieceType) (CaptureEffect, bool) {
	effectsMu.RLock()
	ctor := effects[piece]
	effectsMu.RUnlock()
	if ctor == nil {
		return nil, false
	}
	effect := ctor()
	if effect == nil {
		return nil, false
	}
	return effect, true
}
