package mage

import (
	"time"

	"github.com/gogpu/gpucontext"
)

// Key identifies a keyboard key as reported by the windowing layer.
type Key = gpucontext.Key

// Mod is a set of modifier keys held during an event.
type Mod = gpucontext.Modifiers

// Re-exported keys the engine itself reacts to. Games match against
// the full gpucontext key set.
const (
	KeySpace  = gpucontext.KeySpace
	KeyEscape = gpucontext.KeyEscape
)

// KeyState is the key event delivered with a simulation tick. At most
// one press is reported per tick; Pressed is false when no key event
// arrived since the previous tick.
type KeyState struct {
	Pressed bool
	Key     Key
	Mods    Mod
}

// MouseState is the pointer state delivered with a simulation tick.
// Cell holds the grid cell under the pointer.
type MouseState struct {
	Cell    Point
	Left    bool
	Right   bool
	Visible bool
}

// SimInput carries everything a game sees during one tick.
type SimInput struct {
	// DT is the wall-clock time since the previous tick.
	DT time.Duration
	// Width and Height are the current grid size in cells. They track
	// the window size, so games should treat them as per-tick values.
	Width  int
	Height int
	Key    KeyState
	Mouse  MouseState
}

// PresentInput gives a game the grid to draw into. The grid is already
// sized to the window; its contents persist between frames, so games
// that want a blank slate call Clear first.
type PresentInput struct {
	Grid *Grid
}

// TickResult tells the engine whether to keep running.
type TickResult int

const (
	// Continue keeps the loop running.
	Continue TickResult = iota
	// Stop shuts the engine down after the current frame.
	Stop
)

// Game is the interface a program hands to Run. Start is called once
// before the window opens; Tick advances the simulation once per
// frame; Present draws the current state into the grid.
type Game interface {
	Start()
	Tick(input SimInput) TickResult
	Present(p *PresentInput)
}
