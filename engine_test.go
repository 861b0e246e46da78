package mage

import (
	"testing"
	"time"
)

// recordingGame tracks the engine contract: Start once, then
// Tick/Present pairs with the grid sized to the window.
type recordingGame struct {
	started  int
	ticks    []SimInput
	presents int
	stopAt   int
	drawn    byte
}

func (g *recordingGame) Start() { g.started++ }

func (g *recordingGame) Tick(input SimInput) TickResult {
	g.ticks = append(g.ticks, input)
	if g.stopAt > 0 && len(g.ticks) >= g.stopAt {
		return Stop
	}
	return Continue
}

func (g *recordingGame) Present(p *PresentInput) {
	g.presents++
	p.Grid.Set(Pt(0, 0), NewChar(g.drawn, Green, Black))
}

// driveFrames runs the tick/present cycle the way the draw loop does,
// minus the window: size the grid, tick, present, composite.
func driveFrames(t *testing.T, game Game, grid *Grid, c *Compositor, frames int) *Pixmap {
	t.Helper()
	cw, ch := c.Font().CellSize()
	dst := NewPixmap(grid.Width()*cw, grid.Height()*ch)
	var pending KeyState
	for i := 0; i < frames; i++ {
		result := game.Tick(SimInput{
			DT:     16 * time.Millisecond,
			Width:  grid.Width(),
			Height: grid.Height(),
			Key:    pending,
		})
		pending = KeyState{}
		game.Present(&PresentInput{Grid: grid})
		c.Render(grid, dst)
		if result == Stop {
			break
		}
	}
	return dst
}

func TestEngineContract(t *testing.T) {
	game := &recordingGame{stopAt: 3, drawn: 'X'}
	game.Start()
	if game.started != 1 {
		t.Fatalf("started = %d, want 1", game.started)
	}

	grid := NewGrid(10, 4)
	c := NewCompositor(nil)
	dst := driveFrames(t, game, grid, c, 10)

	if len(game.ticks) != 3 {
		t.Errorf("ticks = %d, want 3 (stopped)", len(game.ticks))
	}
	if game.presents != 3 {
		t.Errorf("presents = %d, want 3", game.presents)
	}
	for _, in := range game.ticks {
		if in.Width != 10 || in.Height != 4 {
			t.Errorf("tick saw %dx%d, want 10x4", in.Width, in.Height)
		}
	}

	// The presented glyph reached the output: cell (0,0) contains ink
	// pixels in the game's color.
	cw, ch := c.Font().CellSize()
	sawInk := false
	for y := 0; y < ch && !sawInk; y++ {
		for x := 0; x < cw; x++ {
			if dst.GetPixel(x, y) == Green {
				sawInk = true
				break
			}
		}
	}
	if !sawInk {
		t.Error("presented glyph did not reach the composited output")
	}
}

func TestEngineGridResizeBetweenFrames(t *testing.T) {
	game := &recordingGame{drawn: '@'}
	grid := NewGrid(6, 3)
	c := NewCompositor(nil)
	driveFrames(t, game, grid, c, 1)

	// The window grew; the next frame sees the larger grid.
	grid.resize(8, 5)
	driveFrames(t, game, grid, c, 1)

	last := game.ticks[len(game.ticks)-1]
	if last.Width != 8 || last.Height != 5 {
		t.Errorf("tick after resize saw %dx%d, want 8x5", last.Width, last.Height)
	}
	if grid.Width() != 8 || grid.Height() != 5 {
		t.Errorf("grid = %dx%d, want 8x5", grid.Width(), grid.Height())
	}
}
