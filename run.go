package mage

import (
	"fmt"
	"time"

	"github.com/gogpu/gogpu"

	"github.com/magekit/mage/internal/gpu"
)

// Run opens a window and drives game until it returns Stop, the user
// presses Escape, or the window is closed. It blocks until shutdown
// and must be called from the main goroutine.
//
// Each frame the engine sizes the grid to the window, calls Tick with
// the elapsed time and pending input, calls Present with the grid, and
// composites the grid to the surface on the GPU.
func Run(game Game, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	font := o.font
	if font == nil {
		font = DefaultFont()
	}
	cellW, cellH := font.CellSize()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(o.title).
		WithSize(o.width*cellW, o.height*cellH).
		WithContinuousRender(true))

	var (
		renderer *gpu.Renderer
		grid     = NewGrid(o.width, o.height)
		pending  KeyState
		stopping bool
		lastTick time.Time
		frame    int
	)

	app.EventSource().OnKeyPress(func(key Key, mods Mod) {
		if key == KeyEscape {
			stopping = true
			return
		}
		// One press per tick; a newer press replaces an undelivered one.
		pending = KeyState{Pressed: true, Key: key, Mods: mods}
	})

	app.OnDraw(func(dc *gogpu.Context) {
		if stopping {
			requestShutdown(app)
			return
		}
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if renderer == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			aw, ah := font.AtlasSize()
			r, err := gpu.NewRenderer(provider, gpu.FontSpec{
				CellW:  uint32(cellW),
				CellH:  uint32(cellH),
				AtlasW: uint32(aw),
				AtlasH: uint32(ah),
				Texels: font.Atlas(),
			})
			if err != nil {
				Logger().Warn("mage: renderer init failed", "error", err)
				stopping = true
				return
			}
			renderer = r
			Logger().Info("mage: renderer ready", "backend", dc.Backend())
		}

		cols := max(w/cellW, 1)
		rows := max(h/cellH, 1)
		grid.resize(cols, rows)

		now := time.Now()
		var dt time.Duration
		if frame > 0 {
			dt = now.Sub(lastTick)
		}
		lastTick = now
		frame++

		result := game.Tick(SimInput{
			DT:     dt,
			Width:  cols,
			Height: rows,
			Key:    pending,
		})
		pending = KeyState{}
		if result == Stop {
			stopping = true
		}

		game.Present(&PresentInput{Grid: grid})

		err := renderer.RenderGrid(dc.SurfaceView(), gpu.GridFrame{
			Cols: uint32(cols),
			Rows: uint32(rows),
			Fore: grid.Fore(),
			Back: grid.Back(),
			Text: grid.Text(),
		})
		if err != nil {
			Logger().Warn("mage: frame dropped", "error", err)
		}

		if stopping {
			requestShutdown(app)
		}
	})

	app.OnClose(func() {
		if renderer != nil {
			renderer.Destroy()
			renderer = nil
		}
	})

	game.Start()
	if err := app.Run(); err != nil {
		return fmt.Errorf("mage: %w", err)
	}
	return nil
}

// requestShutdown asks the windowing layer to exit its run loop. The
// entry point has moved between gogpu releases, so probe the ones that
// have existed.
func requestShutdown(app any) {
	switch a := app.(type) {
	case interface{ Close() }:
		a.Close()
	case interface{ Quit() }:
		a.Quit()
	case interface{ Stop() }:
		a.Stop()
	}
}
