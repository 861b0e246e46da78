// Package mage is a GPU-accelerated ASCII rendering engine.
//
// # Overview
//
// mage renders a grid of fixed-size text cells to a window using a single
// fullscreen-quad draw. Game code implements the [Game] interface and
// writes characters and colors into a [Grid]; the engine uploads the grid
// planes to the GPU every frame and composites them per pixel in a
// fragment shader.
//
// # Quick Start
//
//	type hello struct{}
//
//	func (hello) Start()                        {}
//	func (hello) Tick(mage.SimInput) mage.TickResult { return mage.Continue }
//	func (hello) Present(p *mage.PresentInput) {
//	    p.Grid.Clear(mage.White, mage.Black)
//	    p.Grid.DrawString(mage.Pt(1, 1), "Hello, World!", mage.Green, mage.Black)
//	}
//
//	func main() {
//	    if err := mage.Run(hello{}, mage.WithTitle("Hello")); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Game, Grid, Font, colors, options, Run
//   - Reference math: QuadCorner, CellAt (the exact mapping the shaders use)
//   - Software path: Compositor renders a Grid to a Pixmap on the CPU
//   - internal/gpu: wgpu render pipeline, grid textures, WGSL shaders
//
// # Coordinate System
//
// Cell (0,0) is the top-left of the window; columns increase right, rows
// increase down, matching framebuffer coordinates. Cell colors are packed
// 0xAABBGGRR, the format the fragment shader unpacks.
//
// # Rendering
//
// The GPU path draws one 4-vertex triangle strip covering the viewport and
// resolves every covered pixel to a cell lookup. The software path applies
// the identical per-pixel rule, for headless use and for tests.
package mage

// Version information
const (
	// Version is the current version of the engine
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
