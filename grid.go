package mage

// Point is an integer cell coordinate. Negative values are legal inputs
// to the draw helpers and are clipped away.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Char is a single cell: a glyph index plus ink (foreground) and paper
// (background) colors.
type Char struct {
	Glyph uint8
	Ink   uint32
	Paper uint32
}

// NewChar builds a Char from a glyph byte and two packed colors.
func NewChar(glyph byte, ink, paper uint32) Char {
	return Char{Glyph: glyph, Ink: ink, Paper: paper}
}

// Grid is a rectangular text surface: three parallel planes holding one
// ink color, one paper color, and one glyph index per cell, in row-major
// order. The planes are exactly what the renderer uploads as the
// foreground, background, and text lookup textures.
//
// Grid is not safe for concurrent use; the run loop hands it to exactly
// one Present call per frame.
type Grid struct {
	width  int
	height int
	fore   []uint32
	back   []uint32
	text   []uint32
}

// NewGrid creates a grid of width x height cells, cleared to black on black.
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g := &Grid{
		width:  width,
		height: height,
		fore:   make([]uint32, width*height),
		back:   make([]uint32, width*height),
		text:   make([]uint32, width*height),
	}
	g.Clear(White, Black)
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Fore returns the foreground color plane (row-major, 0xAABBGGRR).
func (g *Grid) Fore() []uint32 { return g.fore }

// Back returns the background color plane (row-major, 0xAABBGGRR).
func (g *Grid) Back() []uint32 { return g.back }

// Text returns the glyph plane (row-major, glyph index in the low byte).
func (g *Grid) Text() []uint32 { return g.text }

// Index converts a cell coordinate to a plane index. The second return
// is false when the coordinate lies outside the grid.
func (g *Grid) Index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, false
	}
	return y*g.width + x, true
}

// clip intersects the rectangle at p of size w x h with the grid,
// returning the in-bounds origin and dimensions. A fully clipped
// rectangle yields zero width or height.
func (g *Grid) clip(p Point, w, h int) (x, y, cw, ch int) {
	x, y = p.X, p.Y
	cw, ch = w, h
	if x < 0 {
		cw += x
		x = 0
	}
	if y < 0 {
		ch += y
		y = 0
	}
	if x+cw > g.width {
		cw = g.width - x
	}
	if y+ch > g.height {
		ch = g.height - y
	}
	if cw < 0 {
		cw = 0
	}
	if ch < 0 {
		ch = 0
	}
	return x, y, cw, ch
}

// Clear fills the whole grid with spaces in the given colors.
func (g *Grid) Clear(ink, paper uint32) {
	g.DrawRectFilled(Pt(0, 0), g.width, g.height, NewChar(' ', ink, paper))
}

// Set writes a single cell. Out-of-bounds coordinates are ignored.
func (g *Grid) Set(p Point, ch Char) {
	if i, ok := g.Index(p.X, p.Y); ok {
		g.fore[i] = ch.Ink
		g.back[i] = ch.Paper
		g.text[i] = uint32(ch.Glyph)
	}
}

// DrawString writes a one-row string starting at p, clipped to the grid.
// Characters that start left of the grid are dropped, not shifted.
func (g *Grid) DrawString(p Point, s string, ink, paper uint32) {
	x, y, w, _ := g.clip(p, len(s), 1)
	if w <= 0 {
		return
	}
	i, ok := g.Index(x, y)
	if !ok {
		return
	}
	// clip may have advanced x past the string start.
	skip := x - p.X
	for j := 0; j < w; j++ {
		g.fore[i+j] = ink
		g.back[i+j] = paper
		g.text[i+j] = uint32(s[skip+j])
	}
}

// DrawRect draws the outline of a w x h rectangle at p. Rectangles too
// small to have an interior are drawn filled.
func (g *Grid) DrawRect(p Point, w, h int, ch Char) {
	if w < 3 || h < 3 {
		g.DrawRectFilled(p, w, h, ch)
		return
	}
	g.DrawRectFilled(p, w, 1, ch)
	g.DrawRectFilled(Pt(p.X, p.Y+h-1), w, 1, ch)
	g.DrawRectFilled(Pt(p.X, p.Y+1), 1, h-2, ch)
	g.DrawRectFilled(Pt(p.X+w-1, p.Y+1), 1, h-2, ch)
}

// DrawRectFilled fills a w x h rectangle at p, clipped to the grid.
func (g *Grid) DrawRectFilled(p Point, w, h int, ch Char) {
	x, y, cw, chh := g.clip(p, w, h)
	if cw <= 0 || chh <= 0 {
		return
	}
	i, ok := g.Index(x, y)
	if !ok {
		return
	}
	glyph := uint32(ch.Glyph)
	for row := 0; row < chh; row++ {
		for col := 0; col < cw; col++ {
			g.fore[i+col] = ch.Ink
			g.back[i+col] = ch.Paper
			g.text[i+col] = glyph
		}
		i += g.width
	}
}

// resize reallocates the planes for a new cell size, discarding content.
// Used by the run loop when the window size changes.
func (g *Grid) resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g.width = width
	g.height = height
	g.fore = make([]uint32, width*height)
	g.back = make([]uint32, width*height)
	g.text = make([]uint32, width*height)
	g.Clear(White, Black)
}
