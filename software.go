package mage

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular RGBA pixel buffer. It is the target of the
// software Compositor and converts to the standard image types for
// inspection or saving.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
}

// NewPixmap creates a pixmap with the given dimensions, cleared to
// transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets a single pixel from a packed color.
func (p *Pixmap) SetPixel(x, y int, c uint32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(c)
	p.data[i+1] = uint8(c >> 8)
	p.data[i+2] = uint8(c >> 16)
	p.data[i+3] = uint8(c >> 24)
}

// GetPixel returns a single pixel as a packed color.
func (p *Pixmap) GetPixel(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	i := (y*p.width + x) * 4
	return uint32(p.data[i+0]) |
		uint32(p.data[i+1])<<8 |
		uint32(p.data[i+2])<<16 |
		uint32(p.data[i+3])<<24
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.GetPixel(x, y)
	r, g, b, a := ColorRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Compositor renders a Grid to a Pixmap on the CPU with the exact
// per-pixel rules the GPU fragment stage uses. It exists for headless
// output and as the reference the shader path is held to.
type Compositor struct {
	font *Font
}

// NewCompositor creates a compositor using the given font, or the
// builtin font when font is nil.
func NewCompositor(font *Font) *Compositor {
	if font == nil {
		font = DefaultFont()
	}
	return &Compositor{font: font}
}

// Font returns the compositor's font.
func (c *Compositor) Font() *Font { return c.font }

// Render composites g into dst. Every destination pixel is sampled at
// its center, quantized to a cell, and painted with the cell's ink
// color where the glyph has coverage and its paper color elsewhere.
// Pixels that quantize outside the grid clamp to the nearest edge
// cell. Output alpha is always opaque regardless of the alpha stored
// in the grid colors.
func (c *Compositor) Render(g *Grid, dst *Pixmap) {
	cw, ch := c.font.CellSize()
	cellW, cellH := uint32(cw), uint32(ch)
	for py := 0; py < dst.height; py++ {
		for px := 0; px < dst.width; px++ {
			fx := float32(px) + 0.5
			fy := float32(py) + 0.5
			cx, cy := CellAt(fx, fy, cellW, cellH)
			cx = clampInt32(cx, 0, int32(g.Width())-1)
			cy = clampInt32(cy, 0, int32(g.Height())-1)

			i := int(cy)*g.Width() + int(cx)
			glyph := uint8(g.Text()[i])
			gx, gy := cellPixel(fx-0.5, fy-0.5, cellW, cellH, cx, cy)

			var out uint32
			if c.font.coverage(glyph, gx, gy) {
				out = g.Fore()[i]
			} else {
				out = g.Back()[i]
			}
			dst.SetPixel(px, py, out|0xff000000)
		}
	}
}

// RenderDebug fills dst with the untextured debug gradient: red
// follows x rightward, green follows clip-space y, blue stays zero,
// alpha is opaque. Clip y points up while pixel rows count down, so
// green is brightest at the top row, exactly as the debug pipeline
// draws with no grid bound.
func (c *Compositor) RenderDebug(dst *Pixmap) {
	for py := 0; py < dst.height; py++ {
		for px := 0; px < dst.width; px++ {
			u := (float32(px) + 0.5) / float32(dst.width)
			v := 1 - (float32(py)+0.5)/float32(dst.height)
			dst.SetPixel(px, py, NewColor(uint8(u*255), uint8(v*255), 0))
		}
	}
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
