package mage

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// atlasCols is the number of glyph cells per atlas row. The atlas holds
// all 256 glyph values as a 16x16 grid of cells, so a glyph's cell is
// (glyph%16, glyph/16).
const atlasCols = 16

// Font is a baked monospace glyph atlas. Each of the 256 glyph values
// occupies one fixed-size cell; a texel is 1 where the glyph has ink
// and 0 elsewhere. The same atlas feeds both the GPU path (uploaded as
// an integer texture) and the software Compositor.
type Font struct {
	cellW int
	cellH int
	atlas []uint32 // (atlasCols*cellW) x (atlasCols*cellH), row-major
}

// NewFont bakes a glyph atlas from face at the given cell size. Each
// glyph is rendered into its own cell; anything outside the cell is
// clipped, so oversized glyphs cannot bleed into their neighbors.
// Glyphs the face does not cover are left blank. The face is only read
// during baking and may be closed afterwards.
func NewFont(face font.Face, cellW, cellH int) (*Font, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: cell size %dx%d", ErrInvalidFont, cellW, cellH)
	}

	scratch := image.NewAlpha(image.Rect(0, 0, cellW, cellH))
	ascent := face.Metrics().Ascent
	d := font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(color.Alpha{A: 0xff}),
		Face: face,
	}

	aw := atlasCols * cellW
	atlas := make([]uint32, aw*atlasCols*cellH)
	for g := 0; g < 256; g++ {
		r := rune(g)
		if _, ok := face.GlyphAdvance(r); !ok {
			continue
		}
		clear(scratch.Pix)
		d.Dot = fixed.Point26_6{X: 0, Y: ascent}
		d.DrawString(string(r))

		ox := (g % atlasCols) * cellW
		oy := (g / atlasCols) * cellH
		for y := 0; y < cellH; y++ {
			row := scratch.Pix[y*scratch.Stride:]
			for x := 0; x < cellW; x++ {
				if row[x] >= 0x80 {
					atlas[(oy+y)*aw+ox+x] = 1
				}
			}
		}
	}
	return &Font{cellW: cellW, cellH: cellH, atlas: atlas}, nil
}

// DefaultFont returns a font baked from the builtin 7x13 bitmap face.
// It never fails; the face is compiled in.
func DefaultFont() *Font {
	f, err := NewFont(basicfont.Face7x13, 7, 13)
	if err != nil {
		panic("mage: baking builtin font: " + err.Error())
	}
	return f
}

// CellSize returns the glyph cell dimensions in pixels.
func (f *Font) CellSize() (w, h int) { return f.cellW, f.cellH }

// AtlasSize returns the full atlas dimensions in pixels.
func (f *Font) AtlasSize() (w, h int) {
	return atlasCols * f.cellW, atlasCols * f.cellH
}

// Atlas returns the backing texel slice, row-major, one uint32 per
// pixel with value 0 or 1. The slice is shared, not copied.
func (f *Font) Atlas() []uint32 { return f.atlas }

// coverage reports whether glyph has ink at pixel (x, y) of its cell.
// Out-of-cell coordinates are uncovered.
func (f *Font) coverage(glyph uint8, x, y int32) bool {
	if x < 0 || y < 0 || x >= int32(f.cellW) || y >= int32(f.cellH) {
		return false
	}
	col := int32(glyph) % atlasCols
	row := int32(glyph) / atlasCols
	aw := int32(atlasCols * f.cellW)
	ax := col*int32(f.cellW) + x
	ay := row*int32(f.cellH) + y
	return f.atlas[ay*aw+ax] != 0
}
