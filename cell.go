package mage

// Reference implementation of the two fixed-function stages. The WGSL
// shaders in internal/gpu apply exactly these rules per vertex and per
// pixel; the software Compositor and the tests share this code so all
// three stay in lockstep.

// QuadCorner maps a vertex index in 0..3 to one corner of the fullscreen
// quad: a clip-space position and the corner's debug color.
//
// The x axis comes from bit 1 of the index and the y axis from bit 0, so
// the strip order is (-1,-1), (-1,1), (1,-1), (1,1). This is not the
// natural binary ordering; it keeps the winding of the two strip
// triangles consistent, and the shader preserves the same bit
// extraction. Depth is 0 and w is 1.
//
// The debug color carries the unmapped axis values (red=x, green=y,
// blue=0) so each corner is identifiable with no textures bound.
func QuadCorner(index uint32) (pos [4]float32, color [3]float32) {
	x := float32((index & 2) >> 1)
	y := float32(index & 1)
	pos = [4]float32{x*2 - 1, y*2 - 1, 0, 1}
	color = [3]float32{x, y, 0}
	return pos, color
}

// CellAt quantizes a window-space position to the cell containing it.
// cellW and cellH are the font cell dimensions in pixels and must be
// non-zero; the renderer validates them before any draw is issued.
//
// The position is first shifted by -0.5 on both axes: fragment positions
// arrive at pixel centers (x+0.5, y+0.5), and the shift restores integer
// pixel coordinates before division.
//
// Division truncates toward zero rather than flooring. For positions
// left of or above the shifted origin the two differ: (-4,8) with cell
// (8,16) is cell (0,0) under truncation but (-1,0) under floor. The
// truncation behavior is the contract (it is what the `vec2<i32>`
// conversion in the shader does) and is pinned by tests; an exactly
// sized grid never produces such positions, so the bias is unobservable
// in normal operation.
func CellAt(x, y float32, cellW, cellH uint32) (int32, int32) {
	sx := x - 0.5
	sy := y - 0.5
	return int32(sx / float32(cellW)), int32(sy / float32(cellH))
}

// cellPixel returns the pixel offset within cell (cx, cy) for the
// shifted position (sx, sy). Used by the software compositor to index
// the glyph atlas.
func cellPixel(sx, sy float32, cellW, cellH uint32, cx, cy int32) (int32, int32) {
	px := int32(sx) - cx*int32(cellW)
	py := int32(sy) - cy*int32(cellH)
	return px, py
}
