package mage

// Cell colors are packed 32-bit values in 0xAABBGGRR layout: red in the
// low byte, alpha in the high byte. This is the exact format the cell
// compositor shader unpacks, so grid planes upload to the GPU without
// conversion.

// NewColor packs an RGB triple into a fully opaque cell color.
func NewColor(r, g, b uint8) uint32 {
	return 0xff000000 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// NewColorA packs an RGBA quad into a cell color. The compositor forces
// alpha to fully opaque on output, but the channel is carried so future
// blending stages can use it.
func NewColorA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// ColorRGBA unpacks a packed cell color into its channels.
func ColorRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// The classic 8-color palette.
const (
	Black   uint32 = 0xff000000
	Red     uint32 = 0xff0000ff
	Green   uint32 = 0xff00ff00
	Yellow  uint32 = 0xff00ffff
	Blue    uint32 = 0xffff0000
	Magenta uint32 = 0xffff00ff
	Cyan    uint32 = 0xffffff00
	White   uint32 = 0xffffffff
)
