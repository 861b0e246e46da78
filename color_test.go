package mage

import "testing"

func TestNewColor(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint32
	}{
		{name: "black", r: 0, g: 0, b: 0, want: 0xff000000},
		{name: "red", r: 255, g: 0, b: 0, want: 0xff0000ff},
		{name: "green", r: 0, g: 255, b: 0, want: 0xff00ff00},
		{name: "blue", r: 0, g: 0, b: 255, want: 0xffff0000},
		{name: "white", r: 255, g: 255, b: 255, want: 0xffffffff},
		{name: "mixed", r: 0x12, g: 0x34, b: 0x56, want: 0xff563412},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewColor(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("NewColor(%d, %d, %d) = %#08x, want %#08x",
					tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestPaletteMatchesNewColor(t *testing.T) {
	tests := []struct {
		name    string
		c       uint32
		r, g, b uint8
	}{
		{"Black", Black, 0, 0, 0},
		{"Red", Red, 255, 0, 0},
		{"Green", Green, 0, 255, 0},
		{"Yellow", Yellow, 255, 255, 0},
		{"Blue", Blue, 0, 0, 255},
		{"Magenta", Magenta, 255, 0, 255},
		{"Cyan", Cyan, 0, 255, 255},
		{"White", White, 255, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewColor(tt.r, tt.g, tt.b); got != tt.c {
				t.Errorf("palette %s = %#08x, NewColor gives %#08x", tt.name, tt.c, got)
			}
		})
	}
}

func TestColorRGBARoundTrip(t *testing.T) {
	c := NewColorA(0x12, 0x34, 0x56, 0x78)
	r, g, b, a := ColorRGBA(c)
	if r != 0x12 || g != 0x34 || b != 0x56 || a != 0x78 {
		t.Errorf("ColorRGBA(%#08x) = (%#02x, %#02x, %#02x, %#02x)", c, r, g, b, a)
	}
}
