package mage

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.title != "mage window" {
		t.Errorf("title = %q, want %q", o.title, "mage window")
	}
	if o.width != 100 || o.height != 100 {
		t.Errorf("size = %dx%d, want 100x100", o.width, o.height)
	}
	if o.font != nil {
		t.Error("font should default to nil (baked lazily)")
	}
}

func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	f := DefaultFont()
	for _, opt := range []Option{
		WithTitle("dungeon"),
		WithInnerSize(80, 25),
		WithFont(f),
	} {
		opt(&o)
	}
	if o.title != "dungeon" || o.width != 80 || o.height != 25 || o.font != f {
		t.Errorf("options = %+v, not applied", o)
	}
}

func TestWithInnerSizeClamps(t *testing.T) {
	o := defaultOptions()
	WithInnerSize(0, -3)(&o)
	if o.width != 1 || o.height != 1 {
		t.Errorf("size = %dx%d, want 1x1", o.width, o.height)
	}
}
