package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// newOffscreenTarget creates a BGRA8 render-attachment texture to draw
// into when no surface exists.
func newOffscreenTarget(t *testing.T, r *Renderer, w, h uint32) (hal.Texture, hal.TextureView) {
	t.Helper()
	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "test_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.Fatalf("create target texture: %v", err)
	}
	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "test_target_view",
	})
	if err != nil {
		r.device.DestroyTexture(tex)
		t.Fatalf("create target view: %v", err)
	}
	return tex, view
}

// testFont is a tiny 2x2-cell atlas: glyph 1 fully inked, the rest blank.
func testFont() FontSpec {
	texels := make([]uint32, 32*32)
	for y := 0; y < 2; y++ {
		for x := 2; x < 4; x++ {
			texels[y*32+x] = 1
		}
	}
	return FontSpec{CellW: 2, CellH: 2, AtlasW: 32, AtlasH: 32, Texels: texels}
}

// TestStandaloneDebugQuad opens a headless device and draws the debug
// pipeline, which exercises the whole encode/submit path with nothing
// bound.
func TestStandaloneDebugQuad(t *testing.T) {
	r, err := NewStandaloneRenderer(testFont())
	if err != nil {
		t.Skipf("GPU not available: %v (expected in CI/test environments)", err)
	}
	defer r.Destroy()

	tex, view := newOffscreenTarget(t, r, 64, 64)
	defer r.device.DestroyTexture(tex)
	defer r.device.DestroyTextureView(view)

	if err := r.RenderDebug(view); err != nil {
		t.Fatalf("RenderDebug: %v", err)
	}
}

// TestStandaloneGridFrame draws a real grid frame headlessly, including
// a resize between frames.
func TestStandaloneGridFrame(t *testing.T) {
	r, err := NewStandaloneRenderer(testFont())
	if err != nil {
		t.Skipf("GPU not available: %v (expected in CI/test environments)", err)
	}
	defer r.Destroy()

	tex, view := newOffscreenTarget(t, r, 64, 64)
	defer r.device.DestroyTexture(tex)
	defer r.device.DestroyTextureView(view)

	frame := GridFrame{
		Cols: 3, Rows: 2,
		Fore: []uint32{0xff00ff00, 0, 0, 0, 0, 0},
		Back: []uint32{0xff000000, 0, 0, 0, 0, 0},
		Text: []uint32{1, 0, 0, 0, 0, 0},
	}
	if err := r.RenderGrid(view, frame); err != nil {
		t.Fatalf("RenderGrid: %v", err)
	}

	// Growing the grid recreates the planes and bind group.
	frame = GridFrame{
		Cols: 4, Rows: 4,
		Fore: make([]uint32, 16),
		Back: make([]uint32, 16),
		Text: make([]uint32, 16),
	}
	if err := r.RenderGrid(view, frame); err != nil {
		t.Fatalf("RenderGrid after resize: %v", err)
	}
}

func TestRenderGridRejectsBadFrames(t *testing.T) {
	r, err := NewStandaloneRenderer(testFont())
	if err != nil {
		t.Skipf("GPU not available: %v (expected in CI/test environments)", err)
	}
	defer r.Destroy()

	tex, view := newOffscreenTarget(t, r, 8, 8)
	defer r.device.DestroyTexture(tex)
	defer r.device.DestroyTextureView(view)

	if err := r.RenderGrid(view, GridFrame{}); err == nil {
		t.Error("empty frame should be rejected")
	}
	short := GridFrame{Cols: 2, Rows: 2, Fore: make([]uint32, 1), Back: make([]uint32, 4), Text: make([]uint32, 4)}
	if err := r.RenderGrid(view, short); err == nil {
		t.Error("short plane should be rejected")
	}
	if err := r.RenderGrid(struct{}{}, GridFrame{Cols: 1, Rows: 1, Fore: []uint32{0}, Back: []uint32{0}, Text: []uint32{0}}); err == nil {
		t.Error("non-view target should be rejected")
	}
}
