package gpu

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// cellUniformSize is the byte size of the CellUniforms block: four u32
// fields, 16 bytes.
const cellUniformSize = 16

// packCellUniforms serializes the cell and grid dimensions for the
// uniform buffer, little-endian. The fragment stage clamps its cell
// lookup against the grid dimensions.
func packCellUniforms(cellW, cellH, cols, rows uint32) []byte {
	buf := make([]byte, cellUniformSize)
	binary.LittleEndian.PutUint32(buf[0:], cellW)
	binary.LittleEndian.PutUint32(buf[4:], cellH)
	binary.LittleEndian.PutUint32(buf[8:], cols)
	binary.LittleEndian.PutUint32(buf[12:], rows)
	return buf
}

// u32Bytes reslices uint32 texel data as little-endian bytes for
// texture upload.
func u32Bytes(data []uint32) []byte {
	buf := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}

// createPlane creates one R32Uint texture with a matching view.
func (r *Renderer) createPlane(label string, w, h uint32) (plane, error) {
	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatR32Uint,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return plane{}, fmt.Errorf("create %s texture: %w", label, err)
	}
	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        gputypes.TextureFormatR32Uint,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		r.device.DestroyTexture(tex)
		return plane{}, fmt.Errorf("create %s view: %w", label, err)
	}
	return plane{tex: tex, view: view, w: w, h: h}, nil
}

// uploadPlane writes texel data covering the whole plane.
func (r *Renderer) uploadPlane(p plane, texels []uint32) {
	r.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  p.tex,
			MipLevel: 0,
		},
		u32Bytes(texels),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  p.w * 4,
			RowsPerImage: p.h,
		},
		&hal.Extent3D{Width: p.w, Height: p.h, DepthOrArrayLayers: 1},
	)
}

func (r *Renderer) destroyPlane(p *plane) {
	if p.view != nil {
		r.device.DestroyTextureView(p.view)
		p.view = nil
	}
	if p.tex != nil {
		r.device.DestroyTexture(p.tex)
		p.tex = nil
	}
}

// ensureGridResources sizes the three grid planes and the bind group
// to the given cell dimensions, recreating them when the grid grows or
// shrinks.
func (r *Renderer) ensureGridResources(cols, rows uint32) error {
	if cols == r.cols && rows == r.rows && r.bindGroup != nil {
		return nil
	}
	r.destroyGridResources()
	r.queue.WriteBuffer(r.uniformBuf, 0, packCellUniforms(r.cellW, r.cellH, cols, rows))

	fore, err := r.createPlane("fore_plane", cols, rows)
	if err != nil {
		return err
	}
	back, err := r.createPlane("back_plane", cols, rows)
	if err != nil {
		r.destroyPlane(&fore)
		return err
	}
	text, err := r.createPlane("text_plane", cols, rows)
	if err != nil {
		r.destroyPlane(&fore)
		r.destroyPlane(&back)
		return err
	}

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "ascii_bind",
		Layout: r.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: r.uniformBuf.NativeHandle(), Offset: 0, Size: cellUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: fore.view.NativeHandle()}},
			{Binding: 2, Resource: gputypes.TextureViewBinding{TextureView: back.view.NativeHandle()}},
			{Binding: 3, Resource: gputypes.TextureViewBinding{TextureView: text.view.NativeHandle()}},
			{Binding: 4, Resource: gputypes.TextureViewBinding{TextureView: r.font.view.NativeHandle()}},
		},
	})
	if err != nil {
		r.destroyPlane(&fore)
		r.destroyPlane(&back)
		r.destroyPlane(&text)
		return fmt.Errorf("create ascii bind group: %w", err)
	}

	r.fore, r.back, r.text = fore, back, text
	r.bindGroup = bindGroup
	r.cols, r.rows = cols, rows
	slogger().Debug("gpu: grid resources sized", "cols", cols, "rows", rows)
	return nil
}

func (r *Renderer) destroyGridResources() {
	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	r.destroyPlane(&r.fore)
	r.destroyPlane(&r.back)
	r.destroyPlane(&r.text)
	r.cols, r.rows = 0, 0
}
