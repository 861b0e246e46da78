package gpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// RenderGrid composites one grid frame to the target surface view. The
// target is the opaque view handed out by the windowing layer and must
// be an hal.TextureView. Plane textures are resized to the frame's
// cell dimensions when they changed and re-uploaded every frame; grid
// contents are small enough that dirty tracking has not been worth it.
func (r *Renderer) RenderGrid(target any, frame GridFrame) error {
	if r.closed {
		return fmt.Errorf("gpu: renderer closed")
	}
	view, ok := target.(hal.TextureView)
	if !ok || view == nil {
		return fmt.Errorf("gpu: target is not hal.TextureView")
	}
	if frame.Cols == 0 || frame.Rows == 0 {
		return fmt.Errorf("gpu: empty grid frame")
	}
	n := int(frame.Cols * frame.Rows)
	if len(frame.Fore) < n || len(frame.Back) < n || len(frame.Text) < n {
		return fmt.Errorf("gpu: grid planes shorter than %dx%d", frame.Cols, frame.Rows)
	}

	if err := r.ensureGridResources(frame.Cols, frame.Rows); err != nil {
		return err
	}
	r.uploadPlane(r.fore, frame.Fore[:n])
	r.uploadPlane(r.back, frame.Back[:n])
	r.uploadPlane(r.text, frame.Text[:n])

	return r.encodeSubmit("ascii", view, func(rp hal.RenderPassEncoder) {
		rp.SetPipeline(r.pipeline)
		rp.SetBindGroup(0, r.bindGroup, nil)
		rp.Draw(4, 1, 0, 0)
	})
}

// RenderDebug draws the untextured corner-color quad to the target.
// It binds nothing, so it works before any grid has been uploaded.
func (r *Renderer) RenderDebug(target any) error {
	if r.closed {
		return fmt.Errorf("gpu: renderer closed")
	}
	view, ok := target.(hal.TextureView)
	if !ok || view == nil {
		return fmt.Errorf("gpu: target is not hal.TextureView")
	}
	return r.encodeSubmit("quad", view, func(rp hal.RenderPassEncoder) {
		rp.SetPipeline(r.debugPipe)
		rp.Draw(4, 1, 0, 0)
	})
}

// encodeSubmit records a single render pass targeting view, submits
// it, and blocks until the GPU finishes so the caller can present the
// surface immediately after.
func (r *Renderer) encodeSubmit(name string, view hal.TextureView, record func(hal.RenderPassEncoder)) error {
	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: name + "_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(name + "_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: name + "_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	record(rp)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if _, err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	// Wait for the GPU before the surface is presented.
	fenceOK, err := r.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}
