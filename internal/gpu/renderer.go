package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ErrNoDevice is returned when no usable GPU adapter can be opened.
var ErrNoDevice = errors.New("gpu: no device available")

// FontSpec describes the baked glyph atlas handed to the renderer. The
// atlas holds 256 glyphs in a 16x16 cell layout; Texels carries one
// uint32 per pixel with value 0 or 1.
type FontSpec struct {
	CellW  uint32
	CellH  uint32
	AtlasW uint32
	AtlasH uint32
	Texels []uint32
}

// GridFrame is one frame's worth of grid contents. The three planes
// are row-major, Cols*Rows long: packed foreground colors, packed
// background colors, and glyph values (only the low byte is used).
type GridFrame struct {
	Cols uint32
	Rows uint32
	Fore []uint32
	Back []uint32
	Text []uint32
}

// plane is one uint32 texture with its view.
type plane struct {
	tex  hal.Texture
	view hal.TextureView
	w, h uint32
}

// Renderer owns the GPU resources for the ASCII compositing pipeline.
// It is not safe for concurrent use; the engine drives it from the
// draw callback only.
type Renderer struct {
	instance hal.Instance // non-nil only when the renderer opened its own device
	device   hal.Device
	queue    hal.Queue

	asciiShader hal.ShaderModule
	debugShader hal.ShaderModule
	bindLayout  hal.BindGroupLayout
	pipeLayout  hal.PipelineLayout
	debugLayout hal.PipelineLayout
	pipeline    hal.RenderPipeline
	debugPipe   hal.RenderPipeline

	uniformBuf   hal.Buffer
	cellW, cellH uint32
	font         plane
	fore         plane
	back         plane
	text         plane
	bindGroup    hal.BindGroup
	cols, rows   uint32

	closed bool
}

// deviceProvider is the duck-typed surface a windowing layer exposes
// for sharing its HAL device. gogpu's GPUContextProvider satisfies it.
type deviceProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewRenderer creates a renderer on the device exposed by provider.
// The provider must implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue; the device stays owned by the
// provider and is not destroyed by Destroy.
func NewRenderer(provider any, font FontSpec) (*Renderer, error) {
	hp, ok := provider.(deviceProvider)
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}
	r := &Renderer{device: device, queue: queue}
	if err := r.initResources(font); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

// NewStandaloneRenderer opens its own Vulkan device. Used for headless
// rendering and tests; Destroy releases the device as well.
func NewStandaloneRenderer(font FontSpec) (*Renderer, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not available", ErrNoDevice)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return nil, fmt.Errorf("%w: no adapters found", ErrNoDevice)
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}
	r := &Renderer{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
	}
	if err := r.initResources(font); err != nil {
		r.Destroy()
		return nil, err
	}
	slogger().Info("gpu: standalone renderer initialized", "adapter", selected.Info.Name)
	return r, nil
}

// initResources builds everything that does not depend on the grid
// size: shaders, layouts, pipelines, the cell uniform buffer, and the
// glyph atlas texture.
func (r *Renderer) initResources(font FontSpec) error {
	if err := r.createPipelines(); err != nil {
		return err
	}

	uniformBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "ascii_cell_uniforms",
		Size:  cellUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}
	r.uniformBuf = uniformBuf
	r.cellW, r.cellH = font.CellW, font.CellH
	// The grid dimensions are written again once the grid planes are
	// sized; until then the clamp degenerates to cell (0,0).
	r.queue.WriteBuffer(uniformBuf, 0, packCellUniforms(font.CellW, font.CellH, 1, 1))

	atlas, err := r.createPlane("glyph_atlas", font.AtlasW, font.AtlasH)
	if err != nil {
		return err
	}
	r.font = atlas
	r.uploadPlane(r.font, font.Texels)
	return nil
}

// Destroy releases all GPU resources. Safe to call more than once. If
// the renderer opened its own device, the device is destroyed too;
// adopted devices are left alone.
func (r *Renderer) Destroy() {
	if r.closed {
		return
	}
	r.closed = true

	r.destroyGridResources()
	r.destroyPlane(&r.font)
	if r.uniformBuf != nil {
		r.device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.debugPipe != nil {
		r.device.DestroyRenderPipeline(r.debugPipe)
		r.debugPipe = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.debugLayout != nil {
		r.device.DestroyPipelineLayout(r.debugLayout)
		r.debugLayout = nil
	}
	if r.bindLayout != nil {
		r.device.DestroyBindGroupLayout(r.bindLayout)
		r.bindLayout = nil
	}
	if r.asciiShader != nil {
		r.device.DestroyShaderModule(r.asciiShader)
		r.asciiShader = nil
	}
	if r.debugShader != nil {
		r.device.DestroyShaderModule(r.debugShader)
		r.debugShader = nil
	}
	if r.instance != nil {
		r.device.Destroy()
		r.instance.Destroy()
		r.instance = nil
	}
	r.device = nil
	r.queue = nil
}
