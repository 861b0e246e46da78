package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// createPipelines compiles both shaders and builds the two render
// pipelines: the ASCII compositing pipeline with its texture bindings,
// and the bindless debug pipeline.
func (r *Renderer) createPipelines() error {
	asciiShader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "ascii_shader",
		Source: hal.ShaderSource{WGSL: asciiShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile ascii shader: %w", err)
	}
	r.asciiShader = asciiShader

	debugShader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "quad_shader",
		Source: hal.ShaderSource{WGSL: quadShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile quad shader: %w", err)
	}
	r.debugShader = debugShader

	// Bind group layout:
	//   Binding 0: cell uniforms (uniform buffer, fragment)
	//   Binding 1: foreground plane (texture_2d<u32>, fragment)
	//   Binding 2: background plane (texture_2d<u32>, fragment)
	//   Binding 3: glyph plane (texture_2d<u32>, fragment)
	//   Binding 4: glyph atlas (texture_2d<u32>, fragment)
	// Integer textures are read with textureLoad, so no sampler.
	uintTexture := &gputypes.TextureBindingLayout{
		SampleType:    gputypes.TextureSampleTypeUint,
		ViewDimension: gputypes.TextureViewDimension2D,
	}
	bindLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ascii_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{Binding: 1, Visibility: gputypes.ShaderStageFragment, Texture: uintTexture},
			{Binding: 2, Visibility: gputypes.ShaderStageFragment, Texture: uintTexture},
			{Binding: 3, Visibility: gputypes.ShaderStageFragment, Texture: uintTexture},
			{Binding: 4, Visibility: gputypes.ShaderStageFragment, Texture: uintTexture},
		},
	})
	if err != nil {
		return fmt.Errorf("create ascii bind layout: %w", err)
	}
	r.bindLayout = bindLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "ascii_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create ascii pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	debugLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "quad_pipe_layout",
		BindGroupLayouts: nil,
	})
	if err != nil {
		return fmt.Errorf("create quad pipeline layout: %w", err)
	}
	r.debugLayout = debugLayout

	pipeline, err := r.createQuadPipeline("ascii_pipeline", r.asciiShader, r.pipeLayout)
	if err != nil {
		return err
	}
	r.pipeline = pipeline

	debugPipe, err := r.createQuadPipeline("quad_pipeline", r.debugShader, r.debugLayout)
	if err != nil {
		return err
	}
	r.debugPipe = debugPipe
	return nil
}

// createQuadPipeline builds a render pipeline for the index-driven
// fullscreen quad: a 4-vertex triangle strip with no vertex buffers,
// no culling, and opaque output.
func (r *Renderer) createQuadPipeline(label string, shader hal.ShaderModule, layout hal.PipelineLayout) (hal.RenderPipeline, error) {
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    nil,
		},
		Fragment: &hal.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					Blend:     nil,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleStrip,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	return pipeline, nil
}
