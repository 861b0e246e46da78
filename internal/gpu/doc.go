// Package gpu drives the ASCII compositing pipeline on the GPU.
//
// This is an internal package used by the mage engine. It renders with
// the gogpu/wgpu Pure Go WebGPU implementation (zero CGO), which
// supports Vulkan, Metal, and DX12 backends depending on the platform.
//
// The pipeline is deliberately small:
//
//	Grid planes (uint32 textures) -> fullscreen quad -> per-pixel cell lookup
//
// Key components:
//
//   - Renderer: owns the device handles, pipelines, and grid textures
//   - ascii.wgsl: index-driven fullscreen quad + texel-to-cell fragment lookup
//   - quad.wgsl: bindless debug variant painting interpolated corner colors
//
// The renderer either adopts a device from a windowing provider or
// opens its own Vulkan device for headless use.
package gpu
