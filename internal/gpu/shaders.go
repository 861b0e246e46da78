package gpu

import (
	_ "embed"
)

// Embedded WGSL shader sources, compiled into the binary with go:embed.

//go:embed shaders/ascii.wgsl
var asciiShaderSource string

//go:embed shaders/quad.wgsl
var quadShaderSource string
