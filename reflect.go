package spirvreflect

import (
	"github.com/gpukit/spirv-reflect/reflection"
	"github.com/gpukit/spirv-reflect/spv"
)

// Reflect parses a SPIR-V module from its word stream and extracts its
// external interface.
func Reflect(words []uint32) (*reflection.ModuleInfo, error) {
	module, err := spv.Decode(words)
	if err != nil {
		return nil, err
	}
	return reflection.Interface(module)
}

// ReflectBytes parses a SPIR-V module from its raw little-endian bytes.
func ReflectBytes(data []byte) (*reflection.ModuleInfo, error) {
	words, err := spv.Words(data)
	if err != nil {
		return nil, err
	}
	return Reflect(words)
}
