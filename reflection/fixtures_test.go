package reflection_test

import (
	"testing"

	"github.com/gpukit/spirv-reflect/reflection"
	"github.com/gpukit/spirv-reflect/spv"
)

// Word-stream builders shared by the reflection tests. Fixtures are
// assembled instruction by instruction; result ids are chosen by hand.

func spvModule(instrs ...[]uint32) []uint32 {
	words := []uint32{spv.Magic, 0x00010300, 0, 100, 0}
	for _, in := range instrs {
		words = append(words, in...)
	}
	return words
}

func op(code spv.OpCode, operands ...uint32) []uint32 {
	header := uint32(len(operands)+1)<<16 | uint32(code)
	return append([]uint32{header}, operands...)
}

func packString(s string) []uint32 {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	out := make([]uint32, 0, len(b)/4)
	for i := 0; i < len(b); i += 4 {
		out = append(out, uint32(b[i])|uint32(b[i+1])<<8|uint32(b[i+2])<<16|uint32(b[i+3])<<24)
	}
	return out
}

func cat(parts ...[]uint32) []uint32 {
	var out []uint32
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func name(id uint32, s string) []uint32 {
	return op(spv.OpName, cat([]uint32{id}, packString(s))...)
}

func memberName(id, index uint32, s string) []uint32 {
	return op(spv.OpMemberName, cat([]uint32{id, index}, packString(s))...)
}

func decorate(id uint32, d spv.Decoration, args ...uint32) []uint32 {
	return op(spv.OpDecorate, cat([]uint32{id, uint32(d)}, args)...)
}

func memberDecorate(id, index uint32, d spv.Decoration, args ...uint32) []uint32 {
	return op(spv.OpMemberDecorate, cat([]uint32{id, index, uint32(d)}, args)...)
}

func entryPoint(model spv.ExecutionModel, fn uint32, s string, iface ...uint32) []uint32 {
	return op(spv.OpEntryPoint, cat([]uint32{uint32(model), fn}, packString(s), iface)...)
}

func reflectModule(t *testing.T, instrs ...[]uint32) *reflection.ModuleInfo {
	t.Helper()
	m, err := spv.Decode(spvModule(instrs...))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	info, err := reflection.Interface(m)
	if err != nil {
		t.Fatalf("Interface: %v", err)
	}
	return info
}

func reflectErr(t *testing.T, instrs ...[]uint32) error {
	t.Helper()
	m, err := spv.Decode(spvModule(instrs...))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	_, err = reflection.Interface(m)
	if err == nil {
		t.Fatal("expected an extraction error")
	}
	return err
}
