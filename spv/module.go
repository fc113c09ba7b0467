package spv

import (
	"github.com/gpukit/spirv-reflect/errors"
)

// Module holds a decoded SPIR-V instruction stream.
//
// Instructions keep file order; nothing is reordered, deduplicated, or
// rewritten. Lookups are linear scans; modules run from hundreds to low
// thousands of instructions, so side tables would not pay for themselves.
type Module struct {
	// Version is the raw version word; the major number sits in bits
	// 16..23 and the minor in bits 8..15.
	Version   uint32
	Generator uint32
	Schema    uint32

	Instructions []Instruction
}

// VersionMajor returns the major component of the module's SPIR-V version.
func (m *Module) VersionMajor() uint8 {
	return uint8(m.Version >> 16)
}

// VersionMinor returns the minor component of the module's SPIR-V version.
func (m *Module) VersionMinor() uint8 {
	return uint8(m.Version >> 8)
}

// InstructionByResultID returns the instruction defining the given id.
func (m *Module) InstructionByResultID(id uint32) (*Instruction, error) {
	for i := range m.Instructions {
		if m.Instructions[i].ResultID == id {
			return &m.Instructions[i], nil
		}
	}
	return nil, errors.UnknownID(errors.PhaseLookup, id)
}

// Name returns the payload of the first OpName targeting id, or the
// empty string when there is none. First match wins; SPIR-V allows one
// OpName per target in practice and later duplicates are ignored.
func (m *Module) Name(id uint32) string {
	for i := range m.Instructions {
		inst := &m.Instructions[i]
		if inst.OpCode == OpName && inst.IDs[0] == id {
			return inst.Str
		}
	}
	return ""
}

// MemberName returns the name of member index of the struct type id, or
// the empty string when there is none.
func (m *Module) MemberName(id uint32, index uint32) string {
	for i := range m.Instructions {
		inst := &m.Instructions[i]
		if inst.OpCode == OpMemberName && inst.IDs[0] == id && inst.Nums[0] == index {
			return inst.Str
		}
	}
	return ""
}

// Decoration returns the raw payload of the matching OpDecorate, or
// ok=false when the target carries no such decoration. wordCount is the
// payload size the caller expects; a present decoration with a different
// payload size is an error.
func (m *Module) Decoration(target uint32, d Decoration, wordCount int) ([]uint32, bool, error) {
	for i := range m.Instructions {
		inst := &m.Instructions[i]
		if inst.OpCode == OpDecorate && inst.IDs[0] == target && inst.Decoration == d {
			if len(inst.Words) != wordCount {
				return nil, false, errors.DecorationSizeMismatch(d.String(), wordCount, len(inst.Words))
			}
			return inst.Words, true, nil
		}
	}
	return nil, false, nil
}

// MemberDecoration is Decoration for OpMemberDecorate on a struct member.
func (m *Module) MemberDecoration(target uint32, member uint32, d Decoration, wordCount int) ([]uint32, bool, error) {
	for i := range m.Instructions {
		inst := &m.Instructions[i]
		if inst.OpCode == OpMemberDecorate && inst.IDs[0] == target && inst.Nums[0] == member && inst.Decoration == d {
			if len(inst.Words) != wordCount {
				return nil, false, errors.DecorationSizeMismatch(d.String(), wordCount, len(inst.Words))
			}
			return inst.Words, true, nil
		}
	}
	return nil, false, nil
}

// DecorationU32 reads a single-word decoration payload.
func (m *Module) DecorationU32(target uint32, d Decoration) (uint32, bool, error) {
	words, ok, err := m.Decoration(target, d, 1)
	if err != nil || !ok {
		return 0, ok, err
	}
	return words[0], true, nil
}

// MemberDecorationU32 reads a single-word member decoration payload.
func (m *Module) MemberDecorationU32(target uint32, member uint32, d Decoration) (uint32, bool, error) {
	words, ok, err := m.MemberDecoration(target, member, d, 1)
	if err != nil || !ok {
		return 0, ok, err
	}
	return words[0], true, nil
}
