package spv

import (
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/gpukit/spirv-reflect/errors"
)

// Words converts a raw SPIR-V byte stream to a word slice, decoding
// little-endian as the format requires.
func Words(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, errors.NotSpirV("binary length is not a multiple of four bytes")
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return words, nil
}

// Decode parses a SPIR-V module from a word slice.
//
// The header must carry the SPIR-V magic number and the stream must hold
// at least the five header words. Instructions are decoded in file order;
// opcodes outside the schema are retained with only OpCode set and their
// declared length respected.
func Decode(words []uint32) (*Module, error) {
	if len(words) < HeaderWords {
		return nil, errors.NotSpirV("fewer than five words")
	}
	if words[0] != Magic {
		return nil, errors.NotSpirV("magic number mismatch")
	}

	m := &Module{
		Version:   words[1],
		Generator: words[2],
		Schema:    words[4],
	}

	it := HeaderWords
	for it < len(words) {
		header := words[it]
		op := OpCode(header & opCodeMask)
		length := int(header >> 16)

		if length == 0 {
			return nil, errors.Malformed(op.String(), "instruction declares zero length")
		}
		end := it + length
		if end > len(words) {
			return nil, errors.Malformed(op.String(), "instruction overruns module end")
		}

		inst := newInstruction(op)
		if schema, ok := opSchemas[op]; ok {
			if err := decodeOperands(&inst, schema, words, it+1, end); err != nil {
				return nil, err
			}
		}
		m.Instructions = append(m.Instructions, inst)
		it = end
	}

	Logger().Debug("decoded module",
		zap.Uint32("version", m.Version),
		zap.Uint32("generator", m.Generator),
		zap.Int("instructions", len(m.Instructions)))
	return m, nil
}

// decodeOperands consumes the operand words of one instruction strictly
// in schema order. Consumption must stop exactly at the instruction
// boundary; leftover words are an error.
func decodeOperands(inst *Instruction, schema []operand, words []uint32, start, end int) error {
	r := newWordReader(words, start, end, inst.OpCode)
	for _, o := range schema {
		var w uint32
		var err error
		switch o.role {
		case roleIDList, roleOptionalID, roleWordList, roleString, roleOptAccessQualifier:
			// Variable-width roles read below.
		default:
			if w, err = r.word(); err != nil {
				return err
			}
		}

		switch o.role {
		case roleResultID:
			inst.ResultID = w
		case roleID:
			inst.IDs[o.index] = w
		case roleNum:
			inst.Nums[o.index] = w
		case roleExecutionModel:
			inst.ExecutionModel = ExecutionModel(w)
		case roleStorageClass:
			inst.StorageClass = StorageClass(w)
		case roleDim:
			inst.Dim = Dim(w)
		case roleDecoration:
			inst.Decoration = Decoration(w)
		case roleImageFormat:
			inst.ImageFormat = ImageFormat(w)
		case roleAccessQualifier:
			q := AccessQualifier(w)
			inst.AccessQualifier = &q
		case roleFunctionControl:
			inst.FunctionControl = FunctionControl(w)
		case roleIDList:
			inst.VarIDs = r.tail()
		case roleOptionalID:
			if r.remaining() > 0 {
				id, err := r.word()
				if err != nil {
					return err
				}
				inst.VarIDs = append(inst.VarIDs, id)
			}
		case roleWordList:
			inst.Words = r.tail()
		case roleOptAccessQualifier:
			if r.remaining() > 0 {
				v, err := r.word()
				if err != nil {
					return err
				}
				q := AccessQualifier(v)
				inst.AccessQualifier = &q
			}
		case roleString:
			s, err := r.str()
			if err != nil {
				return err
			}
			inst.Str = s
		}
	}

	if r.remaining() != 0 {
		return errors.Malformed(inst.OpCode.String(), "instruction contains extra data")
	}
	return nil
}
