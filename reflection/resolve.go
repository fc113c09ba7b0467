package reflection

import (
	"github.com/gpukit/spirv-reflect/errors"
	"github.com/gpukit/spirv-reflect/spv"
)

// resolveNumeric folds a numeric type-definition chain into a Numeric.
// matrixStride is the byte stride inherited from the enclosing struct
// member; it lands on the column stride when the chain tops out at a
// matrix and is otherwise unused.
func resolveNumeric(m *spv.Module, inst *spv.Instruction, matrixStride uint32, path []string) (*Numeric, error) {
	switch inst.OpCode {
	case spv.OpTypeFloat:
		return &Numeric{
			ElemKind:    ElemFloat,
			ElemWidth:   inst.Nums[0],
			RowCount:    1,
			ColumnCount: 1,
		}, nil

	case spv.OpTypeInt:
		kind := ElemUint
		if inst.Nums[1] != 0 {
			kind = ElemInt
		}
		return &Numeric{
			ElemKind:    kind,
			ElemWidth:   inst.Nums[0],
			RowCount:    1,
			ColumnCount: 1,
		}, nil

	case spv.OpTypeVector:
		elem, err := m.InstructionByResultID(inst.IDs[0])
		if err != nil {
			return nil, err
		}
		n, err := resolveNumeric(m, elem, matrixStride, path)
		if err != nil {
			return nil, err
		}
		n.RowCount = inst.Nums[0]
		n.RowStride = n.ElemWidth / 8
		return n, nil

	case spv.OpTypeMatrix:
		elem, err := m.InstructionByResultID(inst.IDs[0])
		if err != nil {
			return nil, err
		}
		n, err := resolveNumeric(m, elem, matrixStride, path)
		if err != nil {
			return nil, err
		}
		n.ColumnCount = inst.Nums[0]
		n.ColumnStride = matrixStride
		return n, nil
	}

	return nil, errors.BadType(path, inst.OpCode.String(), "not a numeric type")
}

// decodeArrayLength reads an array length from an integer OpConstant,
// bitcasting the constant's words per the integer type's signedness.
func decodeArrayLength(m *spv.Module, inst *spv.Instruction) (uint64, error) {
	if inst.OpCode != spv.OpConstant {
		return 0, errors.BadArrayLength(inst.ResultID, "array length is not a constant value")
	}
	typ, err := m.InstructionByResultID(inst.IDs[0])
	if err != nil {
		return 0, err
	}
	if typ.OpCode != spv.OpTypeInt {
		return 0, errors.BadArrayLength(inst.ResultID, "array length is not an integer constant")
	}
	if len(inst.Words) < 1 {
		return 0, errors.BadArrayLength(inst.ResultID, "constant carries no value words")
	}

	signed := typ.Nums[1] != 0
	switch width := typ.Nums[0]; width {
	case 32:
		if signed {
			return uint64(int64(int32(inst.Words[0]))), nil
		}
		return uint64(inst.Words[0]), nil
	case 64:
		if len(inst.Words) < 2 {
			return 0, errors.BadArrayLength(inst.ResultID, "64-bit constant carries one value word")
		}
		v := uint64(inst.Words[0]) | uint64(inst.Words[1])<<32
		return v, nil // signedness is moot once widened to 64 bits
	default:
		return 0, errors.BadArrayLength(inst.ResultID, "unsupported integer width")
	}
}

// viewTypeFor joins an image dimensionality with its array flag.
func viewTypeFor(dim spv.Dim, arrayed bool) (ViewType, error) {
	switch dim {
	case spv.Dim1D:
		if arrayed {
			return View1DArray, nil
		}
		return View1D, nil
	case spv.Dim2D:
		if arrayed {
			return View2DArray, nil
		}
		return View2D, nil
	case spv.Dim3D:
		return View3D, nil
	case spv.DimCube:
		if arrayed {
			return ViewCubeArray, nil
		}
		return ViewCube, nil
	}
	return 0, errors.UnsupportedImageDim(dim.String())
}

// resolveType folds the type definition rooted at inst into a Type.
//
// matrixStride threads the MatrixStride decoration of the nearest
// enclosing struct member down the tree. It propagates unchanged into
// non-matrix children, matching how uniform block layouts are declared
// in practice: the decoration sits on the member whose (possibly array
// of) matrix type it governs.
func resolveType(m *spv.Module, inst *spv.Instruction, matrixStride uint32, path []string) (*Type, error) {
	switch inst.OpCode {
	case spv.OpTypeStruct:
		s := &Struct{Name: m.Name(inst.ResultID)}
		structPath := append(path, s.Name)
		for i, memberID := range inst.VarIDs {
			index := uint32(i)

			// Input/output structs may have no physical layout, so
			// Offset is not required here.
			var offset *uint32
			if v, ok, err := m.MemberDecorationU32(inst.ResultID, index, spv.DecorationOffset); err != nil {
				return nil, err
			} else if ok {
				offset = &v
			}

			memberStride := matrixStride
			if v, ok, err := m.MemberDecorationU32(inst.ResultID, index, spv.DecorationMatrixStride); err != nil {
				return nil, err
			} else if ok {
				memberStride = v
			}

			name := m.MemberName(inst.ResultID, index)
			memberInst, err := m.InstructionByResultID(memberID)
			if err != nil {
				return nil, err
			}
			memberType, err := resolveType(m, memberInst, memberStride, append(structPath, name))
			if err != nil {
				return nil, err
			}
			s.Members = append(s.Members, Member{Name: name, Type: memberType, Offset: offset})
		}
		return &Type{Kind: KindStruct, Struct: s}, nil

	case spv.OpTypeArray:
		var stride *uint32
		if v, ok, err := m.DecorationU32(inst.ResultID, spv.DecorationArrayStride); err != nil {
			return nil, err
		} else if ok {
			stride = &v
		}

		elemInst, err := m.InstructionByResultID(inst.IDs[0])
		if err != nil {
			return nil, err
		}
		elem, err := resolveType(m, elemInst, matrixStride, path)
		if err != nil {
			return nil, err
		}

		lenInst, err := m.InstructionByResultID(inst.IDs[1])
		if err != nil {
			return nil, err
		}
		count, err := decodeArrayLength(m, lenInst)
		if err != nil {
			return nil, err
		}
		return &Type{Kind: KindArray, Array: &Array{Elem: elem, ElemCount: count, Stride: stride}}, nil

	case spv.OpTypeSampledImage:
		image, err := m.InstructionByResultID(inst.IDs[0])
		if err != nil {
			return nil, err
		}
		if image.OpCode != spv.OpTypeImage {
			return nil, errors.BadType(path, image.OpCode.String(), "sampled image is not over an image type")
		}

		channelInst, err := m.InstructionByResultID(image.IDs[0])
		if err != nil {
			return nil, err
		}
		channel, err := resolveNumeric(m, channelInst, 0, path)
		if err != nil {
			return nil, err
		}

		view, err := viewTypeFor(image.Dim, image.Nums[1] == 1)
		if err != nil {
			return nil, err
		}

		// Copy the qualifier so the tree stays detached from the
		// decoded instruction stream.
		var access *spv.AccessQualifier
		if image.AccessQualifier != nil {
			q := *image.AccessQualifier
			access = &q
		}
		return &Type{Kind: KindSampler, Sampler: &Sampler{
			ChannelKind:  channel.ElemKind,
			View:         view,
			Multisampled: image.Nums[2] == 1,
			Shadow:       image.Nums[0] == 1,
			Access:       access,
		}}, nil
	}

	n, err := resolveNumeric(m, inst, matrixStride, path)
	if err != nil {
		return nil, err
	}
	return &Type{Kind: KindNumeric, Numeric: n}, nil
}
