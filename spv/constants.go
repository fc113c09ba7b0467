package spv

import "strconv"

// SPIR-V binary magic number and framing constants.
const (
	// Magic is the SPIR-V binary magic number in host word order.
	Magic uint32 = 0x07230203

	// HeaderWords is the fixed module header length in words:
	// magic, version, generator, id bound, schema.
	HeaderWords = 5

	// opCodeMask extracts the opcode from an instruction header word;
	// the high 16 bits hold the word count.
	opCodeMask uint32 = 0xFFFF
)

// NoID marks an unset id slot in a decoded instruction.
const NoID uint32 = 0xFFFFFFFF

// OpCode identifies a SPIR-V operation.
type OpCode uint16

// Supported opcodes. Values are the binary encodings from the SPIR-V
// specification; the operand schema for each lives in schema.go, except
// OpSource, which is named here but has no schema and is retained by
// length only.
const (
	OpNop                OpCode = 0
	OpUndef              OpCode = 1
	OpSourceContinued    OpCode = 2
	OpSource             OpCode = 3
	OpSourceExtension    OpCode = 4
	OpName               OpCode = 5
	OpMemberName         OpCode = 6
	OpString             OpCode = 7
	OpLine               OpCode = 8
	OpEntryPoint         OpCode = 15
	OpTypeVoid           OpCode = 19
	OpTypeBool           OpCode = 20
	OpTypeInt            OpCode = 21
	OpTypeFloat          OpCode = 22
	OpTypeVector         OpCode = 23
	OpTypeMatrix         OpCode = 24
	OpTypeImage          OpCode = 25
	OpTypeSampler        OpCode = 26
	OpTypeSampledImage   OpCode = 27
	OpTypeArray          OpCode = 28
	OpTypeRuntimeArray   OpCode = 29
	OpTypeStruct         OpCode = 30
	OpTypeOpaque         OpCode = 31
	OpTypePointer        OpCode = 32
	OpTypeFunction       OpCode = 33
	OpTypeEvent          OpCode = 34
	OpTypeDeviceEvent    OpCode = 35
	OpTypeReserveId      OpCode = 36
	OpTypeQueue          OpCode = 37
	OpTypeForwardPointer OpCode = 39
	OpConstantTrue       OpCode = 41
	OpConstantFalse      OpCode = 42
	OpConstant           OpCode = 43
	OpConstantComposite  OpCode = 44
	OpFunction           OpCode = 54
	OpVariable           OpCode = 59
	OpDecorate           OpCode = 71
	OpMemberDecorate     OpCode = 72
)

var opCodeNames = map[OpCode]string{
	OpNop:                "OpNop",
	OpUndef:              "OpUndef",
	OpSourceContinued:    "OpSourceContinued",
	OpSource:             "OpSource",
	OpSourceExtension:    "OpSourceExtension",
	OpName:               "OpName",
	OpMemberName:         "OpMemberName",
	OpString:             "OpString",
	OpLine:               "OpLine",
	OpEntryPoint:         "OpEntryPoint",
	OpTypeVoid:           "OpTypeVoid",
	OpTypeBool:           "OpTypeBool",
	OpTypeInt:            "OpTypeInt",
	OpTypeFloat:          "OpTypeFloat",
	OpTypeVector:         "OpTypeVector",
	OpTypeMatrix:         "OpTypeMatrix",
	OpTypeImage:          "OpTypeImage",
	OpTypeSampler:        "OpTypeSampler",
	OpTypeSampledImage:   "OpTypeSampledImage",
	OpTypeArray:          "OpTypeArray",
	OpTypeRuntimeArray:   "OpTypeRuntimeArray",
	OpTypeStruct:         "OpTypeStruct",
	OpTypeOpaque:         "OpTypeOpaque",
	OpTypePointer:        "OpTypePointer",
	OpTypeFunction:       "OpTypeFunction",
	OpTypeEvent:          "OpTypeEvent",
	OpTypeDeviceEvent:    "OpTypeDeviceEvent",
	OpTypeReserveId:      "OpTypeReserveId",
	OpTypeQueue:          "OpTypeQueue",
	OpTypeForwardPointer: "OpTypeForwardPointer",
	OpConstantTrue:       "OpConstantTrue",
	OpConstantFalse:      "OpConstantFalse",
	OpConstant:           "OpConstant",
	OpConstantComposite:  "OpConstantComposite",
	OpFunction:           "OpFunction",
	OpVariable:           "OpVariable",
	OpDecorate:           "OpDecorate",
	OpMemberDecorate:     "OpMemberDecorate",
}

func (op OpCode) String() string {
	if s, ok := opCodeNames[op]; ok {
		return s
	}
	return "OpUnknown(" + strconv.FormatUint(uint64(op), 10) + ")"
}

// ExecutionModel identifies the pipeline stage of an entry point.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

var executionModelNames = [...]string{
	ExecutionModelVertex:                 "Vertex",
	ExecutionModelTessellationControl:    "TessellationControl",
	ExecutionModelTessellationEvaluation: "TessellationEvaluation",
	ExecutionModelGeometry:               "Geometry",
	ExecutionModelFragment:               "Fragment",
	ExecutionModelGLCompute:              "GLCompute",
	ExecutionModelKernel:                 "Kernel",
}

func (m ExecutionModel) String() string {
	if int(m) < len(executionModelNames) {
		return executionModelNames[m]
	}
	return "ExecutionModel(" + strconv.FormatUint(uint64(m), 10) + ")"
}

// StorageClass identifies the memory region of a pointer or variable.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

var storageClassNames = [...]string{
	StorageClassUniformConstant: "UniformConstant",
	StorageClassInput:           "Input",
	StorageClassUniform:         "Uniform",
	StorageClassOutput:          "Output",
	StorageClassWorkgroup:       "Workgroup",
	StorageClassCrossWorkgroup:  "CrossWorkgroup",
	StorageClassPrivate:         "Private",
	StorageClassFunction:        "Function",
	StorageClassGeneric:         "Generic",
	StorageClassPushConstant:    "PushConstant",
	StorageClassAtomicCounter:   "AtomicCounter",
	StorageClassImage:           "Image",
	StorageClassStorageBuffer:   "StorageBuffer",
}

func (c StorageClass) String() string {
	if int(c) < len(storageClassNames) {
		return storageClassNames[c]
	}
	return "StorageClass(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// Dim identifies the dimensionality of an image type.
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

var dimNames = [...]string{
	Dim1D:          "1D",
	Dim2D:          "2D",
	Dim3D:          "3D",
	DimCube:        "Cube",
	DimRect:        "Rect",
	DimBuffer:      "Buffer",
	DimSubpassData: "SubpassData",
}

func (d Dim) String() string {
	if int(d) < len(dimNames) {
		return dimNames[d]
	}
	return "Dim(" + strconv.FormatUint(uint64(d), 10) + ")"
}

// Decoration identifies auxiliary metadata attached to a result id or a
// struct member index.
type Decoration uint32

// Named decorations. The reflection walker queries all of these except
// BuiltIn. Other decoration values decode fine; they are simply never
// queried.
const (
	DecorationArrayStride   Decoration = 6
	DecorationMatrixStride  Decoration = 7
	DecorationBuiltIn       Decoration = 11
	DecorationLocation      Decoration = 30
	DecorationBinding       Decoration = 33
	DecorationDescriptorSet Decoration = 34
	DecorationOffset        Decoration = 35
)

func (d Decoration) String() string {
	switch d {
	case DecorationArrayStride:
		return "ArrayStride"
	case DecorationMatrixStride:
		return "MatrixStride"
	case DecorationBuiltIn:
		return "BuiltIn"
	case DecorationLocation:
		return "Location"
	case DecorationBinding:
		return "Binding"
	case DecorationDescriptorSet:
		return "DescriptorSet"
	case DecorationOffset:
		return "Offset"
	}
	return "Decoration(" + strconv.FormatUint(uint64(d), 10) + ")"
}

// ImageFormat identifies the texel format declared on an image type.
// The reflection walker never branches on it, so only the zero value
// has a name.
type ImageFormat uint32

// ImageFormatUnknown is the unspecified texel format.
const ImageFormatUnknown ImageFormat = 0

func (f ImageFormat) String() string {
	if f == ImageFormatUnknown {
		return "Unknown"
	}
	return "ImageFormat(" + strconv.FormatUint(uint64(f), 10) + ")"
}

// AccessQualifier identifies kernel image access modes.
type AccessQualifier uint32

const (
	AccessQualifierReadOnly  AccessQualifier = 0
	AccessQualifierWriteOnly AccessQualifier = 1
	AccessQualifierReadWrite AccessQualifier = 2
)

var accessQualifierNames = [...]string{
	AccessQualifierReadOnly:  "ReadOnly",
	AccessQualifierWriteOnly: "WriteOnly",
	AccessQualifierReadWrite: "ReadWrite",
}

func (q AccessQualifier) String() string {
	if int(q) < len(accessQualifierNames) {
		return accessQualifierNames[q]
	}
	return "AccessQualifier(" + strconv.FormatUint(uint64(q), 10) + ")"
}

// FunctionControl is the bit mask attached to OpFunction.
type FunctionControl uint32

const (
	FunctionControlInline     FunctionControl = 0x1
	FunctionControlDontInline FunctionControl = 0x2
	FunctionControlPure       FunctionControl = 0x4
	FunctionControlConst      FunctionControl = 0x8
)
