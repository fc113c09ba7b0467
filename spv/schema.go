package spv

// role classifies one operand slot of an instruction. The decoder is a
// single loop over the role list; adding opcode coverage is a data
// change, not a control-flow change.
type role uint8

const (
	roleResultID role = iota
	roleID               // fixed positional id, stored at operand.index
	roleOptionalID       // zero or one trailing id
	roleIDList           // ids through the instruction end
	roleNum              // fixed positional literal, stored at operand.index
	roleString           // NUL-terminated packed string
	roleWordList         // raw words through the instruction end
	roleExecutionModel
	roleStorageClass
	roleDim
	roleAccessQualifier
	roleDecoration
	roleImageFormat
	roleFunctionControl
	roleOptAccessQualifier // access qualifier iff operand words remain
)

// operand pairs a role with its destination index for the indexed roles.
type operand struct {
	role  role
	index int
}

// opSchemas maps each supported opcode to its ordered operand roles.
// Opcodes absent from the table are retained by length only.
var opSchemas = map[OpCode][]operand{
	OpNop:              {},
	OpUndef:            {{roleID, 0}, {roleResultID, 0}},
	OpSourceContinued:  {{roleString, 0}},
	OpSourceExtension:  {{roleString, 0}},
	OpName:             {{roleID, 0}, {roleString, 0}},
	OpMemberName:       {{roleID, 0}, {roleNum, 0}, {roleString, 0}}, // type, member, name
	OpString:           {{roleResultID, 0}, {roleString, 0}},
	OpLine:             {{roleID, 0}, {roleNum, 0}, {roleNum, 1}}, // file, line, column
	OpEntryPoint:       {{roleExecutionModel, 0}, {roleID, 0}, {roleString, 0}, {roleIDList, 0}}, // ids[0]=function, list=interface
	OpTypeVoid:         {{roleResultID, 0}},
	OpTypeBool:         {{roleResultID, 0}},
	OpTypeInt:          {{roleResultID, 0}, {roleNum, 0}, {roleNum, 1}}, // width, signedness
	OpTypeFloat:        {{roleResultID, 0}, {roleNum, 0}},               // width
	OpTypeVector:       {{roleResultID, 0}, {roleID, 0}, {roleNum, 0}},  // component type, count
	OpTypeMatrix:       {{roleResultID, 0}, {roleID, 0}, {roleNum, 0}},  // column type, count
	OpTypeImage:        {{roleResultID, 0}, {roleID, 0}, {roleDim, 0}, {roleNum, 0}, {roleNum, 1}, {roleNum, 2}, {roleNum, 3}, {roleImageFormat, 0}, {roleOptAccessQualifier, 0}},
	OpTypeSampler:      {{roleResultID, 0}},
	OpTypeSampledImage: {{roleResultID, 0}, {roleID, 0}},
	OpTypeArray:        {{roleResultID, 0}, {roleID, 0}, {roleID, 1}}, // element type, length constant
	OpTypeRuntimeArray: {{roleResultID, 0}, {roleID, 0}},
	OpTypeStruct:       {{roleResultID, 0}, {roleIDList, 0}},
	OpTypeOpaque:       {{roleResultID, 0}, {roleString, 0}},
	OpTypePointer:      {{roleResultID, 0}, {roleStorageClass, 0}, {roleID, 0}},
	OpTypeFunction:     {{roleResultID, 0}, {roleID, 0}, {roleIDList, 0}},
	OpTypeEvent:        {{roleResultID, 0}},
	OpTypeDeviceEvent:  {{roleResultID, 0}},
	OpTypeReserveId:    {{roleResultID, 0}},
	OpTypeQueue:        {{roleResultID, 0}},

	OpTypeForwardPointer: {{roleID, 0}, {roleStorageClass, 0}},
	OpConstantTrue:       {{roleID, 0}, {roleResultID, 0}},
	OpConstantFalse:      {{roleID, 0}, {roleResultID, 0}},
	OpConstant:           {{roleID, 0}, {roleResultID, 0}, {roleWordList, 0}},
	OpConstantComposite:  {{roleID, 0}, {roleResultID, 0}, {roleIDList, 0}},
	OpFunction:           {{roleID, 0}, {roleResultID, 0}, {roleFunctionControl, 0}, {roleID, 1}}, // ids[0]=result type, ids[1]=function type
	OpVariable:           {{roleID, 0}, {roleResultID, 0}, {roleStorageClass, 0}, {roleOptionalID, 0}},
	OpDecorate:           {{roleID, 0}, {roleDecoration, 0}, {roleWordList, 0}},
	OpMemberDecorate:     {{roleID, 0}, {roleNum, 0}, {roleDecoration, 0}, {roleWordList, 0}},
}
