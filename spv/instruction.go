package spv

// Instruction is one decoded SPIR-V operation.
//
// Only the fields named by the opcode's operand schema are populated;
// everything else holds its zero or sentinel value. Id slots default to
// NoID so that id 0 (never a valid result id, but a valid literal) stays
// distinguishable from an absent operand.
type Instruction struct {
	OpCode OpCode

	// ResultID is the SSA id this instruction defines, or NoID.
	ResultID uint32

	// IDs are the fixed positional id operands.
	IDs [4]uint32

	// VarIDs is the variadic id tail. OpVariable also uses it for its
	// single optional initialiser id.
	VarIDs []uint32

	// Nums are the fixed positional integer literals.
	Nums [4]uint32

	// Str is the single string payload, when the schema has one.
	Str string

	// Words is the raw literal payload of arbitrary length: decoration
	// parameters and constant bit patterns.
	Words []uint32

	ExecutionModel  ExecutionModel
	StorageClass    StorageClass
	Dim             Dim
	Decoration      Decoration
	ImageFormat     ImageFormat
	FunctionControl FunctionControl

	// AccessQualifier is nil unless the optional operand was present.
	AccessQualifier *AccessQualifier
}

// newInstruction returns an Instruction with all id slots set to NoID.
func newInstruction(op OpCode) Instruction {
	return Instruction{
		OpCode:   op,
		ResultID: NoID,
		IDs:      [4]uint32{NoID, NoID, NoID, NoID},
	}
}
