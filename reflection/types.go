package reflection

import (
	"strconv"

	"github.com/gpukit/spirv-reflect/spv"
)

// ElemKind is the scalar element class of a numeric or sampler channel.
type ElemKind uint8

const (
	ElemFloat ElemKind = iota
	ElemInt
	ElemUint
)

var elemKindNames = [...]string{
	ElemFloat: "float",
	ElemInt:   "int",
	ElemUint:  "uint",
}

func (k ElemKind) String() string {
	if int(k) < len(elemKindNames) {
		return elemKindNames[k]
	}
	return "ElemKind(" + strconv.Itoa(int(k)) + ")"
}

// ViewType names the geometric arity and arrayness of a sampled image.
type ViewType uint8

const (
	View1D ViewType = iota
	View1DArray
	View2D
	View2DArray
	View3D
	ViewCube
	ViewCubeArray
)

var viewTypeNames = [...]string{
	View1D:        "1D",
	View1DArray:   "1DArray",
	View2D:        "2D",
	View2DArray:   "2DArray",
	View3D:        "3D",
	ViewCube:      "Cube",
	ViewCubeArray: "CubeArray",
}

func (v ViewType) String() string {
	if int(v) < len(viewTypeNames) {
		return viewTypeNames[v]
	}
	return "ViewType(" + strconv.Itoa(int(v)) + ")"
}

// TypeKind tags the active variant of a Type.
type TypeKind uint8

const (
	KindNumeric TypeKind = iota
	KindArray
	KindStruct
	KindSampler
)

// Type is one node of the recursive type tree. Exactly one of the
// variant pointers is set, selected by Kind. Children are exclusively
// owned by their parent; the tree never aliases the decoded module.
type Type struct {
	Kind    TypeKind
	Numeric *Numeric
	Array   *Array
	Struct  *Struct
	Sampler *Sampler
}

// Numeric describes scalars, vectors, and matrices. A scalar has
// RowCount and ColumnCount 1; a vector has ColumnCount 1; a matrix has
// both above 1. Strides are in bytes and zero when no layout applies.
type Numeric struct {
	ElemKind     ElemKind
	ElemWidth    uint32 // bits
	RowCount     uint32
	ColumnCount  uint32
	RowStride    uint32
	ColumnStride uint32
}

// Array owns one element type plus its length and optional byte stride.
type Array struct {
	Elem      *Type
	ElemCount uint64
	Stride    *uint32
}

// Struct is a named, ordered member list.
type Struct struct {
	Name    string
	Members []Member
}

// Member is one struct field. Offset is nil when the member carries no
// layout; input/output blocks have no physical layout.
type Member struct {
	Name   string
	Type   *Type
	Offset *uint32
}

// Sampler describes a combined image and sampler resource.
type Sampler struct {
	ChannelKind  ElemKind
	View         ViewType
	Multisampled bool
	Shadow       bool

	// Access is the image's kernel access qualifier when declared.
	Access *spv.AccessQualifier
}

// VariableInfo is one interface variable or descriptor. Index is the
// descriptor binding index or the shader interface location.
type VariableInfo struct {
	Index uint32
	Name  string
	Type  *Type
}

// DescriptorSetInfo groups the descriptors bound to one set.
type DescriptorSetInfo struct {
	Set         uint32
	Descriptors []VariableInfo
}

// Stage is the canonical graphics pipeline stage of an entry point.
type Stage uint8

const (
	StageVertex Stage = iota
	StageTessellationControl
	StageTessellationEvaluation
	StageGeometry
	StageFragment
	StageCompute
)

var stageNames = [...]string{
	StageVertex:                 "Vertex",
	StageTessellationControl:    "TessellationControl",
	StageTessellationEvaluation: "TessellationEvaluation",
	StageGeometry:               "Geometry",
	StageFragment:               "Fragment",
	StageCompute:                "Compute",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "Stage(" + strconv.Itoa(int(s)) + ")"
}

// EntryPointInfo describes one entry point and its located interface.
type EntryPointInfo struct {
	Stage   Stage
	Name    string
	Inputs  []VariableInfo
	Outputs []VariableInfo
}

// ModuleInfo is the module's full external interface.
//
// DescriptorSets are sorted ascending by set, their descriptors ascending
// by binding index; entry points are sorted by stage then name, their
// inputs and outputs ascending by location.
type ModuleInfo struct {
	DescriptorSets []DescriptorSetInfo
	EntryPoints    []EntryPointInfo
}
