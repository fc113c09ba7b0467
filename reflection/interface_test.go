package reflection_test

import (
	"testing"

	"github.com/gpukit/spirv-reflect/errors"
	"github.com/gpukit/spirv-reflect/reflection"
	"github.com/gpukit/spirv-reflect/spv"
)

// Vertex shader with one uniform block and one attribute:
//
//	layout(set = 0, binding = 1) uniform Transform { mat4 mvp; } ubo;
//	layout(location = 0) in vec3 in_pos;
func vertexShader() [][]uint32 {
	return [][]uint32{
		entryPoint(spv.ExecutionModelVertex, 20, "main", 9),
		name(4, "Transform"),
		memberName(4, 0, "mvp"),
		name(6, "ubo"),
		name(9, "in_pos"),
		memberDecorate(4, 0, spv.DecorationOffset, 0),
		memberDecorate(4, 0, spv.DecorationMatrixStride, 16),
		decorate(6, spv.DecorationDescriptorSet, 0),
		decorate(6, spv.DecorationBinding, 1),
		decorate(9, spv.DecorationLocation, 0),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypeVector, 2, 1, 4),
		op(spv.OpTypeMatrix, 3, 2, 4),
		op(spv.OpTypeStruct, 4, 3),
		op(spv.OpTypePointer, 5, uint32(spv.StorageClassUniform), 4),
		op(spv.OpVariable, 5, 6, uint32(spv.StorageClassUniform)),
		op(spv.OpTypeVector, 7, 1, 3),
		op(spv.OpTypePointer, 8, uint32(spv.StorageClassInput), 7),
		op(spv.OpVariable, 8, 9, uint32(spv.StorageClassInput)),
	}
}

func TestVertexShaderInterface(t *testing.T) {
	info := reflectModule(t, vertexShader()...)

	if len(info.DescriptorSets) != 1 {
		t.Fatalf("descriptor sets: got %d, want 1", len(info.DescriptorSets))
	}
	set := info.DescriptorSets[0]
	if set.Set != 0 || len(set.Descriptors) != 1 {
		t.Fatalf("set 0: %+v", set)
	}

	ubo := set.Descriptors[0]
	if ubo.Index != 1 || ubo.Name != "ubo" {
		t.Errorf("descriptor: index=%d name=%q", ubo.Index, ubo.Name)
	}
	if ubo.Type.Kind != reflection.KindStruct {
		t.Fatalf("descriptor type kind: got %v", ubo.Type.Kind)
	}
	st := ubo.Type.Struct
	if st.Name != "Transform" || len(st.Members) != 1 {
		t.Fatalf("struct: name=%q members=%d", st.Name, len(st.Members))
	}
	mvp := st.Members[0]
	if mvp.Name != "mvp" {
		t.Errorf("member name: got %q", mvp.Name)
	}
	if mvp.Offset == nil || *mvp.Offset != 0 {
		t.Errorf("member offset: got %v", mvp.Offset)
	}
	if mvp.Type.Kind != reflection.KindNumeric {
		t.Fatalf("member kind: got %v", mvp.Type.Kind)
	}
	want := reflection.Numeric{
		ElemKind: reflection.ElemFloat, ElemWidth: 32,
		RowCount: 4, ColumnCount: 4,
		RowStride: 4, ColumnStride: 16,
	}
	if *mvp.Type.Numeric != want {
		t.Errorf("mvp numeric: got %+v, want %+v", *mvp.Type.Numeric, want)
	}

	if len(info.EntryPoints) != 1 {
		t.Fatalf("entry points: got %d", len(info.EntryPoints))
	}
	ep := info.EntryPoints[0]
	if ep.Stage != reflection.StageVertex || ep.Name != "main" {
		t.Errorf("entry point: stage=%v name=%q", ep.Stage, ep.Name)
	}
	if len(ep.Outputs) != 0 {
		t.Errorf("outputs: got %d, want 0", len(ep.Outputs))
	}
	if len(ep.Inputs) != 1 {
		t.Fatalf("inputs: got %d, want 1", len(ep.Inputs))
	}
	in := ep.Inputs[0]
	if in.Index != 0 || in.Name != "in_pos" {
		t.Errorf("input: index=%d name=%q", in.Index, in.Name)
	}
	wantIn := reflection.Numeric{
		ElemKind: reflection.ElemFloat, ElemWidth: 32,
		RowCount: 3, ColumnCount: 1,
		RowStride: 4,
	}
	if in.Type.Kind != reflection.KindNumeric || *in.Type.Numeric != wantIn {
		t.Errorf("input type: got %+v, want %+v", in.Type.Numeric, wantIn)
	}
}

// Fragment shader sampling a 2D texture:
//
//	layout(set = 0, binding = 0) uniform sampler2D tex;
func TestFragmentSampler(t *testing.T) {
	info := reflectModule(t,
		name(5, "tex"),
		decorate(5, spv.DecorationDescriptorSet, 0),
		decorate(5, spv.DecorationBinding, 0),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypeImage, 2, 1, uint32(spv.Dim2D), 0, 0, 0, 1, uint32(spv.ImageFormatUnknown)),
		op(spv.OpTypeSampledImage, 3, 2),
		op(spv.OpTypePointer, 4, uint32(spv.StorageClassUniformConstant), 3),
		op(spv.OpVariable, 4, 5, uint32(spv.StorageClassUniformConstant)),
	)

	if len(info.DescriptorSets) != 1 || len(info.DescriptorSets[0].Descriptors) != 1 {
		t.Fatalf("descriptors: %+v", info.DescriptorSets)
	}
	tex := info.DescriptorSets[0].Descriptors[0]
	if tex.Index != 0 || tex.Name != "tex" {
		t.Errorf("descriptor: index=%d name=%q", tex.Index, tex.Name)
	}
	if tex.Type.Kind != reflection.KindSampler {
		t.Fatalf("kind: got %v", tex.Type.Kind)
	}
	s := tex.Type.Sampler
	if s.ChannelKind != reflection.ElemFloat {
		t.Errorf("channel kind: got %v", s.ChannelKind)
	}
	if s.View != reflection.View2D {
		t.Errorf("view: got %v", s.View)
	}
	if s.Multisampled || s.Shadow {
		t.Errorf("flags: ms=%v shadow=%v", s.Multisampled, s.Shadow)
	}
	if s.Access != nil {
		t.Errorf("access: got %v, want nil", *s.Access)
	}
}

func TestSamplerViewVariants(t *testing.T) {
	tests := []struct {
		name    string
		dim     spv.Dim
		arrayed uint32
		depth   uint32
		ms      uint32
		want    reflection.ViewType
		shadow  bool
		msFlag  bool
	}{
		{"1d", spv.Dim1D, 0, 0, 0, reflection.View1D, false, false},
		{"1d array", spv.Dim1D, 1, 0, 0, reflection.View1DArray, false, false},
		{"2d array", spv.Dim2D, 1, 0, 0, reflection.View2DArray, false, false},
		{"2d ms", spv.Dim2D, 0, 0, 1, reflection.View2D, false, true},
		{"2d shadow", spv.Dim2D, 0, 1, 0, reflection.View2D, true, false},
		{"3d", spv.Dim3D, 0, 0, 0, reflection.View3D, false, false},
		{"cube", spv.DimCube, 0, 0, 0, reflection.ViewCube, false, false},
		{"cube array", spv.DimCube, 1, 0, 0, reflection.ViewCubeArray, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := reflectModule(t,
				name(5, "tex"),
				decorate(5, spv.DecorationDescriptorSet, 0),
				decorate(5, spv.DecorationBinding, 0),
				op(spv.OpTypeFloat, 1, 32),
				op(spv.OpTypeImage, 2, 1, uint32(tt.dim), tt.depth, tt.arrayed, tt.ms, 1, uint32(spv.ImageFormatUnknown)),
				op(spv.OpTypeSampledImage, 3, 2),
				op(spv.OpTypePointer, 4, uint32(spv.StorageClassUniformConstant), 3),
				op(spv.OpVariable, 4, 5, uint32(spv.StorageClassUniformConstant)),
			)
			s := info.DescriptorSets[0].Descriptors[0].Type.Sampler
			if s.View != tt.want {
				t.Errorf("view: got %v, want %v", s.View, tt.want)
			}
			if s.Shadow != tt.shadow || s.Multisampled != tt.msFlag {
				t.Errorf("flags: shadow=%v ms=%v", s.Shadow, s.Multisampled)
			}
		})
	}
}

func TestBuiltinSkip(t *testing.T) {
	// The entry point lists a variable without a Location decoration;
	// it must not surface, but the entry point itself must.
	info := reflectModule(t,
		entryPoint(spv.ExecutionModelVertex, 20, "main", 9),
		name(9, "gl_PerVertex"),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypeVector, 7, 1, 4),
		op(spv.OpTypePointer, 8, uint32(spv.StorageClassOutput), 7),
		op(spv.OpVariable, 8, 9, uint32(spv.StorageClassOutput)),
	)

	if len(info.EntryPoints) != 1 {
		t.Fatalf("entry points: got %d, want 1", len(info.EntryPoints))
	}
	ep := info.EntryPoints[0]
	if len(ep.Inputs) != 0 || len(ep.Outputs) != 0 {
		t.Errorf("interface should be empty: inputs=%d outputs=%d", len(ep.Inputs), len(ep.Outputs))
	}
}

func TestMissingBinding(t *testing.T) {
	err := reflectErr(t,
		name(6, "ubo"),
		decorate(6, spv.DecorationDescriptorSet, 0),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypePointer, 5, uint32(spv.StorageClassUniform), 1),
		op(spv.OpVariable, 5, 6, uint32(spv.StorageClassUniform)),
	)
	if !errors.IsKind(err, errors.KindMissingDecoration) {
		t.Errorf("expected MissingDecoration, got %v", err)
	}
}

func TestMissingDescriptorSet(t *testing.T) {
	err := reflectErr(t,
		decorate(6, spv.DecorationBinding, 0),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypePointer, 5, uint32(spv.StorageClassUniform), 1),
		op(spv.OpVariable, 5, 6, uint32(spv.StorageClassUniform)),
	)
	if !errors.IsKind(err, errors.KindMissingDecoration) {
		t.Errorf("expected MissingDecoration, got %v", err)
	}
}

func TestDescriptorSetOrdering(t *testing.T) {
	// Declared out of order: (1,0), (0,2), (0,0).
	info := reflectModule(t,
		decorate(10, spv.DecorationDescriptorSet, 1),
		decorate(10, spv.DecorationBinding, 0),
		decorate(11, spv.DecorationDescriptorSet, 0),
		decorate(11, spv.DecorationBinding, 2),
		decorate(12, spv.DecorationDescriptorSet, 0),
		decorate(12, spv.DecorationBinding, 0),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypePointer, 5, uint32(spv.StorageClassUniform), 1),
		op(spv.OpVariable, 5, 10, uint32(spv.StorageClassUniform)),
		op(spv.OpVariable, 5, 11, uint32(spv.StorageClassUniform)),
		op(spv.OpVariable, 5, 12, uint32(spv.StorageClassUniform)),
	)

	if len(info.DescriptorSets) != 2 {
		t.Fatalf("sets: got %d, want 2", len(info.DescriptorSets))
	}
	set0, set1 := info.DescriptorSets[0], info.DescriptorSets[1]
	if set0.Set != 0 || set1.Set != 1 {
		t.Fatalf("set order: %d, %d", set0.Set, set1.Set)
	}
	if len(set0.Descriptors) != 2 || set0.Descriptors[0].Index != 0 || set0.Descriptors[1].Index != 2 {
		t.Errorf("set 0 bindings: %+v", set0.Descriptors)
	}
	if len(set1.Descriptors) != 1 || set1.Descriptors[0].Index != 0 {
		t.Errorf("set 1 bindings: %+v", set1.Descriptors)
	}
}

func TestUnnamedDescriptorPlaceholders(t *testing.T) {
	info := reflectModule(t,
		decorate(10, spv.DecorationDescriptorSet, 0),
		decorate(10, spv.DecorationBinding, 0),
		decorate(11, spv.DecorationDescriptorSet, 0),
		decorate(11, spv.DecorationBinding, 1),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypePointer, 5, uint32(spv.StorageClassUniform), 1),
		op(spv.OpVariable, 5, 10, uint32(spv.StorageClassUniform)),
		op(spv.OpVariable, 5, 11, uint32(spv.StorageClassUniform)),
	)

	ds := info.DescriptorSets[0].Descriptors
	if ds[0].Name != "$0" || ds[1].Name != "$1" {
		t.Errorf("placeholders: %q, %q", ds[0].Name, ds[1].Name)
	}
}

func TestEntryPointOrdering(t *testing.T) {
	info := reflectModule(t,
		entryPoint(spv.ExecutionModelFragment, 21, "zmain"),
		entryPoint(spv.ExecutionModelFragment, 22, "amain"),
		entryPoint(spv.ExecutionModelVertex, 20, "main"),
	)

	if len(info.EntryPoints) != 3 {
		t.Fatalf("entry points: got %d", len(info.EntryPoints))
	}
	got := []struct {
		stage reflection.Stage
		name  string
	}{
		{info.EntryPoints[0].Stage, info.EntryPoints[0].Name},
		{info.EntryPoints[1].Stage, info.EntryPoints[1].Name},
		{info.EntryPoints[2].Stage, info.EntryPoints[2].Name},
	}
	want := []struct {
		stage reflection.Stage
		name  string
	}{
		{reflection.StageVertex, "main"},
		{reflection.StageFragment, "amain"},
		{reflection.StageFragment, "zmain"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry point %d: got %v %q, want %v %q", i, got[i].stage, got[i].name, want[i].stage, want[i].name)
		}
	}
}

func TestInputOrdering(t *testing.T) {
	info := reflectModule(t,
		entryPoint(spv.ExecutionModelVertex, 20, "main", 9, 10),
		decorate(9, spv.DecorationLocation, 3),
		decorate(10, spv.DecorationLocation, 1),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypePointer, 8, uint32(spv.StorageClassInput), 1),
		op(spv.OpVariable, 8, 9, uint32(spv.StorageClassInput)),
		op(spv.OpVariable, 8, 10, uint32(spv.StorageClassInput)),
	)

	ins := info.EntryPoints[0].Inputs
	if len(ins) != 2 || ins[0].Index != 1 || ins[1].Index != 3 {
		t.Errorf("input order: %+v", ins)
	}
}

func TestComputeStage(t *testing.T) {
	info := reflectModule(t,
		entryPoint(spv.ExecutionModelGLCompute, 20, "main"),
	)
	if info.EntryPoints[0].Stage != reflection.StageCompute {
		t.Errorf("stage: got %v, want Compute", info.EntryPoints[0].Stage)
	}
}

func TestUnsupportedStage(t *testing.T) {
	err := reflectErr(t,
		entryPoint(spv.ExecutionModelKernel, 20, "main"),
	)
	if !errors.IsKind(err, errors.KindUnsupportedStage) {
		t.Errorf("expected UnsupportedStage, got %v", err)
	}
}

func TestBadStorageClass(t *testing.T) {
	err := reflectErr(t,
		entryPoint(spv.ExecutionModelVertex, 20, "main", 9),
		decorate(9, spv.DecorationLocation, 0),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypePointer, 8, uint32(spv.StorageClassPrivate), 1),
		op(spv.OpVariable, 8, 9, uint32(spv.StorageClassPrivate)),
	)
	if !errors.IsKind(err, errors.KindBadStorageClass) {
		t.Errorf("expected BadStorageClass, got %v", err)
	}
}

func TestUniformNotPointer(t *testing.T) {
	err := reflectErr(t,
		decorate(6, spv.DecorationDescriptorSet, 0),
		decorate(6, spv.DecorationBinding, 0),
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpVariable, 1, 6, uint32(spv.StorageClassUniform)),
	)
	if !errors.IsKind(err, errors.KindBadType) {
		t.Errorf("expected BadType, got %v", err)
	}
}

func TestNonResourceVariablesIgnored(t *testing.T) {
	// Private and workgroup variables are not descriptors.
	info := reflectModule(t,
		op(spv.OpTypeFloat, 1, 32),
		op(spv.OpTypePointer, 5, uint32(spv.StorageClassPrivate), 1),
		op(spv.OpVariable, 5, 10, uint32(spv.StorageClassPrivate)),
		op(spv.OpTypePointer, 6, uint32(spv.StorageClassWorkgroup), 1),
		op(spv.OpVariable, 6, 11, uint32(spv.StorageClassWorkgroup)),
	)
	if len(info.DescriptorSets) != 0 {
		t.Errorf("descriptor sets: got %+v, want none", info.DescriptorSets)
	}
}
