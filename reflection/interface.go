package reflection

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/gpukit/spirv-reflect/errors"
	"github.com/gpukit/spirv-reflect/spv"
)

// Interface walks a decoded module and extracts its external interface.
//
// Extraction is all-or-nothing: any error yields no partial result. The
// returned ModuleInfo owns its type trees and strings outright.
func Interface(m *spv.Module) (*ModuleInfo, error) {
	var (
		descriptors  = map[uint32][]VariableInfo{}
		entryPoints  []EntryPointInfo
		unnamedCount int
	)

	for i := range m.Instructions {
		inst := &m.Instructions[i]

		switch inst.OpCode {
		case spv.OpVariable:
			// Uniform blocks use storage class Uniform; samplers use
			// UniformConstant.
			if inst.StorageClass != spv.StorageClassUniform && inst.StorageClass != spv.StorageClassUniformConstant {
				continue
			}

			name := m.Name(inst.ResultID)
			if name == "" {
				name = "$" + strconv.Itoa(unnamedCount)
				unnamedCount++
			}

			typ, err := resolvePointee(m, inst, name)
			if err != nil {
				return nil, err
			}

			set, ok, err := m.DecorationU32(inst.ResultID, spv.DecorationDescriptorSet)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errors.MissingDecoration(name, spv.DecorationDescriptorSet.String())
			}
			binding, ok, err := m.DecorationU32(inst.ResultID, spv.DecorationBinding)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errors.MissingDecoration(name, spv.DecorationBinding.String())
			}

			descriptors[set] = append(descriptors[set], VariableInfo{Index: binding, Name: name, Type: typ})

		case spv.OpEntryPoint:
			stage, err := stageFor(inst.ExecutionModel)
			if err != nil {
				return nil, err
			}
			ep := EntryPointInfo{Stage: stage, Name: inst.Str}

			for _, id := range inst.VarIDs {
				varInst, err := m.InstructionByResultID(id)
				if err != nil {
					return nil, err
				}
				name := m.Name(id)

				// Variables without a Location are built-in blocks such
				// as gl_PerVertex, not application-level interface.
				location, ok, err := m.DecorationU32(id, spv.DecorationLocation)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}

				typ, err := resolvePointee(m, varInst, name)
				if err != nil {
					return nil, err
				}

				info := VariableInfo{Index: location, Name: name, Type: typ}
				switch varInst.StorageClass {
				case spv.StorageClassInput:
					ep.Inputs = append(ep.Inputs, info)
				case spv.StorageClassOutput:
					ep.Outputs = append(ep.Outputs, info)
				default:
					return nil, errors.BadStorageClass(name, varInst.StorageClass.String())
				}
			}
			entryPoints = append(entryPoints, ep)
		}
	}

	info := &ModuleInfo{EntryPoints: entryPoints}

	sets := make([]uint32, 0, len(descriptors))
	for set := range descriptors {
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i] < sets[j] })
	for _, set := range sets {
		ds := descriptors[set]
		sort.SliceStable(ds, func(i, j int) bool { return ds[i].Index < ds[j].Index })
		info.DescriptorSets = append(info.DescriptorSets, DescriptorSetInfo{Set: set, Descriptors: ds})
	}

	sort.SliceStable(info.EntryPoints, func(i, j int) bool {
		a, b := &info.EntryPoints[i], &info.EntryPoints[j]
		if a.Stage != b.Stage {
			return a.Stage < b.Stage
		}
		return a.Name < b.Name
	})
	for i := range info.EntryPoints {
		ep := &info.EntryPoints[i]
		sort.SliceStable(ep.Inputs, func(a, b int) bool { return ep.Inputs[a].Index < ep.Inputs[b].Index })
		sort.SliceStable(ep.Outputs, func(a, b int) bool { return ep.Outputs[a].Index < ep.Outputs[b].Index })
	}

	Logger().Debug("extracted module interface",
		zap.Int("descriptor_sets", len(info.DescriptorSets)),
		zap.Int("entry_points", len(info.EntryPoints)))
	return info, nil
}

// resolvePointee follows a variable's pointer type and folds the pointee.
func resolvePointee(m *spv.Module, varInst *spv.Instruction, name string) (*Type, error) {
	ptr, err := m.InstructionByResultID(varInst.IDs[0])
	if err != nil {
		return nil, err
	}
	if ptr.OpCode != spv.OpTypePointer {
		return nil, errors.New(errors.PhaseReflect, errors.KindBadType).
			Path(name).
			Op(ptr.OpCode.String()).
			Detail("variable type is not a pointer").
			Build()
	}
	pointee, err := m.InstructionByResultID(ptr.IDs[0])
	if err != nil {
		return nil, err
	}
	return resolveType(m, pointee, 0, []string{name})
}

// stageFor maps an execution model to a canonical graphics stage.
func stageFor(model spv.ExecutionModel) (Stage, error) {
	switch model {
	case spv.ExecutionModelVertex:
		return StageVertex, nil
	case spv.ExecutionModelTessellationControl:
		return StageTessellationControl, nil
	case spv.ExecutionModelTessellationEvaluation:
		return StageTessellationEvaluation, nil
	case spv.ExecutionModelGeometry:
		return StageGeometry, nil
	case spv.ExecutionModelFragment:
		return StageFragment, nil
	case spv.ExecutionModelGLCompute:
		return StageCompute, nil
	}
	return 0, errors.UnsupportedStage(model.String())
}
