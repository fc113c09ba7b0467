package main

import (
	"fmt"
	"strings"

	"github.com/gpukit/spirv-reflect/reflection"
)

// glslType renders a reflected type the way a GLSL author would write it.
func glslType(t *reflection.Type) string {
	switch t.Kind {
	case reflection.KindNumeric:
		return glslNumeric(t.Numeric)
	case reflection.KindArray:
		return glslArray(t.Array)
	case reflection.KindStruct:
		return glslStruct(t.Struct)
	case reflection.KindSampler:
		return glslSampler(t.Sampler)
	}
	return "?"
}

func glslNumeric(n *reflection.Numeric) string {
	if n.RowCount == 1 && n.ColumnCount == 1 {
		switch {
		case n.ElemKind == reflection.ElemFloat && n.ElemWidth == 32:
			return "float"
		case n.ElemKind == reflection.ElemFloat && n.ElemWidth == 64:
			return "double"
		case n.ElemKind == reflection.ElemInt && n.ElemWidth == 32:
			return "int"
		case n.ElemKind == reflection.ElemUint && n.ElemWidth == 32:
			return "unsigned int"
		}
		return fmt.Sprintf("%s%d", n.ElemKind, n.ElemWidth)
	}

	var prefix string
	switch {
	case n.ElemKind == reflection.ElemFloat && n.ElemWidth == 32:
		prefix = ""
	case n.ElemKind == reflection.ElemFloat && n.ElemWidth == 64:
		prefix = "d"
	case n.ElemKind == reflection.ElemInt && n.ElemWidth == 32:
		prefix = "i"
	case n.ElemKind == reflection.ElemUint && n.ElemWidth == 32:
		prefix = "u"
	default:
		prefix = fmt.Sprintf("%s%d_", n.ElemKind, n.ElemWidth)
	}

	if n.ColumnCount == 1 {
		return fmt.Sprintf("%svec%d", prefix, n.RowCount)
	}
	if n.ColumnCount == n.RowCount {
		return fmt.Sprintf("%smat%d", prefix, n.RowCount)
	}
	return fmt.Sprintf("%smat%dx%d", prefix, n.ColumnCount, n.RowCount)
}

func glslArray(a *reflection.Array) string {
	var b strings.Builder
	if a.Stride != nil {
		fmt.Fprintf(&b, "layout(stride=%d) ", *a.Stride)
	}
	fmt.Fprintf(&b, "%s[%d]", glslType(a.Elem), a.ElemCount)
	return b.String()
}

func glslStruct(s *reflection.Struct) string {
	var b strings.Builder
	fmt.Fprintf(&b, "struct %s {\n", s.Name)
	for _, m := range s.Members {
		b.WriteString("  ")
		if m.Offset != nil {
			fmt.Fprintf(&b, "layout(offset=%d) ", *m.Offset)
		}
		fmt.Fprintf(&b, "%s : %s\n", m.Name, glslType(m.Type))
	}
	b.WriteString("}")
	return b.String()
}

func glslSampler(s *reflection.Sampler) string {
	var b strings.Builder
	switch s.ChannelKind {
	case reflection.ElemInt:
		b.WriteByte('i')
	case reflection.ElemUint:
		b.WriteByte('u')
	}

	b.WriteString("sampler")
	arrayed := false
	switch s.View {
	case reflection.View1D, reflection.View1DArray:
		b.WriteString("1D")
		arrayed = s.View == reflection.View1DArray
	case reflection.View2D, reflection.View2DArray:
		b.WriteString("2D")
		arrayed = s.View == reflection.View2DArray
	case reflection.View3D:
		b.WriteString("3D")
	case reflection.ViewCube, reflection.ViewCubeArray:
		b.WriteString("Cube")
		arrayed = s.View == reflection.ViewCubeArray
	}

	if s.Multisampled {
		b.WriteString("MS")
	}
	if arrayed {
		b.WriteString("Array")
	}
	if s.Shadow {
		b.WriteString("Shadow")
	}
	return b.String()
}
