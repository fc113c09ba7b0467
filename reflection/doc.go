// Package reflection extracts the external interface of a decoded SPIR-V
// module: entry points, per-stage inputs and outputs, and resource
// bindings grouped by descriptor set.
//
// The extracted ModuleInfo is a detached, immutable record: it holds no
// references into the decoded instruction stream or the original word
// buffer, so it can be shared freely across goroutines. Types are folded
// into a recursive tree of numeric, array, structure, and sampler nodes.
//
//	module, _ := spv.Decode(words)
//	info, err := reflection.Interface(module)
//	for _, set := range info.DescriptorSets {
//	    for _, d := range set.Descriptors {
//	        fmt.Println(set.Set, d.Index, d.Name)
//	    }
//	}
//
// Interface variables without a Location decoration are deliberately
// skipped: built-in blocks such as gl_PerVertex carry no location and are
// not application-level inputs or outputs.
package reflection
