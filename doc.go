// Package spirvreflect extracts the external interface of SPIR-V shader
// modules: entry points, per-stage inputs and outputs, and resource
// bindings grouped by descriptor set.
//
// Consumers use the extracted interface to build pipeline layouts, bind
// descriptor sets, and drive reflection-based rendering without keeping
// shader metadata in a side channel.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	spirvreflect/        Root package with the one-call facade
//	├── spv/             SPIR-V binary decoding: word reader, declarative
//	│                    operand schema, instruction stream, module index
//	├── reflection/      Type tree folding and interface extraction
//	├── errors/          Structured error types for debugging
//	└── cmd/             spirv-reflect command-line inspector
//
// # Quick Start
//
// Reflect a shader binary:
//
//	data, _ := os.ReadFile("shader.vert.spv")
//	info, err := spirvreflect.ReflectBytes(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, set := range info.DescriptorSets {
//	    for _, d := range set.Descriptors {
//	        fmt.Printf("set=%d binding=%d %s\n", set.Set, d.Index, d.Name)
//	    }
//	}
//
// # Concurrency
//
// Parsing is a pure function from a read-only word slice to a ModuleInfo.
// Distinct modules parse in parallel with no coordination, and a parsed
// ModuleInfo is immutable and shareable across goroutines.
package spirvreflect
