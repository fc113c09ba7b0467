// Package errors provides structured error types for the spirv-reflect library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: a path of nested locations,
// the opcode being processed, the result id involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindBadType).
//		Path("Transform", "mvp").
//		Op("OpTypeVector").
//		Detail("vector element is not numeric").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownID(errors.PhaseLookup, id)
//	err := errors.MissingDecoration(path, "Binding")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
