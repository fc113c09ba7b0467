package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode  Phase = "decode"  // binary to instruction stream
	PhaseLookup  Phase = "lookup"  // module index queries
	PhaseResolve Phase = "resolve" // type tree folding
	PhaseReflect Phase = "reflect" // interface extraction
)

// Kind categorizes the error
type Kind string

const (
	KindNotSpirV               Kind = "not_spirv"
	KindMalformedBinary        Kind = "malformed_binary"
	KindMissingNullTerminator  Kind = "missing_null_terminator"
	KindUnknownID              Kind = "unknown_id"
	KindDecorationSizeMismatch Kind = "decoration_size_mismatch"
	KindBadType                Kind = "bad_type"
	KindBadArrayLength         Kind = "bad_array_length"
	KindUnsupportedImageDim    Kind = "unsupported_image_dim"
	KindMissingDecoration      Kind = "missing_decoration"
	KindUnsupportedStage       Kind = "unsupported_stage"
	KindBadStorageClass        Kind = "bad_storage_class"
)

// NoID marks the ID field as unset.
const NoID uint32 = 0xFFFFFFFF

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
	Path   []string
	ID     uint32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}

	if e.ID != NoID {
		b.WriteString(" %")
		b.WriteString(strconv.FormatUint(uint64(e.ID), 10))
	}

	if e.Detail != "" {
		if e.Op != "" || e.ID != NoID {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two errors match when their
// Phase and Kind agree; an empty Phase on the target matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && e.Phase != t.Phase {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is an *Error of the given kind, at any phase.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			ID:    NoID,
		},
	}
}

// Path sets the location path
func (b *Builder) Path(parts ...string) *Builder {
	b.err.Path = parts
	return b
}

// Op sets the opcode name being processed
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// ID sets the result id involved
func (b *Builder) ID(id uint32) *Builder {
	b.err.ID = id
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotSpirV creates a header rejection error
func NotSpirV(detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindNotSpirV,
		Detail: detail,
		ID:     NoID,
	}
}

// Malformed creates a malformed binary error
func Malformed(op string, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedBinary,
		Op:     op,
		Detail: detail,
		ID:     NoID,
	}
}

// MissingNullTerminator creates a string framing error
func MissingNullTerminator(op string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMissingNullTerminator,
		Op:     op,
		Detail: "string operand has no NUL byte within the instruction",
		ID:     NoID,
	}
}

// UnknownID creates an unresolved result-id error
func UnknownID(phase Phase, id uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownID,
		Detail: "no instruction defines this result id",
		ID:     id,
	}
}

// DecorationSizeMismatch creates a decoration payload size error
func DecorationSizeMismatch(decoration string, want, got int) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindDecorationSizeMismatch,
		Detail: fmt.Sprintf("decoration %s payload is %d words, caller requested %d", decoration, got, want),
		ID:     NoID,
	}
}

// BadType creates a structural type mismatch error
func BadType(path []string, op string, detail string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindBadType,
		Path:   path,
		Op:     op,
		Detail: detail,
		ID:     NoID,
	}
}

// BadArrayLength creates an array length constant error
func BadArrayLength(id uint32, detail string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindBadArrayLength,
		Detail: detail,
		ID:     id,
	}
}

// UnsupportedImageDim creates an image dimensionality error
func UnsupportedImageDim(dim string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindUnsupportedImageDim,
		Detail: fmt.Sprintf("image dimensionality %s has no sampler view type", dim),
		ID:     NoID,
	}
}

// MissingDecoration creates a required decoration error
func MissingDecoration(name string, decoration string) *Error {
	return &Error{
		Phase:  PhaseReflect,
		Kind:   KindMissingDecoration,
		Path:   []string{name},
		Detail: fmt.Sprintf("uniform variable lacks the %s decoration", decoration),
		ID:     NoID,
	}
}

// UnsupportedStage creates an execution model error
func UnsupportedStage(model string) *Error {
	return &Error{
		Phase:  PhaseReflect,
		Kind:   KindUnsupportedStage,
		Detail: fmt.Sprintf("execution model %s is not a graphics stage", model),
		ID:     NoID,
	}
}

// BadStorageClass creates an interface storage class error
func BadStorageClass(name string, class string) *Error {
	return &Error{
		Phase:  PhaseReflect,
		Kind:   KindBadStorageClass,
		Path:   []string{name},
		Detail: fmt.Sprintf("interface variable has storage class %s, expected Input or Output", class),
		ID:     NoID,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		ID:     NoID,
	}
}
