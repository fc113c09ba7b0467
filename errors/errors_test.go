package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want []string
	}{
		{
			name: "phase and kind",
			err:  New(PhaseDecode, KindMalformedBinary).Build(),
			want: []string{"[decode]", "malformed_binary"},
		},
		{
			name: "with path",
			err:  New(PhaseResolve, KindBadType).Path("Transform", "mvp").Build(),
			want: []string{"[resolve]", "bad_type", "at Transform.mvp"},
		},
		{
			name: "with op and id",
			err:  New(PhaseLookup, KindUnknownID).Op("OpTypeVector").ID(42).Build(),
			want: []string{"OpTypeVector", "%42"},
		},
		{
			name: "with detail",
			err:  New(PhaseReflect, KindMissingDecoration).Detail("no %s", "Binding").Build(),
			want: []string{"no Binding"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := UnknownID(PhaseResolve, 7)

	if !stderrors.Is(err, &Error{Phase: PhaseResolve, Kind: KindUnknownID}) {
		t.Error("expected match on phase and kind")
	}
	if !stderrors.Is(err, &Error{Kind: KindUnknownID}) {
		t.Error("expected empty phase to match any phase")
	}
	if stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindUnknownID}) {
		t.Error("unexpected match across phases")
	}
	if stderrors.Is(err, &Error{Phase: PhaseResolve, Kind: KindBadType}) {
		t.Error("unexpected match across kinds")
	}
}

func TestIsKind(t *testing.T) {
	err := Malformed("OpName", "truncated")

	if !IsKind(err, KindMalformedBinary) {
		t.Error("IsKind should match the error's own kind")
	}
	if IsKind(err, KindNotSpirV) {
		t.Error("IsKind should not match a different kind")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !IsKind(wrapped, KindMalformedBinary) {
		t.Error("IsKind should unwrap standard wrappers")
	}

	if IsKind(nil, KindMalformedBinary) {
		t.Error("IsKind(nil) should be false")
	}
	if IsKind(stderrors.New("plain"), KindMalformedBinary) {
		t.Error("IsKind should be false for non-structured errors")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("inner")
	err := Wrap(PhaseDecode, KindMalformedBinary, cause, "instruction overruns buffer")

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "caused by: inner") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		err   *Error
		phase Phase
		kind  Kind
	}{
		{NotSpirV("too short"), PhaseDecode, KindNotSpirV},
		{Malformed("OpName", "x"), PhaseDecode, KindMalformedBinary},
		{MissingNullTerminator("OpName"), PhaseDecode, KindMissingNullTerminator},
		{UnknownID(PhaseLookup, 3), PhaseLookup, KindUnknownID},
		{DecorationSizeMismatch("Binding", 1, 2), PhaseLookup, KindDecorationSizeMismatch},
		{BadType(nil, "OpTypeMatrix", "x"), PhaseResolve, KindBadType},
		{BadArrayLength(9, "x"), PhaseResolve, KindBadArrayLength},
		{UnsupportedImageDim("Rect"), PhaseResolve, KindUnsupportedImageDim},
		{MissingDecoration("ubo", "Binding"), PhaseReflect, KindMissingDecoration},
		{UnsupportedStage("Kernel"), PhaseReflect, KindUnsupportedStage},
		{BadStorageClass("v", "Private"), PhaseReflect, KindBadStorageClass},
	}

	for _, tt := range tests {
		if tt.err.Phase != tt.phase {
			t.Errorf("%s: phase = %q, want %q", tt.kind, tt.err.Phase, tt.phase)
		}
		if tt.err.Kind != tt.kind {
			t.Errorf("%s: kind = %q, want %q", tt.kind, tt.err.Kind, tt.kind)
		}
	}
}
