package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"no match", ErrNoMatch, true},
		{"decode failure", ErrDecode, true},
		{"unknown prefix", ErrUnknownPrefix, true},
		{"wrapped no match", fmt.Errorf("reading Pose: %w", ErrNoMatch), true},
		{"schema error", NewMemberError("Pose", "translation", ErrUndeclaredBlank), true},
		{"plain error", errors.New("boom"), false},
		{"classified invalid", WrapInvalid(errors.New("boom"), "Reader", "FromRDF", "decode"), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsInvalid(test.err); got != test.expected {
				t.Errorf("IsInvalid(%v) = %v, want %v", test.err, got, test.expected)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid config", ErrInvalidConfig, true},
		{"missing config", ErrMissingConfig, true},
		{"base cycle", ErrBaseCycle, true},
		{"no match is not fatal", ErrNoMatch, false},
		{"classified fatal", WrapFatal(errors.New("boom"), "Compiler", "Compile", "ordering"), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsFatal(test.err); got != test.expected {
				t.Errorf("IsFatal(%v) = %v, want %v", test.err, got, test.expected)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"schema error is invalid", NewSchemaError("Pose", ErrConflictingPathModes), ErrorInvalid},
		{"config error is fatal", ErrMissingConfig, ErrorFatal},
		{"unknown defaults to invalid", errors.New("boom"), ErrorInvalid},
		{"classified transient", WrapTransient(errors.New("boom"), "Store", "Find", "query"), ErrorTransient},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.err); got != test.expected {
				t.Errorf("Classify(%v) = %v, want %v", test.err, got, test.expected)
			}
		})
	}
}

func TestSchemaError_Error(t *testing.T) {
	classOnly := NewSchemaError("Pose", ErrConflictingPathModes)
	if classOnly.Error() != "class Pose: conflicting path specification modes" {
		t.Errorf("unexpected message: %s", classOnly.Error())
	}

	withMember := NewMemberError("Pose", "rotation", ErrUndeclaredBlank)
	if withMember.Error() != "class Pose, member rotation: undeclared blank node" {
		t.Errorf("unexpected message: %s", withMember.Error())
	}

	if !errors.Is(withMember, ErrUndeclaredBlank) {
		t.Error("SchemaError should unwrap to its cause")
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(base, "Writer", "ToRDF", "emitting triples")
	if err.Error() != "Writer.ToRDF: emitting triples failed: boom" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("Wrap should preserve the error chain")
	}
	if Wrap(nil, "a", "b", "c") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestClassifiedError_Unwrap(t *testing.T) {
	base := ErrNoMatch
	ce := WrapInvalid(base, "Reader", "FromRDF", "matching pattern")
	if !errors.Is(ce, ErrNoMatch) {
		t.Error("classified error should unwrap to sentinel")
	}
	var typed *ClassifiedError
	if !errors.As(ce, &typed) {
		t.Fatal("expected *ClassifiedError")
	}
	if typed.Component != "Reader" || typed.Operation != "FromRDF" {
		t.Errorf("unexpected context: %+v", typed)
	}
}
