// Package errors provides standardized error handling for the mapping
// compiler. It includes error classification, standard error variables, and
// helper functions for consistent error wrapping across schema construction,
// compilation and generated reader/writer execution.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorTransient represents temporary errors that may be retried by the caller
	ErrorTransient ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input, schema or graph content
	ErrorInvalid
	// ErrorFatal represents unrecoverable errors that should stop a compilation run
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransient:
		return "transient"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Schema construction errors
	ErrUnknownMember        = errors.New("unknown member reference")
	ErrConflictingPathModes = errors.New("conflicting path specification modes")
	ErrUndeclaredBlank      = errors.New("undeclared blank node")
	ErrMixedBindingTriples  = errors.New("binding mixes scalar and per-element triples")
	ErrBadTriplePosition    = errors.New("unsupported node role in triple position")
	ErrBadTemplate          = errors.New("malformed path template")
	ErrMissingAccessor      = errors.New("member accessor not attached")

	// Registry and ordering errors
	ErrDuplicateClass = errors.New("class already declared")
	ErrUnknownClass   = errors.New("class not declared")
	ErrBaseCycle      = errors.New("cyclic base class dependency")

	// Namespace errors
	ErrUnknownPrefix = errors.New("unknown namespace prefix")

	// Generated reader/writer errors
	ErrNoMatch     = errors.New("no statement matches required pattern")
	ErrDecode      = errors.New("node cannot be decoded into member value")
	ErrInvalidNode = errors.New("invalid node reference")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// SchemaError identifies a schema-level failure by class and, when the
// failure is tied to one binding, by member. Schema errors abort generation
// for the offending class; independent classes may continue in partial-run
// mode.
type SchemaError struct {
	Class  string
	Member string
	Err    error
}

// Error implements the error interface
func (se *SchemaError) Error() string {
	if se.Member != "" {
		return fmt.Sprintf("class %s, member %s: %v", se.Class, se.Member, se.Err)
	}
	return fmt.Sprintf("class %s: %v", se.Class, se.Err)
}

// Unwrap returns the underlying error
func (se *SchemaError) Unwrap() error {
	return se.Err
}

// NewSchemaError creates a SchemaError for a class-level failure
func NewSchemaError(class string, err error) *SchemaError {
	return &SchemaError{Class: class, Err: err}
}

// NewMemberError creates a SchemaError tied to one member binding
func NewMemberError(class, member string, err error) *SchemaError {
	return &SchemaError{Class: class, Member: member, Err: err}
}

// IsTransient checks if an error is transient and may be retried by the caller
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorTransient
	}
	return false
}

// IsFatal checks if an error should stop the whole compilation run
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrBaseCycle)
}

// IsInvalid checks if an error is due to invalid input. Schema construction
// failures and unmatched required patterns both classify as invalid: neither
// is retryable, and neither is fatal for independent classes or reads.
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return true
	}
	return errors.Is(err, ErrNoMatch) ||
		errors.Is(err, ErrDecode) ||
		errors.Is(err, ErrUnknownPrefix) ||
		errors.Is(err, ErrUnknownMember) ||
		errors.Is(err, ErrConflictingPathModes) ||
		errors.Is(err, ErrUndeclaredBlank) ||
		errors.Is(err, ErrMixedBindingTriples)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorTransient
	}
	if IsFatal(err) {
		return ErrorFatal
	}
	if IsInvalid(err) {
		return ErrorInvalid
	}
	if IsTransient(err) {
		return ErrorTransient
	}
	// Unknown errors are treated as invalid: the compiler never retries
	// internally, retry is a caller policy applied to whole operations.
	return ErrorInvalid
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapTransient(), WrapFatal(), or WrapInvalid() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapTransient wraps an error as transient with context
func WrapTransient(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return newClassified(ErrorTransient, err, component, method,
		fmt.Sprintf("%s.%s: %s failed: %v", component, method, action, err))
}

// WrapInvalid wraps an error as invalid input with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return newClassified(ErrorInvalid, err, component, method,
		fmt.Sprintf("%s.%s: %s failed: %v", component, method, action, err))
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return newClassified(ErrorFatal, err, component, method,
		fmt.Sprintf("%s.%s: %s failed: %v", component, method, action, err))
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Re-exported so callers need only one errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
// Re-exported so callers need only one errors import.
func New(text string) error {
	return errors.New(text)
}
