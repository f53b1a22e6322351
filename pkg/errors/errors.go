// Package errors provides structured error handling for OmniGUI.
//
// Layout failures are returned as *LayoutError values that match the
// ErrInvalidArgument or ErrInvariant sentinels under errors.Is. Setup
// mistakes such as registering a property twice are programming errors and
// are raised with panic(*ProgrammingError).
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a caller passed an unusable value,
	// such as a NaN size to Measure.
	KindInvalidArgument
	// KindInvariant indicates the engine computed an impossible result.
	KindInvariant
	// KindProgramming indicates a setup-time mistake.
	KindProgramming
	// KindPlatform indicates a platform adapter failure.
	KindPlatform
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates an invalid configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid-argument"
	case KindInvariant:
		return "invariant"
	case KindProgramming:
		return "programming"
	case KindPlatform:
		return "platform"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Sentinels matched by LayoutError.Is.
var (
	ErrInvalidArgument = stderrors.New("invalid argument")
	ErrInvariant       = stderrors.New("invariant violation")
)

// New is errors.New from the standard library.
func New(text string) error { return stderrors.New(text) }

// Is is errors.Is from the standard library.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As is errors.As from the standard library.
func As(err error, target any) bool { return stderrors.As(err, target) }

// OmniError represents a structured error reported to the global handler.
type OmniError struct {
	// Op is the operation that failed (e.g., "terminal.Run").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *OmniError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *OmniError) Unwrap() error {
	return e.Err
}

// LayoutError is returned by Measure and Arrange.
type LayoutError struct {
	// Op is "Measure" or "Arrange".
	Op string
	// Kind is KindInvalidArgument or KindInvariant.
	Kind ErrorKind
	// Node is the kind name of the node that failed.
	Node string
	// Value is the offending size or rectangle.
	Value any
	// Reason describes the failure.
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s.%s [%s]: %s (got %v)", e.Node, e.Op, e.Kind, e.Reason, e.Value)
}

// Is matches the sentinel for the error kind.
func (e *LayoutError) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrInvariant:
		return e.Kind == KindInvariant
	}
	return false
}

// ProgrammingError is the panic payload for setup-time mistakes.
type ProgrammingError struct {
	Op      string
	Message string
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Panicf panics with a *ProgrammingError.
func Panicf(op, format string, args ...any) {
	panic(&ProgrammingError{Op: op, Message: fmt.Sprintf(format, args...)})
}

// BoundaryError represents a panic recovered at a frame or event boundary.
type BoundaryError struct {
	// Phase is where the panic was caught ("frame", "pointer", "key").
	Phase string
	// Recovered is the value passed to panic().
	Recovered any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("panic during %s: %v", e.Phase, e.Recovered)
}

// Unwrap exposes the recovered value when it is an error.
func (e *BoundaryError) Unwrap() error {
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}
