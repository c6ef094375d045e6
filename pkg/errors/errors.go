// Package errors provides structured error handling for the Castella engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a construction-time contract violation.
	KindContract
	// KindRender indicates a rendering error.
	KindRender
	// KindConfig indicates a theme or configuration loading error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CastellaError represents a structured error in the Castella engine.
type CastellaError struct {
	// Op is the operation that failed (e.g., "theme.LoadFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CastellaError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CastellaError) Unwrap() error {
	return e.Err
}

// ContractError represents a construction-time contract violation, such as a
// CONTENT layout given an expanding child. These are programming errors and
// are raised as panics at the call that introduces the violation, never
// silently coerced.
type ContractError struct {
	// Op is the operation whose contract was violated (e.g., "core.Layout.Add").
	Op string
	// Reason describes the violated invariant.
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// NewContract constructs a ContractError with a formatted reason.
func NewContract(op, format string, args ...any) *ContractError {
	return &ContractError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.App.Redraw").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Castella engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *CastellaError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
