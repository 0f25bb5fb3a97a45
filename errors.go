// Package govfi structured error types for better error handling
package govfi

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Grid construction with inconsistent bounds or size
	ErrTypeInvalidRange ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Numerical domain errors (logarithm of a non-positive argument)
	ErrTypeDomain
	// Memory or dispatch capacity errors
	ErrTypeResource
	// Kernel execution errors
	ErrTypeExecution
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Op      string      // Operation that failed
	Message string      // Human-readable message
	Err     error       // Underlying error if any
	Context interface{} // Additional context
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("govfi %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("govfi %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidRange:
		return "InvalidRange"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeDomain:
		return "Domain"
	case ErrTypeResource:
		return "ResourceExhausted"
	case ErrTypeExecution:
		return "Execution"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewInvalidRangeError creates a grid range error
func NewInvalidRangeError(op string, message string) error {
	return &Error{
		Type:    ErrTypeInvalidRange,
		Op:      op,
		Message: message,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &Error{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewDomainError creates a numerical domain error
func NewDomainError(op string, message string, context interface{}) error {
	return &Error{
		Type:    ErrTypeDomain,
		Op:      op,
		Message: message,
		Context: context,
	}
}

// NewResourceError creates a resource exhaustion error
func NewResourceError(op string, message string, err error) error {
	return &Error{
		Type:    ErrTypeResource,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewExecutionError creates a kernel execution error
func NewExecutionError(op string, message string, err error) error {
	return &Error{
		Type:    ErrTypeExecution,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Common pre-defined errors

var (
	// ErrOutOfMemory indicates device memory allocation failure
	ErrOutOfMemory = NewResourceError("Malloc", "out of device memory", nil)

	// ErrInvalidSize indicates invalid size parameter
	ErrInvalidSize = NewInvalidArgError("Malloc", "size must be positive")

	// ErrNullPointer indicates null pointer access
	ErrNullPointer = NewInvalidArgError("Memory", "null pointer")

	// ErrDoubleFree indicates double free attempt
	ErrDoubleFree = NewResourceError("Free", "double free detected", nil)
)

// IsInvalidRangeError checks if an error is a grid range error
func IsInvalidRangeError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeInvalidRange
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

// IsDomainError checks if an error is a numerical domain error
func IsDomainError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeDomain
	}
	return false
}

// IsResourceError checks if an error is a resource exhaustion error
func IsResourceError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeResource
	}
	return false
}
