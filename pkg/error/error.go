package error

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies errors by their nature and appropriate handling strategy.
type ErrorCategory int

const (
	// ErrCategoryUser represents errors caused by invalid user input.
	// Examples: malformed statements, unknown keywords, values out of range.
	// These errors are reported and the engine keeps accepting commands.
	ErrCategoryUser ErrorCategory = iota

	// ErrCategorySystem represents resource limits of the engine itself.
	// Example: the table has no free row slots left.
	ErrCategorySystem

	// ErrCategoryData represents violated storage invariants.
	// Example: a page index beyond the configured arena bound.
	// These errors are fatal for the process.
	ErrCategoryData
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryUser:
		return "user"
	case ErrCategorySystem:
		return "system"
	case ErrCategoryData:
		return "data"
	default:
		return "unknown"
	}
}

// Error codes shared across the engine.
const (
	CodeSyntaxError           = "SYNTAX_ERROR"
	CodeUnrecognizedStatement = "UNRECOGNIZED_STATEMENT"
	CodeUnrecognizedCommand   = "UNRECOGNIZED_COMMAND"
	CodeIDMustBePositive      = "ID_MUST_BE_POSITIVE"
	CodeStringTooLong         = "STRING_TOO_LONG"
	CodeTableFull             = "TABLE_FULL"
	CodeCapacityExceeded      = "CAPACITY_EXCEEDED"
)

// DBError represents a structured database error with rich context information.
type DBError struct {
	// Code is a unique identifier for this error type (e.g., "TABLE_FULL").
	Code string

	// Category classifies the error for appropriate handling strategy.
	Category ErrorCategory

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	Detail string

	// Hint suggests how the user might fix or work around this error.
	Hint string

	// Operation identifies the operation that was being performed.
	// Examples: "Insert", "PageAt", "PrepareStatement".
	Operation string

	// Component identifies the system component where the error originated.
	// Examples: "Table", "Pager", "Preparer".
	Component string

	// Cause is the underlying error that triggered this database error.
	Cause error

	// Stack contains the call stack where this error was created.
	Stack []uintptr
}

// New creates a new DBError with the specified code, category, and message.
func New(category ErrorCategory, code, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Wrap wraps an existing error with operation and component context.
// If the error is already a DBError, missing context is filled in and the
// same error is returned.
func Wrap(err error, code, operation, component string) *DBError {
	if err == nil {
		return nil
	}

	if dbErr, ok := err.(*DBError); ok {
		if dbErr.Operation == "" {
			dbErr.Operation = operation
		}
		if dbErr.Component == "" {
			dbErr.Component = component
		}
		return dbErr
	}

	return &DBError{
		Code:      code,
		Category:  ErrCategorySystem,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// WithDetail sets Detail and returns the receiver for chaining.
func (e *DBError) WithDetail(format string, args ...any) *DBError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithHint sets Hint and returns the receiver for chaining.
func (e *DBError) WithHint(hint string) *DBError {
	e.Hint = hint
	return e
}

// At records where the error was raised and returns the receiver for chaining.
func (e *DBError) At(operation, component string) *DBError {
	e.Operation = operation
	e.Component = component
	return e
}

// captureStack skips runtime.Callers, captureStack and New/Wrap.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard Go error interface
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail (operation: Operation, component: Component) caused by: underlying error
func (e *DBError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error.
func (e *DBError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DBError carrying the same Code.
// This lets callers match with errors.Is(err, &DBError{Code: CodeTableFull}).
func (e *DBError) Is(target error) bool {
	t, ok := target.(*DBError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// HasCode reports whether any DBError in err's chain carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		if dbErr, ok := err.(*DBError); ok && dbErr.Code == code {
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

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *DBError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}
