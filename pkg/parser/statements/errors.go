package statements

import (
	"fmt"
	dberror "rowstore/pkg/error"
)

// ValidationError reports a statement whose shape is fine but whose values
// violate the row constraints.
type ValidationError struct {
	Statement StatementType
	Kind      PrepareErrorKind
	Field     string
	Message   string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("%s validation error: %s - %s", ve.Statement.String(), ve.Field, ve.Message)
}

func NewValidationError(stmt StatementType, kind PrepareErrorKind, field, message string) *ValidationError {
	return &ValidationError{
		Statement: stmt,
		Kind:      kind,
		Field:     field,
		Message:   message,
	}
}

// PrepareErrorKind distinguishes why a line could not become a statement.
type PrepareErrorKind int

const (
	// SyntaxError: wrong token count or an id that is not a 32-bit integer.
	SyntaxError PrepareErrorKind = iota
	// UnrecognizedStatement: the first token is not a known keyword.
	UnrecognizedStatement
	// IDMustBePositive: the id parsed but is zero or negative.
	IDMustBePositive
	// StringTooLong: username or email exceeds its field width.
	StringTooLong
)

func (k PrepareErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UnrecognizedStatement:
		return "UnrecognizedStatement"
	case IDMustBePositive:
		return "IDMustBePositive"
	case StringTooLong:
		return "StringTooLong"
	default:
		return "Unknown"
	}
}

func (k PrepareErrorKind) code() string {
	switch k {
	case UnrecognizedStatement:
		return dberror.CodeUnrecognizedStatement
	case IDMustBePositive:
		return dberror.CodeIDMustBePositive
	case StringTooLong:
		return dberror.CodeStringTooLong
	default:
		return dberror.CodeSyntaxError
	}
}

// PrepareError is returned by the preparer for every rejected line.
// The offending line is kept for error reporting.
type PrepareError struct {
	Kind  PrepareErrorKind
	Line  string
	Cause error
}

// NewPrepareError builds a PrepareError whose Cause is a user-category
// DBError carrying the kind's code. detail may be empty.
func NewPrepareError(kind PrepareErrorKind, line, detail string) *PrepareError {
	cause := dberror.New(dberror.ErrCategoryUser, kind.code(), kind.String()).At("PrepareStatement", "Preparer")
	cause.Detail = detail
	return &PrepareError{Kind: kind, Line: line, Cause: cause}
}

func (pe *PrepareError) Error() string {
	return fmt.Sprintf("prepare %q: %v", pe.Line, pe.Cause)
}

func (pe *PrepareError) Unwrap() error {
	return pe.Cause
}
