package statements

import (
	"fmt"
	"rowstore/pkg/row"
)

// InsertStatement appends one row to the table.
type InsertStatement struct {
	BaseStatement
	Row row.Row
}

// NewInsertStatement creates a new INSERT statement
func NewInsertStatement(r row.Row) *InsertStatement {
	return &InsertStatement{
		BaseStatement: NewBaseStatement(Insert),
		Row:           r,
	}
}

// Validate enforces the value constraints a row must meet before it can be
// stored: a positive id and text that fits the reserved field widths.
func (s *InsertStatement) Validate() error {
	if s.Row.ID <= 0 {
		return NewValidationError(Insert, IDMustBePositive, "id", fmt.Sprintf("must be positive, got %d", s.Row.ID))
	}

	if len(s.Row.Username) > row.UsernameMaxLength {
		return NewValidationError(Insert, StringTooLong, "username",
			fmt.Sprintf("length %d exceeds %d bytes", len(s.Row.Username), row.UsernameMaxLength))
	}

	if len(s.Row.Email) > row.EmailMaxLength {
		return NewValidationError(Insert, StringTooLong, "email",
			fmt.Sprintf("length %d exceeds %d bytes", len(s.Row.Email), row.EmailMaxLength))
	}

	return nil
}

// String returns a string representation of the INSERT statement
func (s *InsertStatement) String() string {
	return fmt.Sprintf("insert %d %s %s", s.Row.ID, s.Row.Username, s.Row.Email)
}
