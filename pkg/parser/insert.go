package parser

import (
	"fmt"
	"rowstore/pkg/parser/statements"
	"rowstore/pkg/row"
	"strconv"
)

// insertArity is the number of tokens following the insert keyword.
const insertArity = 3

// InsertParser parses the arguments of an insert statement.
type InsertParser struct{}

// Parse consumes "<id> <username> <email>" from l, whose insert keyword has
// already been read, and validates the resulting row.
func (p *InsertParser) Parse(l *Lexer, line string) (*statements.InsertStatement, error) {
	args := l.Tokens()
	if len(args) != insertArity {
		return nil, statements.NewPrepareError(statements.SyntaxError, line,
			fmt.Sprintf("insert expects %d arguments, got %d", insertArity, len(args)))
	}

	id, err := strconv.ParseInt(args[0].Value, 10, 32)
	if err != nil {
		return nil, statements.NewPrepareError(statements.SyntaxError, line,
			fmt.Sprintf("invalid id %q", args[0].Value))
	}

	stmt := statements.NewInsertStatement(row.Row{
		ID:       int32(id),
		Username: args[1].Value,
		Email:    args[2].Value,
	})

	if err := stmt.Validate(); err != nil {
		if ve, ok := err.(*statements.ValidationError); ok {
			return nil, statements.NewPrepareError(ve.Kind, line, ve.Error())
		}
		return nil, statements.NewPrepareError(statements.SyntaxError, line, err.Error())
	}

	return stmt, nil
}
