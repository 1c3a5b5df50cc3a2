package parser

import (
	"rowstore/pkg/logging"
	"rowstore/pkg/parser/statements"
)

// PrepareStatement turns one command line into a validated statement.
//
// It is the single gate for data-shape constraints: a statement it returns
// can be executed without further checks. Every rejection is a
// *statements.PrepareError carrying the original line.
//
// Supported statements:
//   - insert <id> <username> <email>
//   - select
func PrepareStatement(line string) (statements.Statement, error) {
	l := NewLexer(line)
	token := l.NextToken()

	var (
		stmt statements.Statement
		err  error
	)

	switch token.Type {
	case INSERT:
		stmt, err = (&InsertParser{}).Parse(l, line)
	case SELECT:
		stmt = statements.NewSelectStatement()
	default:
		err = statements.NewPrepareError(statements.UnrecognizedStatement, line, token.Value)
	}

	if err != nil {
		logging.WithComponent("preparer").Debug("statement rejected", "line", line, "error", err)
		return nil, err
	}
	return stmt, nil
}
