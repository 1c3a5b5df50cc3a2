package database

import (
	"errors"
	"fmt"
	dberror "rowstore/pkg/error"
	"rowstore/pkg/parser/statements"
	"rowstore/pkg/planner"
	"strconv"
)

// Response texts written back for each outcome.
const (
	MsgExecuted      = "Executed."
	MsgSyntaxError   = "Syntax error. Could not parse statement."
	MsgIDNotPositive = "ID must be positive."
	MsgStringTooLong = "String is too long."
	MsgTableFull     = "Error: Table full."
)

// Columns of the single table, in storage order.
var Columns = []string{"id", "username", "email"}

// UnrecognizedKeyword formats the response for a line whose first token is
// not a statement keyword.
func UnrecognizedKeyword(line string) string {
	return fmt.Sprintf("Unrecognized keyword at start of '%s'.", line)
}

// formatResult converts an executor result to its text response
func formatResult(raw planner.Result) QueryResult {
	switch r := raw.(type) {
	case *planner.SelectQueryResult:
		rows := make([][]string, 0, len(r.Rows))
		lines := make([]string, 0, len(r.Rows)+1)

		it := r.Iterator()
		for it.HasNext() {
			rw, _ := it.Next()
			rows = append(rows, []string{strconv.FormatInt(int64(rw.ID), 10), rw.Username, rw.Email})
			lines = append(lines, rw.String())
		}
		lines = append(lines, MsgExecuted)

		return QueryResult{
			Success: true,
			Columns: Columns,
			Rows:    rows,
			Message: fmt.Sprintf("%d row(s) returned", len(rows)),
			Lines:   lines,
		}

	case *planner.DMLResult:
		return QueryResult{
			Success:      true,
			RowsAffected: r.RowsAffected,
			Message:      fmt.Sprintf("%d row(s) inserted", r.RowsAffected),
			Lines:        []string{MsgExecuted},
		}
	}

	return QueryResult{Success: true, Message: raw.String(), Lines: []string{MsgExecuted}}
}

// formatError maps a statement failure to its text response. The second
// return is non-nil only for failures that must stop the process.
func formatError(err error) (QueryResult, error) {
	var pe *statements.PrepareError
	if errors.As(err, &pe) {
		return failed(prepareMessage(pe)), nil
	}

	if dberror.HasCode(err, dberror.CodeTableFull) {
		return failed(MsgTableFull), nil
	}

	return QueryResult{}, err
}

func prepareMessage(pe *statements.PrepareError) string {
	switch pe.Kind {
	case statements.UnrecognizedStatement:
		return UnrecognizedKeyword(pe.Line)
	case statements.IDMustBePositive:
		return MsgIDNotPositive
	case statements.StringTooLong:
		return MsgStringTooLong
	default:
		return MsgSyntaxError
	}
}

func failed(msg string) QueryResult {
	return QueryResult{Success: false, Message: msg, Lines: []string{msg}}
}
