package repl

import (
	"fmt"
	"rowstore/pkg/database"
	dberror "rowstore/pkg/error"
	"rowstore/pkg/logging"
	"rowstore/pkg/row"
	"rowstore/pkg/storage/page"
	"rowstore/pkg/tables"
	"strings"
)

// MetaCommandResult is the outcome of a dot-command.
type MetaCommandResult int

const (
	MetaCommandSuccess MetaCommandResult = iota
	MetaCommandExit
	MetaCommandUnrecognized
)

// Response is what one input line produces.
type Response struct {
	Lines []string
	// Exit is set by .exit; no further lines should be read.
	Exit bool
	// Result is set for statements, nil for meta-commands.
	Result *database.QueryResult
	// Err carries the UNRECOGNIZED_COMMAND error for unknown meta-commands.
	Err error
}

// Dispatcher classifies input lines and routes them either to a meta-command
// handler or, through the database, to the preparer and executor.
type Dispatcher struct {
	db *database.Database
}

func NewDispatcher(db *database.Database) *Dispatcher {
	return &Dispatcher{db: db}
}

// IsMetaCommand reports whether line is a dot-command.
func IsMetaCommand(line string) bool {
	return strings.HasPrefix(line, ".")
}

// Dispatch handles one line with its terminator already stripped.
// The returned error is non-nil only for fatal internal failures.
func (d *Dispatcher) Dispatch(line string) (Response, error) {
	if IsMetaCommand(line) {
		return d.dispatchMeta(line), nil
	}

	res, err := d.db.ExecuteQuery(line)
	if err != nil {
		return Response{}, err
	}
	return Response{Lines: res.Lines, Result: &res}, nil
}

func (d *Dispatcher) dispatchMeta(line string) Response {
	result, lines := doMetaCommand(line)
	switch result {
	case MetaCommandExit:
		return Response{Exit: true}
	case MetaCommandUnrecognized:
		err := dberror.New(dberror.ErrCategoryUser, dberror.CodeUnrecognizedCommand, "unrecognized meta-command").
			WithDetail("%q", line).
			WithHint("supported commands are .exit and .constants").
			At("Dispatch", "Dispatcher")
		logging.WithComponent("dispatcher").Debug("meta-command rejected", "error", err)
		return Response{
			Lines: []string{fmt.Sprintf("Unrecognized command '%s'.", line)},
			Err:   err,
		}
	default:
		return Response{Lines: lines}
	}
}

func doMetaCommand(line string) (MetaCommandResult, []string) {
	switch line {
	case ".exit":
		return MetaCommandExit, nil
	case ".constants":
		return MetaCommandSuccess, constantLines()
	default:
		return MetaCommandUnrecognized, nil
	}
}

func constantLines() []string {
	return []string{
		"Constants:",
		fmt.Sprintf("ROW_SIZE: %d", row.Size),
		fmt.Sprintf("PAGE_SIZE: %d", page.PageSize),
		fmt.Sprintf("ROWS_PER_PAGE: %d", tables.RowsPerPage),
		fmt.Sprintf("TABLE_MAX_PAGES: %d", page.TableMaxPages),
		fmt.Sprintf("TABLE_MAX_ROWS: %d", tables.MaxRows),
	}
}
