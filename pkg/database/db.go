package database

import (
	"rowstore/pkg/logging"
	"rowstore/pkg/parser"
	"rowstore/pkg/planner"
	"rowstore/pkg/tables"
	"sync"
)

// Database owns the single table and runs command lines against it.
//
// One Database is created at process start and handed to the front end;
// nothing in the engine refers to it globally. The mutex only serializes
// the full-screen front end, whose commands run off its render loop.
type Database struct {
	table    *tables.Table
	executor *planner.Executor

	name  string
	mutex sync.Mutex
	stats *DatabaseStats
}

// DatabaseStats tracks statement counters
type DatabaseStats struct {
	QueriesExecuted int64
	ErrorCount      int64
	RowsInserted    int64
}

// QueryResult is the rendered outcome of one statement.
type QueryResult struct {
	Success      bool
	Columns      []string
	Rows         [][]string
	RowsAffected int
	Message      string

	// Lines is the exact text response, one entry per output line
	// without the trailing newline.
	Lines []string
}

// DatabaseInfo contains database metadata
type DatabaseInfo struct {
	Name            string
	RowCount        int
	MaxRows         int
	QueriesExecuted int64
	ErrorCount      int64
	RowsInserted    int64
}

// NewDatabase creates a database over an empty default-sized table.
func NewDatabase(name string) *Database {
	return NewDatabaseWithTable(name, tables.NewTable())
}

// NewDatabaseWithTable creates a database over tbl.
func NewDatabaseWithTable(name string, tbl *tables.Table) *Database {
	return &Database{
		table:    tbl,
		executor: planner.NewExecutor(tbl),
		name:     name,
		stats:    &DatabaseStats{},
	}
}

// ExecuteQuery prepares and executes one statement line.
//
// Every user-facing failure (bad syntax, unknown keyword, out-of-range
// values, a full table) comes back as a QueryResult with Success=false and
// the message to print; the table is left untouched in all of those cases.
// A non-nil error means an internal invariant broke and the process should
// stop.
func (db *Database) ExecuteQuery(line string) (QueryResult, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	stmt, err := parser.PrepareStatement(line)
	if err != nil {
		db.stats.ErrorCount++
		return formatError(err)
	}

	raw, err := db.executor.Execute(stmt)
	if err != nil {
		db.stats.ErrorCount++
		res, fatal := formatError(err)
		if fatal != nil {
			logging.WithError(fatal).Error("statement aborted", "line", line)
		}
		return res, fatal
	}

	db.stats.QueriesExecuted++
	if dml, ok := raw.(*planner.DMLResult); ok {
		db.stats.RowsInserted += int64(dml.RowsAffected)
	}
	return formatResult(raw), nil
}

// GetStatistics returns current counters and table occupancy
func (db *Database) GetStatistics() DatabaseInfo {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	return DatabaseInfo{
		Name:            db.name,
		RowCount:        db.table.NumRows(),
		MaxRows:         db.table.MaxRows(),
		QueriesExecuted: db.stats.QueriesExecuted,
		ErrorCount:      db.stats.ErrorCount,
		RowsInserted:    db.stats.RowsInserted,
	}
}

// Name returns the database name
func (db *Database) Name() string {
	return db.name
}
