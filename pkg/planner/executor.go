package planner

import (
	"fmt"
	"rowstore/pkg/logging"
	"rowstore/pkg/parser/statements"
	"rowstore/pkg/row"
)

// RowStore is the storage the executor runs statements against.
// *tables.Table satisfies it.
type RowStore interface {
	Insert(r row.Row) error
	Scan() ([]row.Row, error)
}

// Executor dispatches prepared statements to a RowStore. It performs no
// validation: statements reaching it have already passed the preparer.
type Executor struct {
	store RowStore
}

func NewExecutor(store RowStore) *Executor {
	return &Executor{store: store}
}

// Execute runs stmt. Insert failures from the store (TABLE_FULL, or an
// internal CAPACITY_EXCEEDED) are returned unchanged so callers can classify
// them by code.
func (e *Executor) Execute(stmt statements.Statement) (Result, error) {
	switch s := stmt.(type) {
	case *statements.InsertStatement:
		return e.executeInsert(s)
	case *statements.SelectStatement:
		return e.executeSelect()
	default:
		return nil, fmt.Errorf("unsupported statement type: %T", stmt)
	}
}

func (e *Executor) executeInsert(s *statements.InsertStatement) (*DMLResult, error) {
	if err := e.store.Insert(s.Row); err != nil {
		return nil, err
	}
	return &DMLResult{RowsAffected: 1}, nil
}

func (e *Executor) executeSelect() (*SelectQueryResult, error) {
	rows, err := e.store.Scan()
	if err != nil {
		logging.WithError(err).Error("scan failed")
		return nil, err
	}
	return &SelectQueryResult{Rows: rows}, nil
}
