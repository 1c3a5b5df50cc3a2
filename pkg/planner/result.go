package planner

import (
	"fmt"
	"rowstore/pkg/iterator"
	"rowstore/pkg/row"
)

// Result represents the outcome of executing a statement.
type Result interface {
	// String returns a human-readable representation of the result
	String() string

	// Type returns the category of result for type switching if needed
	Type() ResultType
}

// ResultType categorizes the different kinds of results
type ResultType int

const (
	DMLResultType ResultType = iota
	SelectResultType
)

// DMLResult is the outcome of a successful insert. It carries no payload
// beyond the affected row count.
type DMLResult struct {
	RowsAffected int
}

func (d *DMLResult) String() string {
	return fmt.Sprintf("%d row(s) affected", d.RowsAffected)
}

func (d *DMLResult) Type() ResultType {
	return DMLResultType
}

// SelectQueryResult holds every row of the table in insertion order.
type SelectQueryResult struct {
	Rows []row.Row
}

func (s *SelectQueryResult) String() string {
	return fmt.Sprintf("%d row(s) returned", len(s.Rows))
}

func (s *SelectQueryResult) Type() ResultType {
	return SelectResultType
}

// Iterator returns a fresh iterator over the result rows.
func (s *SelectQueryResult) Iterator() *iterator.SliceIterator[row.Row] {
	return iterator.NewSliceIterator(s.Rows)
}
