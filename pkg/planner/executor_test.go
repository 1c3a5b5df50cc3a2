package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dberror "rowstore/pkg/error"
	"rowstore/pkg/parser/statements"
	"rowstore/pkg/row"
	"rowstore/pkg/storage/page"
	"rowstore/pkg/tables"
)

type failingStore struct {
	insertErr error
	scanErr   error
}

func (f *failingStore) Insert(row.Row) error     { return f.insertErr }
func (f *failingStore) Scan() ([]row.Row, error) { return nil, f.scanErr }

func TestExecutor_InsertThenSelect(t *testing.T) {
	exec := NewExecutor(tables.NewTable())

	res, err := exec.Execute(statements.NewInsertStatement(row.Row{ID: 1, Username: "user1", Email: "person1@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, DMLResultType, res.Type())
	assert.Equal(t, 1, res.(*DMLResult).RowsAffected)

	res, err = exec.Execute(statements.NewSelectStatement())
	require.NoError(t, err)
	require.Equal(t, SelectResultType, res.Type())

	sel := res.(*SelectQueryResult)
	require.Len(t, sel.Rows, 1)
	assert.Equal(t, "(1, user1, person1@example.com)", sel.Rows[0].String())
	assert.Equal(t, "1 row(s) returned", sel.String())
}

func TestExecutor_TableFull(t *testing.T) {
	tbl := tables.NewTableWithPager("tiny", page.NewPager(1))
	exec := NewExecutor(tbl)

	for i := 1; i <= tables.RowsPerPage; i++ {
		_, err := exec.Execute(statements.NewInsertStatement(row.Row{ID: int32(i), Username: "u", Email: "e"}))
		require.NoError(t, err)
	}

	_, err := exec.Execute(statements.NewInsertStatement(row.Row{ID: 99, Username: "u", Email: "e"}))
	require.Error(t, err)
	assert.True(t, dberror.HasCode(err, dberror.CodeTableFull))
	assert.Equal(t, tables.RowsPerPage, tbl.NumRows())
}

func TestExecutor_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	exec := NewExecutor(&failingStore{insertErr: boom, scanErr: boom})

	_, err := exec.Execute(statements.NewInsertStatement(row.Row{ID: 1}))
	assert.ErrorIs(t, err, boom)

	_, err = exec.Execute(statements.NewSelectStatement())
	assert.ErrorIs(t, err, boom)
}

func TestSelectQueryResult_Iterator(t *testing.T) {
	res := &SelectQueryResult{Rows: []row.Row{{ID: 1}, {ID: 2}}}

	it := res.Iterator()
	var ids []int32
	for it.HasNext() {
		r, err := it.Next()
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int32{1, 2}, ids)
}
