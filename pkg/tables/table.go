package tables

import (
	"fmt"
	dberror "rowstore/pkg/error"
	"rowstore/pkg/logging"
	"rowstore/pkg/primitives"
	"rowstore/pkg/row"
	"rowstore/pkg/storage/page"
)

const (
	// RowsPerPage is the number of whole rows that fit in one page.
	// The remaining PageSize % row.Size bytes of every page are never addressed.
	RowsPerPage = page.PageSize / row.Size

	// MaxRows is the capacity of a table backed by a default arena.
	MaxRows = RowsPerPage * page.TableMaxPages

	// DefaultName labels the single table in logs.
	DefaultName = "users"
)

// Table owns a page arena and the count of rows stored in it.
//
// Row i lives on page i / RowsPerPage at byte offset
// (i % RowsPerPage) * row.Size. Rows are append-only.
type Table struct {
	Name    string
	pager   *page.Pager
	numRows primitives.RowID
	maxRows primitives.RowID
}

// NewTable creates an empty table over a default-sized arena.
func NewTable() *Table {
	return NewTableWithPager(DefaultName, page.NewDefaultPager())
}

// NewTableWithPager creates an empty table over pager. Capacity is derived
// from the pager's bound.
func NewTableWithPager(name string, pager *page.Pager) *Table {
	return &Table{
		Name:    name,
		pager:   pager,
		maxRows: primitives.RowID(RowsPerPage) * primitives.RowID(pager.MaxPages()),
	}
}

// NumRows returns the number of rows stored.
func (t *Table) NumRows() int {
	return int(t.numRows)
}

// MaxRows returns the row count at which Insert starts failing.
func (t *Table) MaxRows() int {
	return int(t.maxRows)
}

// IsFull reports whether no row slot is left.
func (t *Table) IsFull() bool {
	return t.numRows >= t.maxRows
}

// RowSlot computes where row rowID lives. It never allocates.
func RowSlot(rowID primitives.RowID) (primitives.PageNumber, primitives.Offset) {
	pageNum := primitives.PageNumber(rowID / RowsPerPage)
	offset := primitives.Offset((rowID % RowsPerPage) * row.Size)
	return pageNum, offset
}

// Insert appends r at position NumRows().
//
// The only user-facing failure is TABLE_FULL, in which case nothing is
// written and the row count is unchanged. A CAPACITY_EXCEEDED error from the
// arena means the row accounting is broken and is returned as is.
func (t *Table) Insert(r row.Row) error {
	log := logging.WithTable(t.Name)

	if t.IsFull() {
		log.Warn("insert rejected, table full", "rows", t.numRows)
		return dberror.New(dberror.ErrCategorySystem, dberror.CodeTableFull, "table full").
			WithDetail("%d of %d rows used", t.numRows, t.maxRows).
			At("Insert", "Table")
	}

	pageNum, offset := RowSlot(t.numRows)
	pg, err := t.pager.PageAt(pageNum)
	if err != nil {
		log.Error("row slot outside arena", "row", t.numRows, "page", pageNum, "error", err)
		return dberror.Wrap(err, dberror.CodeCapacityExceeded, "Insert", "Table")
	}

	r.SerializeInto(pg.Slice(offset, row.Size))
	t.numRows++

	log.Debug("row inserted", "row", t.numRows-1, "page", pageNum, "offset", offset)
	return nil
}

// Scan decodes every stored row in insertion order. It does not mutate the
// table and may be called any number of times.
func (t *Table) Scan() ([]row.Row, error) {
	rows := make([]row.Row, 0, t.numRows)
	for i := primitives.RowID(0); i < t.numRows; i++ {
		r, err := t.rowAt(i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}

	logging.WithTable(t.Name).Debug("table scanned", "rows", len(rows))
	return rows, nil
}

func (t *Table) rowAt(rowID primitives.RowID) (row.Row, error) {
	pageNum, offset := RowSlot(rowID)
	pg, ok := t.pager.Lookup(pageNum)
	if !ok {
		return row.Row{}, dberror.New(dberror.ErrCategoryData, dberror.CodeCapacityExceeded, "row page missing").
			WithDetail("row %d maps to unallocated page %d", rowID, pageNum).
			At("Scan", "Table")
	}
	return row.Decode(pg.Slice(offset, row.Size)), nil
}

// String returns a string representation of the table
func (t *Table) String() string {
	return fmt.Sprintf("Table(%s, rows=%d/%d, %s)", t.Name, t.numRows, t.maxRows, t.pager)
}
