package page

import (
	"rowstore/pkg/primitives"
)

const (
	// PageSize is the size of each page in bytes (4KB)
	PageSize = 4096

	// TableMaxPages bounds the number of pages a Pager will ever hand out.
	TableMaxPages = 100
)

// Page is a flat, fixed-size byte buffer. The Pager owns every Page; callers
// read and write through the pointer returned by PageAt and must not retain
// slices of it beyond the current operation.
type Page struct {
	pageNum primitives.PageNumber
	data    [PageSize]byte
}

// PageNo returns the position of this page inside its arena.
func (p *Page) PageNo() primitives.PageNumber {
	return p.pageNum
}

// Bytes returns the page contents as a mutable slice of length PageSize.
func (p *Page) Bytes() []byte {
	return p.data[:]
}

// Slice returns the size-byte window starting at offset.
func (p *Page) Slice(offset primitives.Offset, size int) []byte {
	start := int(offset)
	return p.data[start : start+size]
}
