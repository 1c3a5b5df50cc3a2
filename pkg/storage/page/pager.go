package page

import (
	"fmt"
	dberror "rowstore/pkg/error"
	"rowstore/pkg/logging"
	"rowstore/pkg/primitives"
)

// Pager is a bounded arena of lazily allocated pages.
//
// Pages are created on first access and never freed or shrunk while the
// Pager exists. Pages beyond maxPages are never allocated.
type Pager struct {
	pages    []*Page
	maxPages primitives.PageNumber
}

// NewPager creates an empty arena able to hold up to maxPages pages.
func NewPager(maxPages primitives.PageNumber) *Pager {
	return &Pager{
		pages:    make([]*Page, maxPages),
		maxPages: maxPages,
	}
}

// NewDefaultPager creates an arena bounded by TableMaxPages.
func NewDefaultPager() *Pager {
	return NewPager(TableMaxPages)
}

// MaxPages returns the arena bound.
func (p *Pager) MaxPages() primitives.PageNumber {
	return p.maxPages
}

// NumAllocated returns how many pages have been materialized so far.
func (p *Pager) NumAllocated() int {
	n := 0
	for _, pg := range p.pages {
		if pg != nil {
			n++
		}
	}
	return n
}

// PageAt returns the page at pageNum, allocating a zeroed page on first use.
//
// Returns a CAPACITY_EXCEEDED DBError when pageNum is outside the arena.
// Callers that keep their own row accounting should treat that as an
// internal invariant violation.
func (p *Pager) PageAt(pageNum primitives.PageNumber) (*Page, error) {
	if pageNum >= p.maxPages {
		return nil, dberror.New(dberror.ErrCategoryData, dberror.CodeCapacityExceeded, "page index out of bounds").
			WithDetail("page %d requested, arena holds %d", pageNum, p.maxPages).
			At("PageAt", "Pager")
	}

	pg := p.pages[pageNum]
	if pg == nil {
		pg = &Page{pageNum: pageNum}
		p.pages[pageNum] = pg
		logging.WithPage(uint32(pageNum)).Debug("page allocated", "allocated", p.NumAllocated())
	}
	return pg, nil
}

func (p *Pager) String() string {
	return fmt.Sprintf("Pager(allocated=%d, max=%d)", p.NumAllocated(), p.maxPages)
}

// Lookup returns an already allocated page without allocating.
func (p *Pager) Lookup(pageNum primitives.PageNumber) (*Page, bool) {
	if pageNum >= p.maxPages {
		return nil, false
	}
	pg := p.pages[pageNum]
	return pg, pg != nil
}
