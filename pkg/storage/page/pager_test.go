package page

import (
	"errors"
	"testing"

	dberror "rowstore/pkg/error"
	"rowstore/pkg/primitives"
)

func TestPager_PageAtAllocatesLazily(t *testing.T) {
	p := NewDefaultPager()

	if got := p.NumAllocated(); got != 0 {
		t.Fatalf("expected no pages allocated, got %d", got)
	}

	pg, err := p.PageAt(3)
	if err != nil {
		t.Fatalf("PageAt(3) failed: %v", err)
	}
	if pg.PageNo() != 3 {
		t.Errorf("expected page number 3, got %d", pg.PageNo())
	}
	if len(pg.Bytes()) != PageSize {
		t.Errorf("expected %d bytes, got %d", PageSize, len(pg.Bytes()))
	}
	if got := p.NumAllocated(); got != 1 {
		t.Errorf("expected 1 page allocated, got %d", got)
	}
}

func TestPager_PageAtReturnsSamePage(t *testing.T) {
	p := NewDefaultPager()

	first, err := p.PageAt(0)
	if err != nil {
		t.Fatalf("PageAt failed: %v", err)
	}
	first.Bytes()[10] = 0xAB

	second, err := p.PageAt(0)
	if err != nil {
		t.Fatalf("PageAt failed: %v", err)
	}
	if first != second {
		t.Fatal("expected the same page instance on repeated access")
	}
	if second.Bytes()[10] != 0xAB {
		t.Error("page contents were not preserved")
	}
}

func TestPager_PageAtBounds(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		pageNum int
		wantErr bool
	}{
		{"FirstPage", TableMaxPages, 0, false},
		{"LastPage", TableMaxPages, TableMaxPages - 1, false},
		{"OnePastEnd", TableMaxPages, TableMaxPages, true},
		{"FarPastEnd", TableMaxPages, 10_000, true},
		{"EmptyArena", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(primitives.PageNumber(tt.max))
			_, err := p.PageAt(primitives.PageNumber(tt.pageNum))
			if (err != nil) != tt.wantErr {
				t.Fatalf("PageAt() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, &dberror.DBError{Code: dberror.CodeCapacityExceeded}) {
				t.Errorf("expected CAPACITY_EXCEEDED, got %v", err)
			}
		})
	}
}

func TestPage_Slice(t *testing.T) {
	p := NewDefaultPager()
	pg, _ := p.PageAt(0)

	s := pg.Slice(100, 8)
	copy(s, "abcdefgh")

	if string(pg.Bytes()[100:108]) != "abcdefgh" {
		t.Errorf("slice does not alias page memory")
	}
}

func TestPager_LookupDoesNotAllocate(t *testing.T) {
	p := NewDefaultPager()

	if _, ok := p.Lookup(0); ok {
		t.Fatal("expected Lookup on a fresh arena to miss")
	}
	if got := p.NumAllocated(); got != 0 {
		t.Errorf("Lookup allocated %d pages", got)
	}

	allocated, _ := p.PageAt(0)
	found, ok := p.Lookup(0)
	if !ok || found != allocated {
		t.Error("expected Lookup to return the allocated page")
	}

	if _, ok := p.Lookup(TableMaxPages); ok {
		t.Error("expected Lookup past the bound to miss")
	}
}
