// Package pagination implements the fixed-size pager used by the profile
// listings. The last page absorbs up to `orphans` extra rows, so a handful of
// trailing items never ends up on a page of its own.
package pagination

import "errors"

var ErrInvalidPage = errors.New("page out of range")

type Page struct {
	// Number is the 1-based page number.
	Number   int
	PerPage  int
	Orphans  int
	Count    int64
	NumPages int
	// StartIndex and EndIndex are 1-based, inclusive positions of the page's
	// first and last item within the whole result set. Both are 0 when the
	// set is empty.
	StartIndex int64
	EndIndex   int64
}

// Paginate computes the window for the requested page over a result set of
// `count` items. Page 0 is an alias for page 1. Requesting a page past the
// last one fails with ErrInvalidPage.
func Paginate(count int64, page, perPage, orphans int) (Page, error) {
	if page == 0 {
		page = 1
	}
	if page < 0 || perPage < 1 {
		return Page{}, ErrInvalidPage
	}

	hits := count - int64(orphans)
	if hits < 1 {
		hits = 1
	}
	numPages := int((hits + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}
	if page > numPages {
		return Page{}, ErrInvalidPage
	}

	p := Page{
		Number:   page,
		PerPage:  perPage,
		Orphans:  orphans,
		Count:    count,
		NumPages: numPages,
	}
	if count == 0 {
		return p, nil
	}

	p.StartIndex = int64(page-1)*int64(perPage) + 1
	if page == numPages {
		p.EndIndex = count
	} else {
		p.EndIndex = int64(page) * int64(perPage)
	}
	return p, nil
}

// Offset is the 0-based offset of the page's first item.
func (p Page) Offset() int64 {
	if p.StartIndex == 0 {
		return 0
	}
	return p.StartIndex - 1
}

// Limit is how many items the page holds.
func (p Page) Limit() int64 {
	return p.EndIndex - p.Offset()
}

// ItemsLeft is how many items remain after this page.
func (p Page) ItemsLeft() int64 {
	return p.Count - p.EndIndex
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}
