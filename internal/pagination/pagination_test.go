package pagination

import (
	"errors"
	"testing"
)

func TestPaginate(t *testing.T) {
	cases := []struct {
		name           string
		count          int64
		page, per, orp int
		wantPages      int
		wantStart      int64
		wantEnd        int64
	}{
		{"empty set still has one page", 0, 1, 12, 2, 1, 0, 0},
		{"page zero aliases page one", 30, 0, 12, 2, 3, 1, 12},
		{"middle page", 30, 2, 12, 2, 3, 13, 24},
		{"last page runs to the end", 30, 3, 12, 2, 3, 25, 30},
		{"orphans absorbed into last page", 26, 2, 12, 2, 2, 13, 26},
		{"orphans not absorbed when over the window", 27, 3, 12, 2, 3, 25, 27},
		{"single page with orphans", 14, 1, 12, 2, 1, 1, 14},
		{"warnings shape", 5, 1, 5, 2, 1, 1, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Paginate(c.count, c.page, c.per, c.orp)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if p.NumPages != c.wantPages {
				t.Errorf("expected %d pages, got %d", c.wantPages, p.NumPages)
			}
			if p.StartIndex != c.wantStart || p.EndIndex != c.wantEnd {
				t.Errorf("expected window [%d, %d], got [%d, %d]",
					c.wantStart, c.wantEnd, p.StartIndex, p.EndIndex)
			}
		})
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	_, err := Paginate(30, 4, 12, 2)
	if !errors.Is(err, ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage, got %v", err)
	}

	_, err = Paginate(30, -1, 12, 2)
	if !errors.Is(err, ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage for negative page, got %v", err)
	}
}

func TestItemsLeft(t *testing.T) {
	p, err := Paginate(30, 2, 12, 2)
	if err != nil {
		t.Fatal(err)
	}
	if left := p.ItemsLeft(); left != 6 {
		t.Errorf("expected 6 items left after page 2, got %d", left)
	}

	p, err = Paginate(30, 3, 12, 2)
	if err != nil {
		t.Fatal(err)
	}
	if left := p.ItemsLeft(); left != 0 {
		t.Errorf("expected 0 items left on the last page, got %d", left)
	}
}
