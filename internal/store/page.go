package store

import "github.com/phrazzld/avatar-api/internal/pagination"

// Page bounds a list query. A zero Limit means no row cap.
type Page struct {
	Offset int
	Limit  int
}

// NewPage converts optional page/limit request values into a Page.
func NewPage(page, limit *int) Page {
	offset, size := pagination.Window(page, limit)
	return Page{Offset: offset, Limit: size}
}

// Unbounded reports whether the page returns every row.
func (p Page) Unbounded() bool {
	return p.Limit <= 0
}
