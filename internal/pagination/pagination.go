// Package pagination computes page navigation metadata for list endpoints
// and the storage offset a page corresponds to.
package pagination

// Page holds the 1-based page numbers around the requested page. A nil
// field means there is no such page, or that the request was not paginated.
type Page struct {
	Current *int `json:"current"`
	Next    *int `json:"next"`
	Prev    *int `json:"prev"`
}

// Calculate derives navigation for page of size limit over total rows.
// A missing page, or a missing or non-positive limit, means the request is
// not paginated and every field is nil. Out-of-range pages are not an error.
func Calculate(page, limit *int, total int) Page {
	if page == nil || limit == nil || *limit <= 0 {
		return Page{}
	}

	totalPages := TotalPages(total, *limit)
	p := *page

	result := Page{Current: intPtr(p)}
	if p < totalPages {
		result.Next = intPtr(p + 1)
	}
	if p > 1 {
		result.Prev = intPtr(p - 1)
	}
	return result
}

// TotalPages returns ceil(total/limit). It returns 0 for a non-positive limit.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Window converts optional page/limit values into a row offset and cap.
// The offset is applied only when both values are present; the cap whenever
// limit is present. A zero limit means no cap.
func Window(page, limit *int) (offset, size int) {
	if limit == nil || *limit <= 0 {
		return 0, 0
	}
	if page != nil && *page > 1 {
		offset = (*page - 1) * *limit
	}
	return offset, *limit
}

func intPtr(v int) *int {
	return &v
}
