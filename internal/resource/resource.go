package resource

import (
	"github.com/phrazzld/avatar-api/internal/pagination"
)

// Info is the metadata block of a list response.
type Info struct {
	Total int             `json:"total"`
	Limit *int            `json:"limit"`
	Page  pagination.Page `json:"page"`
}

// List is the envelope for paginated list responses.
type List[T any] struct {
	Info Info `json:"info"`
	Data []*T `json:"data"`
}

// Detail is the envelope for single-item responses. Data is null when the
// item does not exist.
type Detail[T any] struct {
	Data *T `json:"data"`
}

// NewInfo builds list metadata for total rows and the requested window.
func NewInfo(total int, page, limit *int) Info {
	return Info{
		Total: total,
		Limit: limit,
		Page:  pagination.Calculate(page, limit, total),
	}
}
