package pagination

import (
	"errors"
	"net/url"
	"strconv"
)

// Common errors
var (
	ErrInvalidPage = errors.New("page and pageSize must be positive integers")
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params describes the page slice requested by a list endpoint.
type Params struct {
	Page     int
	PageSize int
}

// Parse reads page and pageSize from query parameters. Absent parameters fall
// back to the defaults; present but non-numeric or non-positive values are
// rejected rather than silently coerced.
func Parse(query url.Values) (Params, error) {
	p := Params{Page: DefaultPage, PageSize: DefaultPageSize}

	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Params{}, ErrInvalidPage
		}
		p.Page = n
	}

	if raw := query.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Params{}, ErrInvalidPage
		}
		if n > MaxPageSize {
			n = MaxPageSize
		}
		p.PageSize = n
	}

	return p, nil
}

// Skip returns the number of items to skip for the requested page
func (p Params) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the maximum number of items on a page
func (p Params) Limit() int {
	return p.PageSize
}

// TotalPages returns the number of pages needed for total items
func (p Params) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
