package domain

import "strings"

// Page is a paginated slice of results in the envelope the dashboard's
// tables consume.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

func NewPage[T any](content []T, total int64, number, size int) Page[T] {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    pages,
		Number:        number,
		Size:          size,
	}
}

// PageRequest describes server-driven pagination and sorting. SortField must
// be validated against a whitelist before reaching SQL.
type PageRequest struct {
	Page      int
	Limit     int
	SortField string
	SortOrder string
}

func (p PageRequest) Offset() int {
	return p.Page * p.Limit
}

func (p PageRequest) Descending() bool {
	return strings.EqualFold(p.SortOrder, "desc")
}
