// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// DefaultPageSize is used when a request does not specify ?size=.
const DefaultPageSize = 20

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// Order is one sort criterion: a client-facing property name and direction.
type Order struct {
	Property string
	Desc     bool
}

// Pageable describes a page request. Page is 0-based.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Offset returns the number of rows to skip for this page.
func (p Pageable) Offset() int { return p.Page * p.Size }

// Page is one slice of a larger result set together with paging metadata.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// NewPage assembles a Page from the rows of the requested page and the total
// number of matching rows. A nil content slice is normalized to empty so the
// JSON encoding is always an array.
func NewPage[T any](content []T, p Pageable, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if p.Size > 0 {
		pages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    pages,
		Size:          p.Size,
		Number:        p.Page,
		First:         p.Page == 0,
		Last:          p.Page >= pages-1,
	}
}

// MapPage converts the content of a page, keeping its metadata.
func MapPage[T, R any](in Page[T], fn func(*T) R) Page[R] {
	out := make([]R, 0, len(in.Content))
	for i := range in.Content {
		out = append(out, fn(&in.Content[i]))
	}
	return Page[R]{
		Content:       out,
		TotalElements: in.TotalElements,
		TotalPages:    in.TotalPages,
		Size:          in.Size,
		Number:        in.Number,
		First:         in.First,
		Last:          in.Last,
	}
}
