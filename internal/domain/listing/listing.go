// Package listing is the simplified query path used by the directory
// screens (carers, children, forms, team). It mirrors the records engine —
// filter, stable sort, page slice, same ordering guarantees — without typed
// criteria or selection.
package listing

import "sort"

// Query configures one directory view. A nil Match keeps every entry; a nil
// Less leaves the filtered order untouched.
type Query[T any] struct {
	Match    func(T) bool
	Less     func(a, b T) bool
	Page     int
	PageSize int
}

// Result is the derived directory page.
type Result[T any] struct {
	Visible    []T
	Page       int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Apply derives the visible page for q over items. The input slice is never
// modified and filtering preserves relative order, as in the records engine.
func Apply[T any](items []T, q Query[T]) Result[T] {
	matched := make([]T, 0, len(items))
	for _, it := range items {
		if q.Match == nil || q.Match(it) {
			matched = append(matched, it)
		}
	}

	if q.Less != nil {
		sort.SliceStable(matched, func(i, j int) bool {
			return q.Less(matched[i], matched[j])
		})
	}

	size := q.PageSize
	if size <= 0 {
		size = 10
	}
	total := len(matched)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	start := (q.Page - 1) * size
	end := start + size
	if start < 0 || start >= total {
		start, end = 0, 0
	} else if end > total {
		end = total
	}

	return Result[T]{
		Visible:    matched[start:end],
		Page:       q.Page,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    q.Page > 1,
		HasNext:    q.Page < totalPages,
	}
}
