package records

// DefaultPageSize is the fixed page size used by the listing screens.
const DefaultPageSize = 10

// Page is one window into an ordered record list.
type Page struct {
	Items      []Record
	Number     int
	Size       int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Paginate slices recs into the 1-based page of the given size. The
// requested page is not clamped: callers disable navigation using HasPrev
// and HasNext, and an out-of-range page yields empty Items with accurate
// bounds rather than wrapping. An empty collection still reports one page.
func Paginate(recs []Record, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(recs)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * size
	end := start + size
	if start < 0 || start >= total {
		start, end = 0, 0
	} else if end > total {
		end = total
	}

	items := make([]Record, end-start)
	copy(items, recs[start:end])

	return Page{
		Items:      items,
		Number:     page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
