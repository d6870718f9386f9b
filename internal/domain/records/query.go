package records

import (
	"io"
	"log/slog"
)

// Criteria is the ephemeral per-view query configuration. A new Criteria
// value simply produces a new derived view; it has no identity of its own.
type Criteria struct {
	Filter    Filter
	SortField SortField
	Direction Direction
	Page      int
}

// View is the derived, render-ready window over a collection.
type View struct {
	Visible    []Record
	Page       int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Options configures an Engine.
type Options struct {
	// Collation is the BCP 47 tag used for string ordering. Empty means "en".
	Collation string
	// PageSize overrides DefaultPageSize when positive.
	PageSize int
}

// Engine derives listing views from a record collection. Every query is a
// pure transformation in a fixed order: filter, then sort, then paginate.
// The engine holds no record state, so one Engine can serve any number of
// collections.
type Engine struct {
	sorter   *Sorter
	pageSize int
	logger   *slog.Logger
}

// NewEngine creates an engine with the given options. A nil logger disables
// logging.
func NewEngine(opts Options, logger *slog.Logger) *Engine {
	collation := opts.Collation
	if collation == "" {
		collation = "en"
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		sorter:   NewSorter(collation),
		pageSize: pageSize,
		logger:   logger,
	}
}

// PageSize returns the page size the engine paginates with.
func (e *Engine) PageSize() int {
	return e.pageSize
}

// Query computes the visible, ordered page for the given criteria. The
// input collection is never modified.
func (e *Engine) Query(recs []Record, c Criteria) View {
	matched := c.Filter.Apply(recs)
	ordered := e.sorter.Sort(matched, c.SortField, c.Direction)
	pg := Paginate(ordered, c.Page, e.pageSize)

	e.logger.Debug("query computed",
		"total", len(recs),
		"matched", pg.Total,
		"page", pg.Number,
		"total_pages", pg.TotalPages,
	)

	return View{
		Visible:    pg.Items,
		Page:       pg.Number,
		Total:      pg.Total,
		TotalPages: pg.TotalPages,
		HasPrev:    pg.HasPrev,
		HasNext:    pg.HasNext,
	}
}

// IsSelectedVisible reports whether the current selection, evaluated against
// the full collection, survives the filter. A selection orphaned by a filter
// change is kept, not cleared; this flag lets callers surface it.
func (e *Engine) IsSelectedVisible(recs []Record, f Filter, sel *Selection) bool {
	if sel == nil || sel.Empty() {
		return false
	}
	for _, r := range recs {
		if sel.Has(r.ID) {
			return f.Matches(r)
		}
	}
	return false
}
