package records_test

import (
	"testing"

	"github.com/oakfield/casedesk/internal/domain/records"
	"github.com/stretchr/testify/require"
)

func TestEngine_QueryFiltersThenSortsThenPaginates(t *testing.T) {
	eng := records.NewEngine(records.Options{}, nil)

	view := eng.Query(sampleRecords(), records.Criteria{
		Filter:    records.Filter{Status: statusPtr(records.StatusActive)},
		SortField: records.SortByUpdatedAt,
		Direction: records.Descending,
		Page:      1,
	})

	require.Equal(t, []string{"CAS-2023-001", "CAS-2023-014", "REP-2023-007"}, recordIDs(view.Visible))
	require.Equal(t, 3, view.Total)
	require.Equal(t, 1, view.TotalPages)
	require.False(t, view.HasPrev)
	require.False(t, view.HasNext)
}

func TestEngine_QueryDoesNotMutateCollection(t *testing.T) {
	eng := records.NewEngine(records.Options{}, nil)
	recs := sampleRecords()
	before := recordIDs(recs)

	eng.Query(recs, records.Criteria{
		Filter:    records.Filter{Search: "case"},
		SortField: records.SortByTitle,
		Direction: records.Descending,
		Page:      1,
	})
	require.Equal(t, before, recordIDs(recs))
}

func TestEngine_QueryPagesSortedResult(t *testing.T) {
	eng := records.NewEngine(records.Options{PageSize: 2}, nil)
	recs := sampleRecords()
	criteria := records.Criteria{
		SortField: records.SortByCreatedAt,
		Direction: records.Ascending,
	}

	var seen []string
	criteria.Page = 1
	first := eng.Query(recs, criteria)
	require.Equal(t, 3, first.TotalPages)
	for page := 1; page <= first.TotalPages; page++ {
		criteria.Page = page
		view := eng.Query(recs, criteria)
		seen = append(seen, recordIDs(view.Visible)...)
	}

	full := records.NewSorter("en").Sort(recs, records.SortByCreatedAt, records.Ascending)
	require.Equal(t, recordIDs(full), seen)
}

func TestEngine_SelectionSurvivesFilterChange(t *testing.T) {
	eng := records.NewEngine(records.Options{}, nil)
	recs := sampleRecords()
	sel := records.NewSelection()
	sel.Select("DOC-2023-113")

	// The archived document is selected and visible without filters.
	require.True(t, eng.IsSelectedVisible(recs, records.Filter{}, sel))

	// A status filter hides it from view but does not clear the selection.
	hidden := records.Filter{Status: statusPtr(records.StatusActive)}
	require.False(t, eng.IsSelectedVisible(recs, hidden, sel))
	require.True(t, sel.Has("DOC-2023-113"))
}

func TestEngine_IsSelectedVisible_EmptySelection(t *testing.T) {
	eng := records.NewEngine(records.Options{}, nil)
	require.False(t, eng.IsSelectedVisible(sampleRecords(), records.Filter{}, records.NewSelection()))
	require.False(t, eng.IsSelectedVisible(sampleRecords(), records.Filter{}, nil))
}

func TestNewEngine_Defaults(t *testing.T) {
	eng := records.NewEngine(records.Options{}, nil)
	require.Equal(t, records.DefaultPageSize, eng.PageSize())

	custom := records.NewEngine(records.Options{PageSize: 25, Collation: "not a tag"}, nil)
	require.Equal(t, 25, custom.PageSize())
}
