package records

// Selection tracks which record is marked active in a view. The product rule
// is single selection: selecting a record replaces whatever was selected
// before, so the state is an optional ID rather than a set. Filtering and
// selection are independent; hiding the selected record from view does not
// clear it (callers can surface that through Engine.IsSelectedVisible).
type Selection struct {
	selected *string
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Select makes id the sole selected record, replacing any prior selection.
func (s *Selection) Select(id string) {
	s.selected = &id
}

// Deselect clears the selection if id is the selected record; otherwise it
// is a no-op.
func (s *Selection) Deselect(id string) {
	if s.selected != nil && *s.selected == id {
		s.selected = nil
	}
}

// SelectAll approximates the select-all gesture under the single-selection
// rule: the first candidate becomes the selection, or the selection clears
// when there are no candidates.
func (s *Selection) SelectAll(candidates []Record) {
	if len(candidates) == 0 {
		s.selected = nil
		return
	}
	s.Select(candidates[0].ID)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.selected = nil
}

// Has reports whether id is currently selected.
func (s *Selection) Has(id string) bool {
	return s.selected != nil && *s.selected == id
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return s.selected == nil
}

// IDs returns the selected IDs as a slice: empty or a singleton.
func (s *Selection) IDs() []string {
	if s.selected == nil {
		return nil
	}
	return []string{*s.selected}
}
